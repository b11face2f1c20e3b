package seed

// Fixed sample dataset. Seeding keys on slug/sku, so re-running always
// converges to the same 3 categories, 11 brands and 30 products.

type categoryData struct {
	Name        string
	Slug        string
	Description string
}

type brandData struct {
	Name    string
	Slug    string
	Website string
}

type productData struct {
	Name        string
	Brand       string
	Category    string
	Price       float64
	Stock       int
	Rating      float64
	Tags        []string
	Description string
	Sku         string
}

var categories = []categoryData{
	{Name: "Electronics", Slug: "electronics", Description: "Electronic devices and gadgets including smartphones, laptops, and accessories."},
	{Name: "Clothing", Slug: "clothing", Description: "Fashion and apparel for men, women, and children."},
	{Name: "Home & Garden", Slug: "home-garden", Description: "Home improvement, furniture, and garden supplies."},
}

var brands = []brandData{
	{Name: "Apple", Slug: "apple", Website: "https://apple.com"},
	{Name: "Samsung", Slug: "samsung", Website: "https://samsung.com"},
	{Name: "Sony", Slug: "sony", Website: "https://sony.com"},
	{Name: "Dell", Slug: "dell", Website: "https://dell.com"},
	{Name: "Nike", Slug: "nike", Website: "https://nike.com"},
	{Name: "Adidas", Slug: "adidas", Website: "https://adidas.com"},
	{Name: "Zara", Slug: "zara", Website: "https://zara.com"},
	{Name: "H&M", Slug: "hm", Website: "https://hm.com"},
	{Name: "IKEA", Slug: "ikea", Website: "https://ikea.com"},
	{Name: "Home Depot", Slug: "home-depot", Website: "https://homedepot.com"},
	{Name: "Wayfair", Slug: "wayfair", Website: "https://wayfair.com"},
}

var products = []productData{
	// Electronics
	{Name: "iPhone 15 Pro", Brand: "Apple", Category: "Electronics", Price: 999.99, Stock: 50, Rating: 4.7, Tags: []string{"smartphone", "ios", "premium"}, Description: "Latest iPhone with A17 Pro chip and titanium design.", Sku: "APL-IPH15P-001"},
	{Name: "MacBook Air M3", Brand: "Apple", Category: "Electronics", Price: 1299.99, Stock: 25, Rating: 4.8, Tags: []string{"laptop", "macbook", "apple-silicon"}, Description: "Ultra-thin laptop powered by M3 chip with incredible battery life.", Sku: "APL-MBA-M3-001"},
	{Name: "Galaxy S24 Ultra", Brand: "Samsung", Category: "Electronics", Price: 1199.99, Stock: 35, Rating: 4.6, Tags: []string{"smartphone", "android", "premium", "s-pen"}, Description: "Premium Android phone with S Pen and 200MP camera.", Sku: "SAM-GS24U-001"},
	{Name: "PlayStation 5", Brand: "Sony", Category: "Electronics", Price: 499.99, Stock: 15, Rating: 4.5, Tags: []string{"gaming", "console", "playstation"}, Description: "Next-generation gaming console with 4K gaming and ray tracing.", Sku: "SNY-PS5-001"},
	{Name: "WH-1000XM5 Headphones", Brand: "Sony", Category: "Electronics", Price: 399.99, Stock: 40, Rating: 4.4, Tags: []string{"headphones", "noise-canceling", "wireless"}, Description: "Industry-leading noise canceling wireless headphones.", Sku: "SNY-WH1000XM5-001"},
	{Name: "XPS 13 Laptop", Brand: "Dell", Category: "Electronics", Price: 899.99, Stock: 20, Rating: 4.3, Tags: []string{"laptop", "ultrabook", "windows"}, Description: "Compact and powerful ultrabook for professionals.", Sku: "DEL-XPS13-001"},
	{Name: "Galaxy Buds Pro 3", Brand: "Samsung", Category: "Electronics", Price: 249.99, Stock: 60, Rating: 4.2, Tags: []string{"earbuds", "wireless", "noise-canceling"}, Description: "Premium wireless earbuds with adaptive noise canceling.", Sku: "SAM-GBP3-001"},
	{Name: "iPad Air M2", Brand: "Apple", Category: "Electronics", Price: 599.99, Stock: 30, Rating: 4.6, Tags: []string{"tablet", "ipad", "apple-silicon"}, Description: "Powerful and versatile tablet for creativity and productivity.", Sku: "APL-IPA-M2-001"},
	{Name: "65\" OLED TV", Brand: "Sony", Category: "Electronics", Price: 1799.99, Stock: 8, Rating: 4.7, Tags: []string{"tv", "oled", "4k", "smart-tv"}, Description: "65-inch OLED TV with stunning picture quality and smart features.", Sku: "SNY-OLED65-001"},
	{Name: "Alienware Gaming Laptop", Brand: "Dell", Category: "Electronics", Price: 2299.99, Stock: 12, Rating: 4.4, Tags: []string{"laptop", "gaming", "high-performance"}, Description: "High-performance gaming laptop with RTX graphics.", Sku: "DEL-ALW-001"},

	// Clothing
	{Name: "Air Jordan 1 Retro High", Brand: "Nike", Category: "Clothing", Price: 169.99, Stock: 45, Rating: 4.5, Tags: []string{"shoes", "sneakers", "jordan", "basketball"}, Description: "Classic basketball sneakers with timeless style.", Sku: "NIK-AJ1R-001"},
	{Name: "Ultraboost 23 Running Shoes", Brand: "Adidas", Category: "Clothing", Price: 189.99, Stock: 55, Rating: 4.3, Tags: []string{"shoes", "running", "boost", "athletic"}, Description: "Premium running shoes with responsive Boost midsole.", Sku: "ADI-UB23-001"},
	{Name: "Oversized Blazer", Brand: "Zara", Category: "Clothing", Price: 79.99, Stock: 25, Rating: 4.1, Tags: []string{"blazer", "formal", "oversized", "women"}, Description: "Trendy oversized blazer perfect for office or casual wear.", Sku: "ZAR-OBL-001"},
	{Name: "Conscious Cotton T-Shirt", Brand: "H&M", Category: "Clothing", Price: 12.99, Stock: 100, Rating: 3.9, Tags: []string{"t-shirt", "cotton", "sustainable", "basic"}, Description: "Sustainable cotton t-shirt from conscious collection.", Sku: "HM-CCT-001"},
	{Name: "Tech Fleece Hoodie", Brand: "Nike", Category: "Clothing", Price: 89.99, Stock: 35, Rating: 4.4, Tags: []string{"hoodie", "tech-fleece", "casual", "warm"}, Description: "Lightweight yet warm hoodie with innovative Tech Fleece.", Sku: "NIK-TFH-001"},
	{Name: "Stan Smith Sneakers", Brand: "Adidas", Category: "Clothing", Price: 79.99, Stock: 70, Rating: 4.6, Tags: []string{"shoes", "sneakers", "classic", "white"}, Description: "Iconic white leather sneakers with timeless design.", Sku: "ADI-SS-001"},
	{Name: "Midi Wrap Dress", Brand: "Zara", Category: "Clothing", Price: 49.99, Stock: 30, Rating: 4.2, Tags: []string{"dress", "midi", "wrap", "women"}, Description: "Elegant midi wrap dress suitable for various occasions.", Sku: "ZAR-MWD-001"},
	{Name: "Organic Cotton Jeans", Brand: "H&M", Category: "Clothing", Price: 39.99, Stock: 65, Rating: 4.0, Tags: []string{"jeans", "organic", "sustainable", "denim"}, Description: "Comfortable jeans made from organic cotton.", Sku: "HM-OCJ-001"},
	{Name: "Dri-FIT Training Shorts", Brand: "Nike", Category: "Clothing", Price: 34.99, Stock: 80, Rating: 4.3, Tags: []string{"shorts", "training", "dri-fit", "athletic"}, Description: "Moisture-wicking training shorts for intense workouts.", Sku: "NIK-DFT-001"},
	{Name: "Firebird Track Jacket", Brand: "Adidas", Category: "Clothing", Price: 69.99, Stock: 40, Rating: 4.5, Tags: []string{"jacket", "track", "retro", "sporty"}, Description: "Classic track jacket with iconic three stripes design.", Sku: "ADI-FTJ-001"},

	// Home & Garden
	{Name: "HEMNES Bed Frame", Brand: "IKEA", Category: "Home & Garden", Price: 199.99, Stock: 15, Rating: 4.2, Tags: []string{"bed", "furniture", "bedroom", "wood"}, Description: "Solid wood bed frame with timeless design.", Sku: "IKE-HEM-BF-001"},
	{Name: "KLIPPAN Loveseat Sofa", Brand: "IKEA", Category: "Home & Garden", Price: 249.99, Stock: 12, Rating: 4.0, Tags: []string{"sofa", "furniture", "living-room", "compact"}, Description: "Compact two-seat sofa perfect for small spaces.", Sku: "IKE-KLP-LS-001"},
	{Name: "Cordless Drill Set", Brand: "Home Depot", Category: "Home & Garden", Price: 89.99, Stock: 22, Rating: 4.4, Tags: []string{"tools", "drill", "cordless", "diy"}, Description: "Professional cordless drill with complete bit set.", Sku: "HD-CDS-001"},
	{Name: "6-Tier Storage Rack", Brand: "Wayfair", Category: "Home & Garden", Price: 129.99, Stock: 18, Rating: 4.1, Tags: []string{"storage", "organization", "rack", "metal"}, Description: "Heavy-duty metal storage rack for garage or basement.", Sku: "WAY-6TSR-001"},
	{Name: "Garden Hose 50ft", Brand: "Home Depot", Category: "Home & Garden", Price: 34.99, Stock: 45, Rating: 4.2, Tags: []string{"garden", "hose", "watering", "outdoor"}, Description: "Durable 50-foot garden hose with spray nozzle.", Sku: "HD-GH50-001"},
	{Name: "FRIHETEN Corner Sofa-Bed", Brand: "IKEA", Category: "Home & Garden", Price: 449.99, Stock: 8, Rating: 4.3, Tags: []string{"sofa", "sofa-bed", "corner", "storage"}, Description: "Corner sofa-bed with storage for small apartments.", Sku: "IKE-FRI-CSB-001"},
	{Name: "Upholstered Dining Chair Set", Brand: "Wayfair", Category: "Home & Garden", Price: 189.99, Stock: 20, Rating: 4.0, Tags: []string{"chairs", "dining", "upholstered", "set"}, Description: "Set of 2 comfortable upholstered dining chairs.", Sku: "WAY-UDC-SET-001"},
	{Name: "LED Work Light", Brand: "Home Depot", Category: "Home & Garden", Price: 29.99, Stock: 35, Rating: 4.1, Tags: []string{"light", "led", "work", "portable"}, Description: "Bright LED work light for construction and repair tasks.", Sku: "HD-LWL-001"},
	{Name: "Bamboo Coffee Table", Brand: "Wayfair", Category: "Home & Garden", Price: 159.99, Stock: 14, Rating: 4.2, Tags: []string{"table", "coffee-table", "bamboo", "eco-friendly"}, Description: "Sustainable bamboo coffee table with modern design.", Sku: "WAY-BCT-001"},
	{Name: "MALM Desk with Drawer", Brand: "IKEA", Category: "Home & Garden", Price: 119.99, Stock: 25, Rating: 4.3, Tags: []string{"desk", "office", "drawer", "workspace"}, Description: "Simple desk with pull-out panel and drawer for storage.", Sku: "IKE-MAL-DWD-001"},
}
