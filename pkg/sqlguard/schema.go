package sqlguard

import "strings"

// TableSpec is one allow-listed table: its name plus the DDL-style
// description fed to the SQL-generation prompt. Keeping both in one place
// guarantees the model is only ever told about tables the guard will accept.
type TableSpec struct {
	Name string
	DDL  string
}

// CatalogTables is the fixed allow-list for the sample product catalog.
var CatalogTables = []TableSpec{
	{
		Name: "categories",
		DDL: `CREATE TABLE categories (
	id INTEGER PRIMARY KEY,
	name VARCHAR(100) NOT NULL UNIQUE,
	slug VARCHAR(100) NOT NULL UNIQUE,
	description TEXT,
	is_active BOOLEAN DEFAULT true
)`,
	},
	{
		Name: "brands",
		DDL: `CREATE TABLE brands (
	id INTEGER PRIMARY KEY,
	name VARCHAR(100) NOT NULL UNIQUE,
	slug VARCHAR(100) NOT NULL UNIQUE,
	description TEXT,
	website VARCHAR(200),
	is_active BOOLEAN DEFAULT true
)`,
	},
	{
		Name: "products",
		DDL: `CREATE TABLE products (
	id INTEGER PRIMARY KEY,
	name VARCHAR(200) NOT NULL,
	brand_id INTEGER NOT NULL REFERENCES brands(id),
	category_id INTEGER NOT NULL REFERENCES categories(id),
	price NUMERIC(10,2) NOT NULL,
	stock INTEGER DEFAULT 0,
	rating REAL DEFAULT 0,
	tags JSON,
	description TEXT,
	sku VARCHAR(100) UNIQUE,
	is_active BOOLEAN DEFAULT true,
	created_at TIMESTAMP,
	updated_at TIMESTAMP
)`,
	},
}

// AllowedTableNames returns the allow-list as plain names.
func AllowedTableNames(specs []TableSpec) []string {
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
	}
	return names
}

// SchemaInfo renders the table descriptions for the prompt.
func SchemaInfo(specs []TableSpec) string {
	parts := make([]string, len(specs))
	for i, s := range specs {
		parts[i] = s.DDL
	}
	return strings.Join(parts, "\n\n")
}
