package sqlguard

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"catalog-chat-be/internal/apperror"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:executor_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`CREATE TABLE products (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		price REAL NOT NULL
	)`).Error)
	for i := 1; i <= 5; i++ {
		require.NoError(t, db.Exec(
			`INSERT INTO products (name, price) VALUES (?, ?)`,
			fmt.Sprintf("product-%d", i), float64(i)*10,
		).Error)
	}
	return db
}

func TestExecutorExecute(t *testing.T) {
	db := newTestDB(t)
	exec := NewExecutor(db, CatalogTables, 5*time.Second, 100)

	result, err := exec.Execute(context.Background(), "SELECT name, price FROM products ORDER BY price")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "price"}, result.Columns)
	assert.Equal(t, 5, result.RowCount)
	assert.False(t, result.Truncated)
	assert.Equal(t, "product-1", result.Rows[0][0])
}

func TestExecutorRejectsInvalidSQL(t *testing.T) {
	db := newTestDB(t)
	exec := NewExecutor(db, CatalogTables, 5*time.Second, 100)

	_, err := exec.Execute(context.Background(), "DROP TABLE products")
	var validationErr *apperror.ValidationError
	require.True(t, errors.As(err, &validationErr))

	// The table must still exist.
	var count int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM products").Scan(&count).Error)
	assert.Equal(t, int64(5), count)
}

func TestExecutorRowCap(t *testing.T) {
	db := newTestDB(t)
	exec := NewExecutor(db, CatalogTables, 5*time.Second, 3)

	result, err := exec.Execute(context.Background(), "SELECT name FROM products")
	var tooLargeErr *apperror.QueryTooLargeError
	require.True(t, errors.As(err, &tooLargeErr))
	assert.Equal(t, 3, tooLargeErr.RowLimit)

	// Rows up to the cap still come back.
	require.NotNil(t, result)
	assert.Equal(t, 3, result.RowCount)
	assert.True(t, result.Truncated)
}

func TestExecutorTimeout(t *testing.T) {
	db := newTestDB(t)
	exec := NewExecutor(db, CatalogTables, 5*time.Second, 100)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := exec.Execute(ctx, "SELECT name FROM products")
	var timeoutErr *apperror.QueryTimeoutError
	require.True(t, errors.As(err, &timeoutErr))
}

func TestQueryResultJSON(t *testing.T) {
	result := &QueryResult{
		Columns:  []string{"name"},
		Rows:     [][]interface{}{{"widget"}},
		RowCount: 1,
	}
	assert.Contains(t, result.JSON(), `"widget"`)

	var nilResult *QueryResult
	assert.Equal(t, "", nilResult.JSON())
}
