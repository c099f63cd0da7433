package catalog_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equimagotouroku/salon-inventory-webhook/internal/domain/entity"
	"github.com/equimagotouroku/salon-inventory-webhook/internal/infrastructure/catalog"
)

func testStore() *catalog.FileStore {
	return catalog.NewFileStore(
		filepath.Join("testdata", "products.json"),
		filepath.Join("testdata", "stock.json"),
	)
}

func TestProducts_ReadsCatalogFile(t *testing.T) {
	products, err := testStore().Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 4)

	first := products[0]
	assert.Equal(t, "5NN", first.Code)
	assert.Equal(t, "アソートカラー 5NN", first.Name)
	assert.Equal(t, entity.CategoryColor, first.Category)
	assert.Equal(t, entity.UnitHon, first.Unit)
	assert.True(t, decimal.NewFromInt(1200).Equal(first.Price), "単価はdecimalで読める")
}

func TestStock_ReadsStockFile(t *testing.T) {
	stock, err := testStore().Stock(context.Background())
	require.NoError(t, err)
	require.Len(t, stock, 4)

	assert.Equal(t, "GR13", stock[1].Code)
	assert.Equal(t, 0, stock[1].Quantity, "在庫切れは0で表現される")
}

func TestProducts_MissingFile(t *testing.T) {
	store := catalog.NewFileStore(
		filepath.Join("testdata", "no-such-file.json"),
		filepath.Join("testdata", "stock.json"),
	)

	_, err := store.Products(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog:", "どの層で失敗したか分かるように包む")
}

func TestStock_MalformedFile(t *testing.T) {
	store := catalog.NewFileStore(
		filepath.Join("testdata", "products.json"),
		filepath.Join("testdata", "broken.json"),
	)

	_, err := store.Stock(context.Background())
	assert.Error(t, err, "壊れたJSONはエラーとして呼び出し側に返す")
}

func TestProducts_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testStore().Products(ctx)
	assert.Error(t, err)
}
