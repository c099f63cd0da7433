package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/equimagotouroku/salon-inventory-webhook/internal/application/order"
	"github.com/equimagotouroku/salon-inventory-webhook/internal/domain/entity"
)

// コンパイル時に CatalogReader を実装していることを確認。
var _ order.CatalogReader = (*FileStore)(nil)

// FileStore は商品マスタ（products.json）と在庫（stock.json）を読むだけのストア。
// ファイルは店側が手で更新する外部データなので、キャッシュせず毎回読み直す。
type FileStore struct {
	productsPath string
	stockPath    string
}

// NewFileStore はストアを構築します。ファイルの存在確認は読み込み時まで遅らせる。
func NewFileStore(productsPath, stockPath string) *FileStore {
	return &FileStore{productsPath: productsPath, stockPath: stockPath}
}

// Products は商品マスタを読み込みます。
func (s *FileStore) Products(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := readJSON(ctx, s.productsPath, &products); err != nil {
		return nil, fmt.Errorf("catalog: 商品マスタの読み込み: %w", err)
	}
	return products, nil
}

// Stock は在庫ファイルを読み込みます。
func (s *FileStore) Stock(ctx context.Context) ([]entity.StockItem, error) {
	var stock []entity.StockItem
	if err := readJSON(ctx, s.stockPath, &stock); err != nil {
		return nil, fmt.Errorf("catalog: 在庫ファイルの読み込み: %w", err)
	}
	return stock, nil
}

func readJSON(ctx context.Context, path string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
