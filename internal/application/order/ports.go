package order

import (
	"context"

	"github.com/equimagotouroku/salon-inventory-webhook/internal/domain/entity"
)

// ReplySender は返信APIへの出口ポート。実装は infrastructure/line。
// texts は1〜5件（LINEの返信メッセージ上限）。
type ReplySender interface {
	Reply(ctx context.Context, replyToken string, texts []string) error
}

// CatalogReader は商品マスタと在庫ファイルの読み取りポート。実装は infrastructure/catalog。
// ファイルは店側が手で更新するため、呼び出しごとに読み直す前提。
type CatalogReader interface {
	Products(ctx context.Context) ([]entity.Product, error)
	Stock(ctx context.Context) ([]entity.StockItem, error)
}
