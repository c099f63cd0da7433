package entity

import "github.com/shopspring/decimal"

// Product は products.json の1商品です。
// ファイルはサロン側が手動で管理する外部データで、本サービスは読み取りのみ行います。
type Product struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Category Category        `json:"category"`
	Unit     Unit            `json:"unit"`
	Price    decimal.Decimal `json:"price"` // 仕入単価（円）
}
