package entity

// StockItem は stock.json の1行で、商品コードごとの現在庫です。
// Quantity の単位は商品の Unit に従います。
type StockItem struct {
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}
