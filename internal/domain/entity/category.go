package entity

// Category は商品の大分類です。
type Category string

const (
	CategoryColor         Category = "color"
	CategoryStraightening Category = "straightening"
	CategoryTreatment     Category = "treatment"
	CategoryOther         Category = "other"
)

// Label は返信文に載せる日本語の分類名を返します。
func (c Category) Label() string {
	switch c {
	case CategoryColor:
		return "カラー剤"
	case CategoryStraightening:
		return "縮毛矯正剤"
	case CategoryTreatment:
		return "トリートメント"
	default:
		return "その他"
	}
}

// CategoryResult は分類結果です。Type は分類内の詳細種別
// （カラー剤ならグレイカラー / ファッションカラーなど）。
// 商品コードと本文だけから導出され、状態は持ちません。
type CategoryResult struct {
	Category Category
	Type     string
}
