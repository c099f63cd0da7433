package entity

// Unit は発注数量の単位です。本数で数える商品は「本」、重量で発注する商品は「g」。
type Unit string

const (
	UnitHon  Unit = "本"
	UnitGram Unit = "g"
)

// Priority は発注の優先度です。本文に至急系のキーワードがあると urgent になります。
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityNormal Priority = "normal"
)

// Label は返信文に載せる日本語表記を返します。
func (p Priority) Label() string {
	if p == PriorityUrgent {
		return "至急"
	}
	return "通常"
}

// InventoryRequest はチャット本文から抽出した発注依頼です。
// 1リクエストの処理中だけ生きる一時データで、永続化はしません。
type InventoryRequest struct {
	ProductCode  string
	Quantity     int
	Unit         Unit
	OriginalText string // 正規化前の元メッセージ
	Priority     Priority
}
