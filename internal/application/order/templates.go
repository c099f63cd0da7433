package order

import (
	"fmt"
	"strings"

	"github.com/equimagotouroku/salon-inventory-webhook/internal/domain/entity"
)

// LINEグループに返す日本語テンプレート。文言を変えるときはここだけ直す。

// buildConfirmation は発注受付の返信文を組み立てます。
func buildConfirmation(req *entity.InventoryRequest, cat entity.CategoryResult) string {
	var b strings.Builder

	if req.Priority == entity.PriorityUrgent {
		b.WriteString("🔥【至急】発注を受け付けました！\n")
	} else {
		b.WriteString("✅ 発注を受け付けました\n")
	}
	fmt.Fprintf(&b, "📦 商品コード: %s\n", req.ProductCode)
	fmt.Fprintf(&b, "🔢 数量: %d%s\n", req.Quantity, req.Unit)
	fmt.Fprintf(&b, "🏷 分類: %s\n", categoryLine(cat))
	fmt.Fprintf(&b, "⚡ 優先度: %s", req.Priority.Label())

	return b.String()
}

// categoryLine はカラー剤だけ詳細種別を括弧で添えます。他の分類は Type が
// 分類名の言い換えにしかならないので省く。
func categoryLine(cat entity.CategoryResult) string {
	if cat.Category == entity.CategoryColor && cat.Type != "" {
		return fmt.Sprintf("%s（%s）", cat.Category.Label(), cat.Type)
	}
	return cat.Category.Label()
}

// buildHelp は書式が読み取れなかったときの使い方案内です。
func buildHelp() string {
	return strings.Join([]string{
		"📋 発注の書き方",
		"商品コードと数量を一緒に送ってください。",
		"・5NN 2本欲しい",
		"・至急GR13 1本お願い",
		"・コレストン 8 19 2本発注",
		"「在庫」と送ると現在の在庫一覧を返します。",
	}, "\n")
}

// buildStockList は商品マスタと在庫を商品コードで突き合わせて一覧にします。
func buildStockList(products []entity.Product, stock []entity.StockItem) string {
	onHand := make(map[string]int, len(stock))
	for _, s := range stock {
		onHand[s.Code] = s.Quantity
	}

	var b strings.Builder
	b.WriteString("📦 現在の在庫")
	for _, p := range products {
		qty := onHand[p.Code]
		fmt.Fprintf(&b, "\n・%s %s: %d%s", p.Code, p.Name, qty, p.Unit)
		if qty == 0 {
			b.WriteString(" ⚠️在庫切れ")
		}
	}
	if len(products) == 0 {
		b.WriteString("\n（商品マスタが空です）")
	}
	return b.String()
}

// buildStockUnavailable は在庫ファイルを読めなかったときの代替文です。
func buildStockUnavailable() string {
	return "⚠️ 在庫データを読み込めませんでした。しばらくしてからもう一度お試しください。"
}
