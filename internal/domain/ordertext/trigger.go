package ordertext

import (
	"strings"

	"github.com/equimagotouroku/salon-inventory-webhook/internal/domain/entity"
)

// 発注の意思を示すキーワード。1つでも含まれていれば解析対象とする。
var orderIntentKeywords = []string{
	"欲しい",
	"ほしい",
	"発注",
	"注文",
	"お願い",
	"足りない",
	"切れ",
	"補充",
	"頼む",
}

// 至急扱いにするキーワード。「大至急」は「至急」を含むが、単体でも判定できるよう両方並べる。
var urgentKeywords = []string{
	"大至急",
	"至急",
	"急ぎ",
	"緊急",
}

// 在庫一覧の問い合わせキーワード。メッセージの先頭一致で判定する。
var stockListKeywords = []string{
	"在庫",
	"ざいこ",
	"ストック",
}

// HasOrderIntent は本文に発注キーワードが含まれるかを返します。
// 「5NN 2本」のような数量だけの投稿は雑談と区別できないため対象外です。
func HasOrderIntent(text string) bool {
	t := Normalize(text)
	for _, kw := range orderIntentKeywords {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}

// IsStockListRequest は在庫一覧の問い合わせかを返します。
func IsStockListRequest(text string) bool {
	t := Normalize(text)
	for _, kw := range stockListKeywords {
		if strings.HasPrefix(t, kw) {
			return true
		}
	}
	return false
}

// detectPriority は本文から優先度を判定します。
func detectPriority(normalized string) entity.Priority {
	for _, kw := range urgentKeywords {
		if strings.Contains(normalized, kw) {
			return entity.PriorityUrgent
		}
	}
	return entity.PriorityNormal
}
