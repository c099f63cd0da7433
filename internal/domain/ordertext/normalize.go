// Package ordertext: LINEグループの発注メッセージを解析する純粋ロジック。
// 正規化・トリガー判定・数量抽出・分類まで正規表現ベースで行い、外部サービスには依存しない。
package ordertext

import (
	"strings"

	"golang.org/x/text/width"
)

// Normalize は表記ゆれを吸収した比較・解析用の文字列を返します。
// 全角英数字と全角スペースを半角へ折り畳み（５ＮＮ　２本 → 5NN 2本）、前後の空白を除きます。
// カタカナや漢字はそのまま残ります。
func Normalize(s string) string {
	return strings.TrimSpace(width.Fold.String(s))
}
