package ordertext

import (
	"regexp"
	"strings"

	"github.com/equimagotouroku/salon-inventory-webhook/internal/domain/entity"
)

// カラー剤の色番パターン。5NN / GR13 / 8/19 のような番号+英字の組み合わせに一致する。
var shadeCodeRe = regexp.MustCompile(`^(?:[0-9]{1,2}[A-Za-z]{1,4}[0-9]{0,2}|[A-Za-z]{1,4}[0-9]{1,2}|[0-9]{1,2}/[0-9]{1,2})$`)

// グレイカラー系のコード接頭辞（GR13 など）。
var grayShadeRe = regexp.MustCompile(`^GR[0-9]`)

// DetectCategory は商品コードと本文から商品分類を推定します。
// 縮毛矯正 → トリートメント → カラーの順で判定し、どれにも該当しなければ「その他」。
// 本文の文言を優先するのは、コードだけでは矯正剤とカラー剤を区別できないため。
func DetectCategory(code, text string) entity.CategoryResult {
	c := strings.ToUpper(Normalize(code))
	t := Normalize(text)

	switch {
	case containsAny(t, "縮毛矯正", "ストレート", "ストパー"):
		return entity.CategoryResult{Category: entity.CategoryStraightening, Type: "ストレート剤"}
	case strings.Contains(t, "トリートメント"):
		return entity.CategoryResult{Category: entity.CategoryTreatment, Type: "トリートメント"}
	case shadeCodeRe.MatchString(c) || containsAny(t, "カラー", "白髪染め"):
		if grayShadeRe.MatchString(c) {
			return entity.CategoryResult{Category: entity.CategoryColor, Type: "グレイカラー"}
		}
		return entity.CategoryResult{Category: entity.CategoryColor, Type: "ファッションカラー"}
	default:
		return entity.CategoryResult{Category: entity.CategoryOther, Type: "その他"}
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
