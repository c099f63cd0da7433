package ordertext

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/equimagotouroku/salon-inventory-webhook/internal/domain/entity"
)

// 汎用パターン: 商品コード + 数量 + 任意の単位トークン（例: 5NN 2本 / BP300 500g）。
// コードは英字を1文字以上含むこと。数字だけだと「2本」の 2 をコードに誤認するため。
var genericOrderRe = regexp.MustCompile(`([0-9]*[A-Za-z][0-9A-Za-z]*)\s*([0-9]+)\s*(本|個|グラム|g)?`)

// コレストン専用パターン: 色番が「8/19」のように2つの数字で表される（例: コレストン 8 19 2本）。
// 2つの数字を連結して複合コードにする。本数の指定は任意で、省略時は1本。
var kolestonOrderRe = regexp.MustCompile(`コレストン\s*([0-9]{1,2})[\s/・-]+([0-9]{1,2})\s*(?:([0-9]+)\s*本)?`)

// 数量の妥当域。これを外れる値は打ち間違いとみなして不成立にする。
const (
	minQuantity = 1
	maxQuantity = 9999
)

// ParseInventoryRequest は本文から発注依頼を抽出します。
// 発注キーワードを含まない、またはどのパターンにも一致しない場合は nil を返します。
// 汎用パターンを先に試し、一致しなければコレストンパターンを試します。
func ParseInventoryRequest(text string) *entity.InventoryRequest {
	if !HasOrderIntent(text) {
		return nil
	}
	normalized := Normalize(text)

	if m := genericOrderRe.FindStringSubmatch(normalized); m != nil {
		qty, err := strconv.Atoi(m[2])
		if err != nil || qty < minQuantity || qty > maxQuantity {
			return nil
		}
		code := strings.ToUpper(m[1])
		return &entity.InventoryRequest{
			ProductCode:  code,
			Quantity:     qty,
			Unit:         unitFromToken(m[3], code),
			OriginalText: text,
			Priority:     detectPriority(normalized),
		}
	}

	if m := kolestonOrderRe.FindStringSubmatch(normalized); m != nil {
		qty := 1
		if m[3] != "" {
			n, err := strconv.Atoi(m[3])
			if err != nil || n < minQuantity || n > maxQuantity {
				return nil
			}
			qty = n
		}
		return &entity.InventoryRequest{
			ProductCode:  m[1] + "/" + m[2],
			Quantity:     qty,
			Unit:         entity.UnitHon,
			OriginalText: text,
			Priority:     detectPriority(normalized),
		}
	}

	return nil
}

// unitFromToken は本文中の単位トークンを正規の単位へ丸めます。
// トークンが無いときは商品コードから推定します。
func unitFromToken(token, code string) entity.Unit {
	switch token {
	case "本", "個":
		return entity.UnitHon
	case "g", "グラム":
		return entity.UnitGram
	default:
		return DefaultUnit(code)
	}
}
