package ordertext

import (
	"regexp"
	"strings"

	"github.com/equimagotouroku/salon-inventory-webhook/internal/domain/entity"
)

// 重量売りの商品コード接頭辞。BP=ブリーチパウダー、PW=パウダー類。
var gramPrefixRe = regexp.MustCompile(`^(?:BP|PW)`)

// DefaultUnit は単位の指定がないときの既定単位を商品コードから推定します。
// パウダー系（BP/PW で始まるコード）はグラム、それ以外は本数で扱います。
func DefaultUnit(code string) entity.Unit {
	if gramPrefixRe.MatchString(strings.ToUpper(code)) {
		return entity.UnitGram
	}
	return entity.UnitHon
}
