package ordertext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/equimagotouroku/salon-inventory-webhook/internal/domain/entity"
	"github.com/equimagotouroku/salon-inventory-webhook/internal/domain/ordertext"
)

func TestDetectCategory_ColorByCode(t *testing.T) {
	res := ordertext.DetectCategory("5NN", "5NN 2本欲しい")

	assert.Equal(t, entity.CategoryColor, res.Category, "色番コードはカラー剤")
	assert.Equal(t, "ファッションカラー", res.Type)
}

func TestDetectCategory_GrayColor(t *testing.T) {
	res := ordertext.DetectCategory("GR13", "GR13 1本お願い")

	assert.Equal(t, entity.CategoryColor, res.Category)
	assert.Equal(t, "グレイカラー", res.Type, "GR+数字はグレイカラー")
}

func TestDetectCategory_KolestonCompositeCode(t *testing.T) {
	res := ordertext.DetectCategory("8/19", "コレストン 8 19 2本発注")

	assert.Equal(t, entity.CategoryColor, res.Category, "8/19 形式の複合コードもカラー剤")
}

func TestDetectCategory_StraighteningByText(t *testing.T) {
	res := ordertext.DetectCategory("ABC", "縮毛矯正")

	assert.Equal(t, entity.CategoryStraightening, res.Category,
		"本文に縮毛矯正とあればコードより優先する")
	assert.Equal(t, "ストレート剤", res.Type)
}

func TestDetectCategory_StraighteningVariants(t *testing.T) {
	for _, text := range []string{"ストレート剤が切れた", "ストパーの1液発注"} {
		res := ordertext.DetectCategory("", text)
		assert.Equal(t, entity.CategoryStraightening, res.Category, "text=%s", text)
	}
}

func TestDetectCategory_Treatment(t *testing.T) {
	res := ordertext.DetectCategory("TR5", "トリートメント補充お願いします")

	assert.Equal(t, entity.CategoryTreatment, res.Category)
	assert.Equal(t, "トリートメント", res.Type)
}

func TestDetectCategory_ColorByText(t *testing.T) {
	res := ordertext.DetectCategory("", "白髪染めの6番が足りない")

	assert.Equal(t, entity.CategoryColor, res.Category, "コードが無くても本文から判定できる")
}

func TestDetectCategory_FallbackOther(t *testing.T) {
	res := ordertext.DetectCategory("ABC", "ABC 1本欲しい")

	assert.Equal(t, entity.CategoryOther, res.Category, "どれにも該当しなければその他")
	assert.Equal(t, "その他", res.Type)
}

func TestDetectCategory_ZenkakuCode(t *testing.T) {
	res := ordertext.DetectCategory("５ＮＮ", "")

	assert.Equal(t, entity.CategoryColor, res.Category, "全角コードも正規化して判定する")
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "カラー剤", entity.CategoryColor.Label())
	assert.Equal(t, "縮毛矯正剤", entity.CategoryStraightening.Label())
	assert.Equal(t, "トリートメント", entity.CategoryTreatment.Label())
	assert.Equal(t, "その他", entity.CategoryOther.Label())
	assert.Equal(t, "その他", entity.Category("unknown").Label())
}
