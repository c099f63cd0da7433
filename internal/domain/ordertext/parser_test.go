package ordertext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equimagotouroku/salon-inventory-webhook/internal/domain/entity"
	"github.com/equimagotouroku/salon-inventory-webhook/internal/domain/ordertext"
)

// ──────────────────────────────────────────────────────────────────────────────
// ParseInventoryRequest はこのサービスの心臓部なので、実際のグループで流れた
// 言い回しをそのままテストベクタにしている。
//
// 押さえるべき契約:
//   - 全角英数字・全角スペースは解析前に半角へ正規化される（５ＮＮ　２本 → 5NN 2本）
//   - 発注キーワードが無い本文はコードらしき文字列があっても nil
//   - 汎用パターン → コレストンパターンの順で試し、先に一致した方を採用
//   - 至急系キーワードで priority が urgent になる
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalize_ZenkakuToHankaku(t *testing.T) {
	assert.Equal(t, "5NN 2本", ordertext.Normalize("５ＮＮ　２本"),
		"全角英数字と全角スペースは半角に揃える")
}

func TestNormalize_TrimsAndKeepsKana(t *testing.T) {
	assert.Equal(t, "コレストン 8/19", ordertext.Normalize("  ｺﾚｽﾄﾝ　８/１９ "),
		"半角カタカナは全角へ、英数字は半角へ寄せる")
}

func TestParseInventoryRequest_BasicOrder(t *testing.T) {
	req := ordertext.ParseInventoryRequest("5NN 2本欲しい")
	require.NotNil(t, req, "発注キーワードとコードがあれば解析できる")

	assert.Equal(t, "5NN", req.ProductCode)
	assert.Equal(t, 2, req.Quantity)
	assert.Equal(t, entity.UnitHon, req.Unit)
	assert.Equal(t, entity.PriorityNormal, req.Priority)
	assert.Equal(t, "5NN 2本欲しい", req.OriginalText)
}

func TestParseInventoryRequest_ZenkakuInput(t *testing.T) {
	req := ordertext.ParseInventoryRequest("５ＮＮ　２本欲しい")
	require.NotNil(t, req, "全角入力でも正規化してから解析する")

	assert.Equal(t, "5NN", req.ProductCode)
	assert.Equal(t, 2, req.Quantity)
	assert.Equal(t, "５ＮＮ　２本欲しい", req.OriginalText,
		"OriginalText は正規化前の原文を保持する")
}

func TestParseInventoryRequest_UrgentKeyword(t *testing.T) {
	req := ordertext.ParseInventoryRequest("至急GR13 1本欲しい")
	require.NotNil(t, req)

	assert.Equal(t, "GR13", req.ProductCode)
	assert.Equal(t, 1, req.Quantity)
	assert.Equal(t, entity.PriorityUrgent, req.Priority, "「至急」があれば urgent")
}

func TestParseInventoryRequest_NoTriggerReturnsNil(t *testing.T) {
	assert.Nil(t, ordertext.ParseInventoryRequest("5NN 2本"),
		"発注キーワードが無ければコードがあっても nil")
	assert.Nil(t, ordertext.ParseInventoryRequest("今日は5名予約入ってます"),
		"雑談は解析対象外")
}

func TestParseInventoryRequest_NoCodeReturnsNil(t *testing.T) {
	assert.Nil(t, ordertext.ParseInventoryRequest("シャンプー欲しい"),
		"商品コードが無ければ nil（ヘルプ返信側で案内する）")
}

func TestParseInventoryRequest_GramUnit(t *testing.T) {
	req := ordertext.ParseInventoryRequest("BP300 500g発注お願いします")
	require.NotNil(t, req)

	assert.Equal(t, "BP300", req.ProductCode)
	assert.Equal(t, 500, req.Quantity)
	assert.Equal(t, entity.UnitGram, req.Unit)
}

func TestParseInventoryRequest_UnitTokenVariants(t *testing.T) {
	cases := []struct {
		text string
		unit entity.Unit
	}{
		{"OX6 2個 発注", entity.UnitHon},      // 個は本数扱い
		{"BP300 500グラム 発注", entity.UnitGram}, // グラム表記
		{"5NN 2 発注", entity.UnitHon},       // 単位省略はコードから推定
	}
	for _, c := range cases {
		req := ordertext.ParseInventoryRequest(c.text)
		require.NotNil(t, req, "text=%s", c.text)
		assert.Equal(t, c.unit, req.Unit, "text=%s", c.text)
	}
}

func TestParseInventoryRequest_Koleston(t *testing.T) {
	req := ordertext.ParseInventoryRequest("コレストン 8 19 2本発注")
	require.NotNil(t, req, "コレストンの2数字パターンを解析できる")

	assert.Equal(t, "8/19", req.ProductCode, "2つの色番は / で連結する")
	assert.Equal(t, 2, req.Quantity)
	assert.Equal(t, entity.UnitHon, req.Unit)
}

func TestParseInventoryRequest_KolestonDefaultQuantity(t *testing.T) {
	req := ordertext.ParseInventoryRequest("コレストン 8/19 お願い")
	require.NotNil(t, req)

	assert.Equal(t, "8/19", req.ProductCode)
	assert.Equal(t, 1, req.Quantity, "本数の指定が無ければ1本")
}

func TestParseInventoryRequest_QuantityOutOfRange(t *testing.T) {
	assert.Nil(t, ordertext.ParseInventoryRequest("GR13 0本欲しい"),
		"0本は打ち間違いとして不成立")
	assert.Nil(t, ordertext.ParseInventoryRequest("GR13 10000本欲しい"),
		"1万本以上は打ち間違いとして不成立")
}

// ── 優先度とトリガー ──────────────────────────────────────────────────────────

func TestHasOrderIntent(t *testing.T) {
	assert.True(t, ordertext.HasOrderIntent("6Nが足りないです"))
	assert.True(t, ordertext.HasOrderIntent("オキシ切れそう"))
	assert.False(t, ordertext.HasOrderIntent("お疲れさまです"))
}

func TestParseInventoryRequest_UrgentVariants(t *testing.T) {
	for _, text := range []string{
		"大至急 5NN 2本お願い",
		"急ぎでGR13 1本発注",
		"緊急！BP300 500g補充して",
	} {
		req := ordertext.ParseInventoryRequest(text)
		require.NotNil(t, req, "text=%s", text)
		assert.Equal(t, entity.PriorityUrgent, req.Priority, "text=%s", text)
	}
}

func TestIsStockListRequest(t *testing.T) {
	assert.True(t, ordertext.IsStockListRequest("在庫"))
	assert.True(t, ordertext.IsStockListRequest("ざいこ教えて"))
	assert.True(t, ordertext.IsStockListRequest("ストック見せて"))
	assert.False(t, ordertext.IsStockListRequest("5NNの在庫ある？"),
		"先頭一致のみ。文中の「在庫」では発動しない")
}

// ── 既定単位 ──────────────────────────────────────────────────────────────────

func TestDefaultUnit_PowderPrefix(t *testing.T) {
	assert.Equal(t, entity.UnitGram, ordertext.DefaultUnit("BP300"), "ブリーチパウダーはグラム")
	assert.Equal(t, entity.UnitGram, ordertext.DefaultUnit("pw100"), "小文字コードでも判定できる")
	assert.Equal(t, entity.UnitHon, ordertext.DefaultUnit("5NN"), "カラー剤は本数")
	assert.Equal(t, entity.UnitHon, ordertext.DefaultUnit("GR13"))
}
