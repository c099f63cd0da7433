package order

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/equimagotouroku/salon-inventory-webhook/internal/application/dto"
	"github.com/equimagotouroku/salon-inventory-webhook/internal/domain/ordertext"
	"github.com/equimagotouroku/salon-inventory-webhook/pkg/logger"
	"github.com/equimagotouroku/salon-inventory-webhook/pkg/metrics"
)

// Outcome は1イベントの処理結果。ハンドラが processed 件数の集計に使う。
type Outcome string

const (
	OutcomeSkipped   Outcome = "skipped"
	OutcomeOrdered   Outcome = "ordered"
	OutcomeStockList Outcome = "stock_list"
	OutcomeHelp      Outcome = "help"
)

// GateConfig は処理対象を絞り込む設定。両方とも空なら全イベントを処理する。
type GateConfig struct {
	// AllowedSourceIDs が非空のとき、送信元ID（グループ > ルーム > ユーザー）が
	// この中に無いイベントは黙って捨てる。
	AllowedSourceIDs []string
	// CommandPrefix が設定されているとき、この接頭辞で始まる本文だけを処理する。
	// 接頭辞は解析前に取り除く。
	CommandPrefix string
}

// UseCase はテキストメッセージ1件分の発注フローを束ねます。
// ゲート → 在庫一覧 → トリガー判定 → 解析 → 分類 → 返信。
// 返信は fire-and-log で、失敗してもイベント処理は成功扱いのまま進める。
type UseCase struct {
	sender  ReplySender
	catalog CatalogReader
	log     *logger.Logger
	met     *metrics.WebhookMetrics
	gate    GateConfig
	allowed map[string]struct{}
}

// NewUseCase はユースケースを構築します。
func NewUseCase(sender ReplySender, catalog CatalogReader, log *logger.Logger, met *metrics.WebhookMetrics, gate GateConfig) *UseCase {
	allowed := make(map[string]struct{}, len(gate.AllowedSourceIDs))
	for _, id := range gate.AllowedSourceIDs {
		if id != "" {
			allowed[id] = struct{}{}
		}
	}
	return &UseCase{
		sender:  sender,
		catalog: catalog,
		log:     log,
		met:     met,
		gate:    gate,
		allowed: allowed,
	}
}

// HandleEvent は受信イベント1件を処理します。
// テキストメッセージ以外、許可リスト外、接頭辞不一致、発注キーワード無しは
// 何も返信せずスキップ。書式が読み取れなければヘルプを返信する。
func (uc *UseCase) HandleEvent(ctx context.Context, ev dto.WebhookEvent) Outcome {
	if ev.Type != "message" || ev.Message.Type != "text" || ev.Message.Text == "" {
		return OutcomeSkipped
	}
	if ev.ReplyToken == "" {
		return OutcomeSkipped
	}
	if !uc.sourceAllowed(ev.Source.ChatID()) {
		uc.log.Debug().Str("chat_id", ev.Source.ChatID()).Msg("許可リスト外のため無視")
		return OutcomeSkipped
	}
	text, ok := uc.stripPrefix(ev.Message.Text)
	if !ok {
		return OutcomeSkipped
	}

	// イベント内の処理を追えるよう相関IDを振る
	zl := uc.log.With().
		Str("proc_id", uuid.NewString()).
		Str("message_id", ev.Message.ID).
		Logger()

	if ordertext.IsStockListRequest(text) {
		return uc.replyStockList(ctx, zl, ev.ReplyToken)
	}

	if !ordertext.HasOrderIntent(text) {
		uc.met.ParseTotal.WithLabelValues("no_trigger").Inc()
		return OutcomeSkipped
	}

	req := ordertext.ParseInventoryRequest(text)
	if req == nil {
		uc.met.ParseTotal.WithLabelValues("no_match").Inc()
		zl.Info().Str("text", text).Msg("書式を読み取れなかったためヘルプを返信")
		uc.send(ctx, zl, ev.ReplyToken, buildHelp())
		return OutcomeHelp
	}
	uc.met.ParseTotal.WithLabelValues("ok").Inc()

	cat := ordertext.DetectCategory(req.ProductCode, text)
	zl.Info().
		Str("product_code", req.ProductCode).
		Int("quantity", req.Quantity).
		Str("unit", string(req.Unit)).
		Str("priority", string(req.Priority)).
		Str("category", string(cat.Category)).
		Msg("発注依頼を受理")
	uc.send(ctx, zl, ev.ReplyToken, buildConfirmation(req, cat))
	return OutcomeOrdered
}

func (uc *UseCase) sourceAllowed(chatID string) bool {
	if len(uc.allowed) == 0 {
		return true
	}
	_, ok := uc.allowed[chatID]
	return ok
}

// stripPrefix は接頭辞ゲートを適用します。戻り値の bool は処理対象かどうか。
func (uc *UseCase) stripPrefix(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if uc.gate.CommandPrefix == "" {
		return trimmed, true
	}
	if !strings.HasPrefix(trimmed, uc.gate.CommandPrefix) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(trimmed, uc.gate.CommandPrefix)), true
}

// replyStockList は在庫一覧を返信します。ファイルを読めなければ代替文を返す。
func (uc *UseCase) replyStockList(ctx context.Context, zl zerolog.Logger, replyToken string) Outcome {
	products, perr := uc.catalog.Products(ctx)
	stock, serr := uc.catalog.Stock(ctx)
	if perr != nil || serr != nil {
		zl.Error().AnErr("products_err", perr).AnErr("stock_err", serr).
			Msg("在庫ファイルの読み込みに失敗")
		uc.send(ctx, zl, replyToken, buildStockUnavailable())
		return OutcomeStockList
	}
	uc.send(ctx, zl, replyToken, buildStockList(products, stock))
	return OutcomeStockList
}

// send は返信の送信。失敗はログと計測に残すだけで呼び出し元へは返さない。
func (uc *UseCase) send(ctx context.Context, zl zerolog.Logger, replyToken, text string) {
	start := time.Now()
	err := uc.sender.Reply(ctx, replyToken, []string{text})
	uc.met.ReplyLatency.Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		uc.met.RepliesTotal.WithLabelValues("error").Inc()
		zl.Error().Err(err).Msg("返信APIの呼び出しに失敗")
		return
	}
	uc.met.RepliesTotal.WithLabelValues("ok").Inc()
}
