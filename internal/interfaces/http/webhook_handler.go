package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/equimagotouroku/salon-inventory-webhook/internal/application/dto"
	"github.com/equimagotouroku/salon-inventory-webhook/internal/application/order"
	"github.com/equimagotouroku/salon-inventory-webhook/pkg/logger"
	"github.com/equimagotouroku/salon-inventory-webhook/pkg/metrics"
)

// WebhookHandler は LINE プラットフォームからの Webhook を受ける。
type WebhookHandler struct {
	uc  *order.UseCase
	log *logger.Logger
	met *metrics.WebhookMetrics
}

// NewWebhookHandler はハンドラを構築します。
func NewWebhookHandler(uc *order.UseCase, log *logger.Logger, met *metrics.WebhookMetrics) *WebhookHandler {
	return &WebhookHandler{uc: uc, log: log, met: met}
}

// Receive godoc
// @Summary      LINE Webhook の受け口
// @Description  events 内のテキストメッセージから発注依頼を抽出して返信する。
// @Description  LINE側の再送ループを避けるため、本文が読めなくても常に200を返す。
// @Tags         webhook
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WebhookPayload  true  "LINE Webhook イベント"
// @Success      200  {object}  dto.WebhookAck
// @Router       /webhook [post]
func (h *WebhookHandler) Receive(c *fiber.Ctx) error {
	var payload dto.WebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		// 壊れたボディはイベント0件として握りつぶす
		h.log.Warn().Err(err).Msg("Webhookボディを解釈できない")
		return c.JSON(dto.WebhookAck{Processed: 0})
	}

	processed := 0
	for _, ev := range payload.Events {
		h.met.EventsTotal.WithLabelValues(eventTypeLabel(ev.Type)).Inc()
		if h.uc.HandleEvent(c.Context(), ev) != order.OutcomeSkipped {
			processed++
		}
	}
	return c.JSON(dto.WebhookAck{Processed: processed})
}

// eventTypeLabel は未知のイベントタイプを other に丸めてラベルの膨張を防ぐ。
func eventTypeLabel(t string) string {
	switch t {
	case "message", "follow", "unfollow", "join", "leave", "postback":
		return t
	default:
		return "other"
	}
}
