package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/equimagotouroku/salon-inventory-webhook/internal/application/dto"
)

// HealthHandler は疎通確認に応答する。LINEコンソールの接続確認はGETで来るため、
// /webhook のGETにもこのハンドラを載せる。
type HealthHandler struct {
	service string
}

// NewHealthHandler はハンドラを構築します。
func NewHealthHandler(service string) *HealthHandler {
	return &HealthHandler{service: service}
}

// Check godoc
// @Summary      ヘルスチェック
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "ok", Service: h.service})
}
