package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/equimagotouroku/salon-inventory-webhook/pkg/metrics"
)

// RouterDeps ルーターへ渡す依存一式。
type RouterDeps struct {
	Webhook *WebhookHandler
	Health  *HealthHandler
}

// Router はルートを登録します。
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/", deps.Health.Check)
	app.Get("/health", deps.Health.Check)

	// LINE Developers コンソールの「検証」はGETで叩いてくる
	app.Get("/webhook", deps.Health.Check)
	app.Post("/webhook", deps.Webhook.Receive)

	// Prometheus のエクスポジション
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
}
