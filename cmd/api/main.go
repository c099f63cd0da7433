package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/equimagotouroku/salon-inventory-webhook/internal/application/order"
	"github.com/equimagotouroku/salon-inventory-webhook/internal/infrastructure/catalog"
	infraline "github.com/equimagotouroku/salon-inventory-webhook/internal/infrastructure/line"
	httpRouter "github.com/equimagotouroku/salon-inventory-webhook/internal/interfaces/http"
	"github.com/equimagotouroku/salon-inventory-webhook/pkg/config"
	"github.com/equimagotouroku/salon-inventory-webhook/pkg/logger"
	"github.com/equimagotouroku/salon-inventory-webhook/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("設定の読み込み: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("アプリケーションを起動")

	// トークン無しでも起動は許す（開発時はヘルスチェックだけ動けばよい）
	if cfg.Line.ChannelAccessToken == "" {
		log.Warn().Msg("LINE_CHANNEL_ACCESS_TOKEN が未設定。返信はすべて失敗する")
	}

	met := metrics.New(nil)

	replyClient := infraline.NewReplyClient(infraline.Config{
		Endpoint:          cfg.Line.ReplyEndpoint,
		ChannelToken:      cfg.Line.ChannelAccessToken,
		RequestsPerSecond: cfg.Line.ReplyRatePerSecond,
		Burst:             cfg.Line.ReplyBurst,
	})
	store := catalog.NewFileStore(cfg.Data.ProductsPath, cfg.Data.StockPath)

	orderUC := order.NewUseCase(replyClient, store, log, met, order.GateConfig{
		AllowedSourceIDs: cfg.Line.AllowedSourceIDList(),
		CommandPrefix:    cfg.Line.CommandPrefix,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.AppErrorHandler,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Salon Inventory Webhook API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Webhook: httpRouter.NewWebhookHandler(orderUC, log, met),
		Health:  httpRouter.NewHealthHandler(cfg.App.Name),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTPサーバーが停止")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("終了シグナルを受信。サーバーを閉じる...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("サーバーの終了処理")
	}

	log.Info().Msg("アプリケーションを停止")
}
