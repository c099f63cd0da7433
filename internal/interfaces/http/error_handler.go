package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/equimagotouroku/salon-inventory-webhook/internal/application/dto"
)

// AppErrorHandler は fiber の全ルート共通のエラーハンドラ。
// recover ミドルウェアが拾った panic もここへ来て、メッセージ付きの500になる。
// ルーターが生成する 404 / 405 も同じ形のJSONで返す。
func AppErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}

	code := "INTERNAL"
	switch status {
	case fiber.StatusNotFound:
		code = "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		code = "METHOD_NOT_ALLOWED"
	}

	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
