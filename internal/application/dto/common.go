package dto

// ErrorResponse HTTPエラーの応答ボディ。
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse ヘルスチェックの応答ボディ。LINEの疎通確認(GET)にも使う。
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// WebhookAck Webhook受信の応答ボディ。Processed は返信まで行ったイベント数。
type WebhookAck struct {
	Processed int `json:"processed"`
}
