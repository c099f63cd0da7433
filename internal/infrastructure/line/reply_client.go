package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/equimagotouroku/salon-inventory-webhook/internal/application/order"
	"github.com/equimagotouroku/salon-inventory-webhook/internal/domain"
)

// コンパイル時に ReplySender を実装していることを確認。
var _ order.ReplySender = (*ReplyClient)(nil)

const (
	defaultReplyEndpoint = "https://api.line.me/v2/bot/message/reply"

	// LINE Messaging API が1回の返信で受け付けるメッセージ数の上限
	maxReplyTexts = 5
)

// Config ReplyClient の設定。
type Config struct {
	Endpoint          string  // 空なら本番の返信エンドポイント
	ChannelToken      string  // チャネルアクセストークン（長期）
	RequestsPerSecond float64 // 0以下なら 10 req/s
	Burst             int     // 0以下なら 5
}

// ReplyClient は LINE Messaging API の返信エンドポイントを叩くアダプタ。
// net/http の薄い実装で、公式SDKは使わない。リトライもしない（返信トークンは
// 1回しか使えず、失敗時は呼び出し側がログに残すだけ）。
type ReplyClient struct {
	endpoint   string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewReplyClient はクライアントを構築します。
// トークンが空でも構築は成功し、送信時に設定エラーを返す。
func NewReplyClient(cfg Config) *ReplyClient {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultReplyEndpoint
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 10
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 5
	}
	return &ReplyClient{
		endpoint: endpoint,
		token:    cfg.ChannelToken,
		httpClient: &http.Client{
			// 返信トークンは短命なので長く待っても意味がない
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// ── LINE Reply API のプロトコル構造体 ─────────────────────────────────────────

type textMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type replyRequest struct {
	ReplyToken string        `json:"replyToken"`
	Messages   []textMessage `json:"messages"`
}

type replyErrorResponse struct {
	Message string `json:"message"`
	Details []struct {
		Message  string `json:"message"`
		Property string `json:"property"`
	} `json:"details"`
}

// ── ポート実装 ────────────────────────────────────────────────────────────────

// Reply は replyToken に対して texts をテキストメッセージとして返信します。
func (c *ReplyClient) Reply(ctx context.Context, replyToken string, texts []string) error {
	if c.token == "" {
		return fmt.Errorf("line: LINE_CHANNEL_ACCESS_TOKEN が未設定: %w", domain.ErrNotConfigured)
	}
	if replyToken == "" {
		return fmt.Errorf("line: replyToken が空: %w", domain.ErrInvalidInput)
	}
	if len(texts) == 0 || len(texts) > maxReplyTexts {
		return fmt.Errorf("line: メッセージは1〜%d件: %w", maxReplyTexts, domain.ErrInvalidInput)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("line: レート制限の待機中に中断: %w", err)
	}

	msgs := make([]textMessage, 0, len(texts))
	for _, t := range texts {
		msgs = append(msgs, textMessage{Type: "text", Text: t})
	}
	body, err := json.Marshal(replyRequest{ReplyToken: replyToken, Messages: msgs})
	if err != nil {
		return fmt.Errorf("line: リクエストの直列化: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("line: HTTPリクエスト作成: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("line: タイムアウトまたはキャンセル: %w", ctx.Err())
		}
		return fmt.Errorf("line: HTTP呼び出しに失敗: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return fmt.Errorf("line: 応答の読み取り: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp replyErrorResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Message != "" {
			return fmt.Errorf("line: Reply API エラー (HTTP %d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("line: Reply API HTTP %d: %s", resp.StatusCode, string(rawBody))
	}
	return nil
}
