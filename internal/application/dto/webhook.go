package dto

// LINE Messaging API の Webhook ボディ。フィールド名はプラットフォーム仕様の
// camelCase に合わせる。未知のフィールドは無視してよい。

// WebhookPayload POST /webhook のリクエストボディ。
type WebhookPayload struct {
	Destination string         `json:"destination"`
	Events      []WebhookEvent `json:"events"`
}

// WebhookEvent 1件の受信イベント。テキストメッセージ以外（スタンプ・画像・
// follow/unfollow 等）も届くため、Type と Message.Type の両方で絞り込む。
type WebhookEvent struct {
	Type       string       `json:"type"`
	ReplyToken string       `json:"replyToken"`
	Timestamp  int64        `json:"timestamp"` // エポックミリ秒
	Source     EventSource  `json:"source"`
	Message    EventMessage `json:"message"`
}

// EventSource 送信元。グループ・トークルーム・1対1のどれか。
type EventSource struct {
	Type    string `json:"type"`
	UserID  string `json:"userId"`
	GroupID string `json:"groupId"`
	RoomID  string `json:"roomId"`
}

// ChatID は許可リスト照合に使う会話の識別子を返します。
// グループ > トークルーム > ユーザー の優先順で、設定されている最初のIDを採用します。
func (s EventSource) ChatID() string {
	if s.GroupID != "" {
		return s.GroupID
	}
	if s.RoomID != "" {
		return s.RoomID
	}
	return s.UserID
}

// EventMessage メッセージ本体。Text はテキストメッセージのときだけ入る。
type EventMessage struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
}
