package domain

import "errors"

// ドメイン共通のセンチネルエラー（外部依存なし）。
// 呼び出し側は errors.Is で種別を判定する。
var (
	ErrInvalidInput  = errors.New("入力が不正です")
	ErrNotConfigured = errors.New("必要な設定がありません")
)
