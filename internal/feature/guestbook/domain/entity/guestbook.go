// Package entity はゲストブックのメッセージとメール登録のドメインモデルを定義します。
package entity

import "time"

// Message はゲストブックに残されたメッセージです。作成後は変更されません。
type Message struct {
	ID        string
	Content   string
	Name      string
	CreatedAt time.Time
}

// Contact は更新通知用に登録されたメールアドレスです。メールアドレスごとに1件です。
type Contact struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
