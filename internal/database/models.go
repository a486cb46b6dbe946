package database

import "time"

// Feedback represents a user feedback report submitted via the /feedback
// command. Reports are persisted before being forwarded to the admin chat so
// they survive an unreachable admin.
type Feedback struct {
	ID        uint      `db:"id"`
	CreatedAt time.Time `db:"created_at"`

	ChatID   int64  `db:"chat_id"`
	UserID   int64  `db:"user_id"`
	Username string `db:"username"`
	Content  string `db:"content"`
}
