package model

import "time"

type Message struct {
	ID         int       `db:"id" json:"id"`
	SenderID   int       `db:"sender_id" json:"senderId"`
	ReceiverID int       `db:"receiver_id" json:"receiverId"`
	Content    string    `db:"content" json:"content"`
	IsRead     bool      `db:"is_read" json:"isRead"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

type CreateMessageRequest struct {
	SenderID   int    `json:"senderId" binding:"required"`
	ReceiverID int    `json:"receiverId" binding:"required"`
	Content    string `json:"content" binding:"required"`
	IsRead     *bool  `json:"isRead"`
}
