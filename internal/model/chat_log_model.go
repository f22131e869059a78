package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatLog is the per-message usage record written by the event consumer.
type ChatLog struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CallerId      string    `gorm:"type:varchar(100);not null;index"`
	Category      string    `gorm:"type:varchar(30);not null;index"`
	Message       string    `gorm:"type:text"`
	ResponseChars int       `gorm:"default:0"`
	DurationMs    int64     `gorm:"default:0"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (ChatLog) TableName() string {
	return "chat_logs"
}
