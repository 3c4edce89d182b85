package model

import (
	"time"

	"github.com/google/uuid"
)

type Subscriber struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Subscriber) TableName() string {
	return "subscribers"
}
