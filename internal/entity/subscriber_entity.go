// FILE: internal/entity/subscriber_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type Subscriber struct {
	Id        uuid.UUID
	Email     string
	CreatedAt time.Time
}
