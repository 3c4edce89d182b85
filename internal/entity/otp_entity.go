// FILE: internal/entity/otp_entity.go
package entity

import "time"

// OtpEntry is the live one-time code for one admin email. At most one
// entry exists per email; a new login overwrites the previous one.
type OtpEntry struct {
	Code      string
	ExpiresAt time.Time
}
