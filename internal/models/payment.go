package models

import (
	"time"

	"gorm.io/datatypes"
)

// Payment records a customer payment as submitted.
//
// Amount is stored raw: the recording flow does not validate payloads, so
// the value may be absent or non-numeric. Reporting owns tolerant parsing.
type Payment struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"` // Primary key.

	Reference string `gorm:"type:text;not null;uniqueIndex"` // Generated payment reference.
	UserEmail string `gorm:"type:text;index"`                // Paying customer email, if supplied.

	Amount datatypes.JSON `gorm:"type:jsonb"` // Raw amount value as recorded.
	Note   string         `gorm:"type:text"`  // Free-form note.

	CreatedAt time.Time `gorm:"not null;autoCreateTime"` // Creation timestamp.
}
