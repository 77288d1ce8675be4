package models

import "time"

// User represents a registered customer account.
type User struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"` // Primary key.

	Name  string `gorm:"type:text"`                      // Customer display name.
	Email string `gorm:"type:text;not null;uniqueIndex"` // Unique contact email, the external record key.
	Phone string `gorm:"type:text"`                      // Contact phone number.

	CreatedAt time.Time `gorm:"not null;autoCreateTime"` // Creation timestamp.
}
