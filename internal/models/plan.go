package models

import "time"

// Plan type identifiers for service packages.
const (
	// PlanTypeInternet marks a broadband internet package.
	PlanTypeInternet = "internet"
	// PlanTypeSmartTV marks a Smart TV package.
	PlanTypeSmartTV = "smart_tv"
)

// Plan represents a purchasable service package.
type Plan struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"` // Primary key.

	Name         string  `gorm:"type:text;not null"`           // Package display name.
	Price        float64 `gorm:"type:decimal(20,10);not null"` // List price.
	SpeedMbps    int     `gorm:"not null;default:0"`           // Advertised speed in Mbps.
	DurationDays int     `gorm:"not null;default:0"`           // Validity window in days.
	Type         string  `gorm:"type:text;not null"`           // Package type, internet or smart_tv.

	CreatedAt time.Time `gorm:"not null;autoCreateTime"` // Creation timestamp.
}
