package models

import "time"

// Voucher represents a single-use prepaid credential tied to a plan.
//
// Code is the sole identity. Used transitions at most once, from false to
// true; a redeemed voucher is never deleted or reissued under the same code.
type Voucher struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"` // Primary key.

	Code   string `gorm:"type:text;not null;uniqueIndex"` // Unique caller-supplied voucher code.
	PlanID string `gorm:"type:text;not null"`             // Opaque plan reference, not validated here.

	Used   bool       `gorm:"not null;default:false"` // Redemption flag, monotonic.
	UsedBy *string    `gorm:"type:text"`              // Redeeming user, set once on redemption.
	UsedAt *time.Time // Redemption time, if redeemed.

	CreatedAt time.Time `gorm:"not null;autoCreateTime"` // Creation timestamp.
}
