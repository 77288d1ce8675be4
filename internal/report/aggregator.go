package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/drs-net/billing-backend/internal/models"
)

// Summary is a point-in-time aggregate over users, vouchers, and payments.
type Summary struct {
	UserCount     int64   `json:"users"`         // Registered user count.
	VoucherCount  int64   `json:"vouchers"`      // Issued voucher count.
	TotalEarnings float64 `json:"totalEarnings"` // Sum of parseable payment amounts.
}

// Summarizer produces summary snapshots.
type Summarizer interface {
	Summarize(ctx context.Context) (Summary, error)
}

// Aggregator computes summaries by scanning collections owned by other
// writers.
type Aggregator struct {
	db *gorm.DB
}

// NewAggregator constructs an Aggregator on the given database handle.
func NewAggregator(db *gorm.DB) *Aggregator {
	return &Aggregator{db: db}
}

// Summarize scans users, vouchers, and payments and returns their aggregate.
//
// The three scans are independent and unsynchronized, so the result is a
// best-effort snapshot: a payment written mid-scan may or may not be counted.
// Amounts that are missing or non-numeric contribute 0. Summation uses
// float64; callers needing exact money should record integer minor units.
// The first scan failure aborts the whole operation, no partial summary is
// returned.
func (a *Aggregator) Summarize(ctx context.Context) (Summary, error) {
	var out Summary

	if errCount := a.db.WithContext(ctx).Model(&models.User{}).
		Count(&out.UserCount).Error; errCount != nil {
		return Summary{}, fmt.Errorf("report: count users: %w", errCount)
	}

	if errCount := a.db.WithContext(ctx).Model(&models.Voucher{}).
		Count(&out.VoucherCount).Error; errCount != nil {
		return Summary{}, fmt.Errorf("report: count vouchers: %w", errCount)
	}

	var payments []models.Payment
	if errFind := a.db.WithContext(ctx).
		Select("amount").
		Find(&payments).Error; errFind != nil {
		return Summary{}, fmt.Errorf("report: scan payments: %w", errFind)
	}
	for _, payment := range payments {
		out.TotalEarnings += amountValue(payment.Amount)
	}

	return out, nil
}

// amountValue parses a raw recorded amount. Missing, malformed, and
// non-numeric values all contribute 0.
func amountValue(raw datatypes.JSON) float64 {
	if len(raw) == 0 {
		return 0
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var value any
	if errDecode := decoder.Decode(&value); errDecode != nil {
		return 0
	}
	number, ok := value.(json.Number)
	if !ok {
		return 0
	}
	amount, errParse := number.Float64()
	if errParse != nil {
		return 0
	}
	return amount
}
