package voucher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbpkg "github.com/drs-net/billing-backend/internal/db"
	"github.com/drs-net/billing-backend/internal/models"
)

// Ledger enforces the single-use invariant on vouchers.
//
// All cross-request mutual exclusion is delegated to the database: redemption
// runs as one transaction whose conditional write can only flip the used flag
// once, so of N racing attempts on a code exactly one succeeds. The ledger
// never retries internally.
type Ledger struct {
	db *gorm.DB
}

// NewLedger constructs a Ledger on the given database handle.
func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// Issue persists a new unused voucher under a caller-chosen code.
// An existing code fails with ErrAlreadyExists and is never overwritten.
func (l *Ledger) Issue(ctx context.Context, code, planID string) (*models.Voucher, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyCode
	}

	created := models.Voucher{
		Code:   code,
		PlanID: strings.TrimSpace(planID),
	}
	errTx := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Voucher
		errFind := tx.Where("code = ?", code).First(&existing).Error
		if errFind == nil {
			return ErrAlreadyExists
		}
		if !errors.Is(errFind, gorm.ErrRecordNotFound) {
			return fmt.Errorf("voucher: query code: %w", errFind)
		}
		if errCreate := tx.Create(&created).Error; errCreate != nil {
			// The unique index backstops a lost race on the existence check.
			if errors.Is(errCreate, gorm.ErrDuplicatedKey) {
				return ErrAlreadyExists
			}
			return fmt.Errorf("voucher: create: %w", errCreate)
		}
		return nil
	})
	if errTx != nil {
		return nil, errTx
	}
	return &created, nil
}

// Redeem marks the voucher used by the given user, exactly once.
//
// The read, the used check, and the write execute in a single transaction;
// the update is additionally guarded on used = false so the state transition
// stays atomic even where row locking is a no-op. Failure paths perform zero
// mutations.
func (l *Ledger) Redeem(ctx context.Context, code, user string) (*models.Voucher, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyCode
	}
	user = strings.TrimSpace(user)

	var redeemed models.Voucher
	errTx := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Where("code = ?", code)
		if !dbpkg.IsSQLite(tx) {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var current models.Voucher
		if errFind := query.First(&current).Error; errFind != nil {
			if errors.Is(errFind, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("voucher: query code: %w", errFind)
		}
		if current.Used {
			return ErrAlreadyRedeemed
		}

		now := time.Now().UTC()
		result := tx.Model(&models.Voucher{}).
			Where("code = ? AND used = ?", code, false).
			Updates(map[string]any{
				"used":    true,
				"used_by": user,
				"used_at": now,
			})
		if result.Error != nil {
			return fmt.Errorf("voucher: redeem: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrAlreadyRedeemed
		}

		current.Used = true
		current.UsedBy = &user
		current.UsedAt = &now
		redeemed = current
		return nil
	})
	if errTx != nil {
		return nil, errTx
	}
	return &redeemed, nil
}

// Get returns the voucher stored under code, or ErrNotFound.
func (l *Ledger) Get(ctx context.Context, code string) (*models.Voucher, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyCode
	}
	var found models.Voucher
	if errFind := l.db.WithContext(ctx).Where("code = ?", code).First(&found).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("voucher: query code: %w", errFind)
	}
	return &found, nil
}
