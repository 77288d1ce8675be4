package voucher

import "errors"

// Ledger error taxonomy. Callers branch on these with errors.Is; anything
// else is a store fault and should be treated as transient.
var (
	// ErrEmptyCode rejects blank voucher codes before touching the store.
	ErrEmptyCode = errors.New("voucher: empty code")
	// ErrNotFound reports that no voucher exists under the given code.
	ErrNotFound = errors.New("voucher: not found")
	// ErrAlreadyRedeemed reports an invariant-preserving rejection, not a
	// system fault. A caller retrying after a timeout must treat this as a
	// benign outcome, since its own first attempt may have committed.
	ErrAlreadyRedeemed = errors.New("voucher: already redeemed")
	// ErrAlreadyExists reports an issue attempt with a code already in use.
	ErrAlreadyExists = errors.New("voucher: code already exists")
)
