package casino

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("round belongs to another user")
	ErrNotFound          = errors.New("round not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAlreadySettled    = errors.New("round already settled")
	ErrRoundNotSettled   = errors.New("round still in progress")

	// ErrNonceCollision is transient: placement retries it internally and the
	// caller never sees it on success.
	ErrNonceCollision = errors.New("nonce collision")

	// ErrVersionConflict means a concurrent writer touched the round between
	// our read and write.
	ErrVersionConflict = errors.New("round version conflict")

	ErrInternal = errors.New("internal error")
)
