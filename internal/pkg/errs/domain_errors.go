package errs

import "errors"

// Ordering core sentinel errors shared by domain, usecase and handler layers
var (
	// Catalog / parser errors, recovered by the session as re-prompts
	ErrUnknownItem    = errors.New("unknown item")
	ErrParseAmbiguous = errors.New("ambiguous utterance")

	// Order errors
	ErrIncompleteOrder      = errors.New("incomplete order")
	ErrInvalidSize          = errors.New("invalid size")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// Ledger errors
	ErrOrderNotFound = errors.New("order not found")
	ErrAlreadyPaid   = errors.New("order already paid")

	// Operation errors
	ErrPersistenceFailure = errors.New("persistence failure")
)
