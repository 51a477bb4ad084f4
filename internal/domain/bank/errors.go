package bank

import "errors"

var (
	ErrEntryNotFound       = errors.New("bank entry not found")
	ErrEntryAnnulled       = errors.New("bank entry is annulled")
	ErrInsufficientPending = errors.New("insufficient pending hours")
)
