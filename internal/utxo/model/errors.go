package model

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateTransaction reports an insert of a hash that is already persisted.
	ErrDuplicateTransaction = errors.New("duplicate transaction")
	// ErrBulkUpdatePartialFailure reports spend updates that were not applied.
	ErrBulkUpdatePartialFailure = errors.New("bulk update partial failure")
)

// BulkUpdateError carries the updates that must be retried.
type BulkUpdateError struct {
	Failed []SpendUpdate
	Total  int
	Err    error
}

func (e *BulkUpdateError) Error() string {
	return fmt.Sprintf("bulk update: %d of %d updates failed: %v", len(e.Failed), e.Total, e.Err)
}

func (e *BulkUpdateError) Unwrap() []error {
	return []error{ErrBulkUpdatePartialFailure, e.Err}
}
