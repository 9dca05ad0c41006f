package nuls

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedInput reports a read past the end of the buffer.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrMalformedLength reports an invalid varint or a field whose declared length is inconsistent.
	ErrMalformedLength = errors.New("malformed length")
	// ErrUnsupportedTransactionType reports a type tag outside the known set.
	ErrUnsupportedTransactionType = errors.New("unsupported transaction type")
)

// DecodeError carries the buffer offset at which decoding failed.
type DecodeError struct {
	Offset int
	Reason error
	Field  string
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decode at offset %d: %v", e.Offset, e.Reason)
	}
	return fmt.Sprintf("decode %s at offset %d: %v", e.Field, e.Offset, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Reason
}

func decodeErr(offset int, field string, reason error) error {
	return &DecodeError{Offset: offset, Field: field, Reason: reason}
}

// withField names the field of a primitive failure without losing its offset.
func withField(err error, field string) error {
	var de *DecodeError
	if errors.As(err, &de) && de.Field == "" {
		return &DecodeError{Offset: de.Offset, Field: field, Reason: de.Reason}
	}
	return err
}
