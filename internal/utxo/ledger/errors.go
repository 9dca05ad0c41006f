package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/nuls"
)

// ErrUnresolvedOrigin reports an input whose origin transaction or output is not known.
var ErrUnresolvedOrigin = errors.New("unresolved origin transaction")

// UnresolvedOrigin identifies an input that could not be annotated with its origin address.
type UnresolvedOrigin struct {
	InputIndex int
	FromHash   string
	FromIndex  uint8
}

func (u UnresolvedOrigin) Error() string {
	return fmt.Sprintf("input %d: %s:%d: %v", u.InputIndex, u.FromHash, u.FromIndex, ErrUnresolvedOrigin)
}

func (u UnresolvedOrigin) Unwrap() error {
	return ErrUnresolvedOrigin
}

// Retryable reports whether err is worth retrying with the same input: storage and transport failures are,
// decode failures and informational outcomes are not.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	var decodeErr *nuls.DecodeError
	switch {
	case errors.As(err, &decodeErr):
		return false
	case errors.Is(err, ErrUnresolvedOrigin), errors.Is(err, model.ErrDuplicateTransaction):
		return false
	case errors.Is(err, context.Canceled):
		return false
	}
	return true
}
