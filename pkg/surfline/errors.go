package surfline

import (
	"errors"
	"fmt"
)

// ErrNoData reports a response that decoded cleanly but carried zero
// samples. This is the benign failure: the provider simply has nothing for
// the spot today. Callers skip the spot and move on.
var ErrNoData = errors.New("forecast contains no samples")

// ContractError reports a response that does not match the shape this
// package was written against: a field missing, the wrong JSON type, or a
// non-success status. Unlike ErrNoData it suggests the provider changed its
// API and should alert loudly.
type ContractError struct {
	Kind  Kind
	Field string
	Err   error
}

func (e *ContractError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s forecast: %s: %v", e.Kind, e.Field, e.Err)
	}
	return fmt.Sprintf("%s forecast: %s", e.Kind, e.Field)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// IsContractError reports whether any error in err's chain is a
// ContractError.
func IsContractError(err error) bool {
	var ce *ContractError
	return errors.As(err, &ce)
}
