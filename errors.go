package slip39

import (
	"fmt"

	slip39errors "github.com/mrz1836/slip39/pkg/errors"
)

func invalidInput(msg string) error {
	return slip39errors.New(slip39errors.InvalidInput, msg)
}

func invalidInputf(format string, args ...any) error {
	return invalidInput(fmt.Sprintf(format, args...))
}

func inconsistentShares(msg string) error {
	return slip39errors.New(slip39errors.InconsistentShares, msg)
}

func insufficientShares(msg string) error {
	return slip39errors.New(slip39errors.InsufficientShares, msg)
}
