package usecase

import (
	"errors"
	"strings"

	"caja-api/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// decimalFromInput parses a client-supplied money string. Amounts travel as
// strings end to end so nothing is ever rounded through a float64.
func decimalFromInput(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errs.Mark(err, ErrInvalidAmount)
	}
	return d, nil
}
