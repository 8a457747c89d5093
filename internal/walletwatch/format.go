package walletwatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a raw amount is not a non-negative integer.
var ErrInvalidAmount = errors.New("invalid amount")

const transferMessageFormat = "Transfer %s %s, From %s To %s.\nLink: %s/tx/%s"

// ParseAmount parses a raw on-chain amount.
func ParseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errors.Join(ErrInvalidAmount, err)
	}

	if d.IsNegative() || !d.IsInteger() {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	return d, nil
}

// FormatAmount renders raw / 10^decimals without losing precision.
// Unparseable amounts are returned unchanged.
func FormatAmount(raw string, decimals int) string {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return raw
	}

	return d.Shift(int32(-decimals)).String()
}

// EffectiveDecimals returns the scale used to render tx. A stored scale of 0
// falls back to DefaultDecimals.
func EffectiveDecimals(tx Transaction) int {
	if tx.Decimals == 0 {
		return DefaultDecimals(tx.Token)
	}
	return tx.Decimals
}

// FormatTransfer builds the chat message announcing tx.
func FormatTransfer(tx Transaction, explorerURL string) string {
	return fmt.Sprintf(transferMessageFormat,
		FormatAmount(tx.Amount, EffectiveDecimals(tx)),
		tx.Token,
		tx.From,
		tx.To,
		strings.TrimRight(explorerURL, "/"),
		tx.TxHash,
	)
}
