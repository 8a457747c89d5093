package walletwatch

import "context"

// NativeTransfer is the most recent ether transfer touching an address.
type NativeTransfer struct {
	Hash   string
	From   string
	To     string
	Value  string
	Failed bool
}

// TokenTransfer is the most recent ERC-20 transfer touching an address.
// TokenDecimal is kept as reported by the ledger and may be empty.
type TokenTransfer struct {
	Hash            string
	From            string
	To              string
	Value           string
	TokenName       string
	TokenSymbol     string
	TokenDecimal    string
	ContractAddress string
}

// LedgerClient fetches account activity from a block explorer.
//
// Both methods return nil, nil when the address has no transfer of that kind.
type LedgerClient interface {
	LatestNativeTransfer(ctx context.Context, address string) (*NativeTransfer, error)
	LatestTokenTransfer(ctx context.Context, address string) (*TokenTransfer, error)
}
