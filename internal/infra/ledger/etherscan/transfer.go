package etherscan

import (
	"context"

	"github.com/gabapcia/ethtracker/internal/walletwatch"
)

type nativeTransfer struct {
	Hash    string `json:"hash"`
	From    string `json:"from"`
	To      string `json:"to"`
	Value   string `json:"value"`
	IsError string `json:"isError"`
}

func (t nativeTransfer) toDomain() *walletwatch.NativeTransfer {
	return &walletwatch.NativeTransfer{
		Hash:   t.Hash,
		From:   t.From,
		To:     t.To,
		Value:  t.Value,
		Failed: t.IsError != "0",
	}
}

type tokenTransfer struct {
	Hash            string `json:"hash"`
	From            string `json:"from"`
	To              string `json:"to"`
	Value           string `json:"value"`
	TokenName       string `json:"tokenName"`
	TokenSymbol     string `json:"tokenSymbol"`
	TokenDecimal    string `json:"tokenDecimal"`
	ContractAddress string `json:"contractAddress"`
}

func (t tokenTransfer) toDomain() *walletwatch.TokenTransfer {
	return &walletwatch.TokenTransfer{
		Hash:            t.Hash,
		From:            t.From,
		To:              t.To,
		Value:           t.Value,
		TokenName:       t.TokenName,
		TokenSymbol:     t.TokenSymbol,
		TokenDecimal:    t.TokenDecimal,
		ContractAddress: t.ContractAddress,
	}
}

// LatestNativeTransfer returns the most recent ether transfer touching address.
func (c *client) LatestNativeTransfer(ctx context.Context, address string) (*walletwatch.NativeTransfer, error) {
	var transfers []nativeTransfer
	found, err := c.fetch(ctx, actionNativeTransfers, address, &transfers)
	if err != nil || !found || len(transfers) == 0 {
		return nil, err
	}

	return transfers[0].toDomain(), nil
}

// LatestTokenTransfer returns the most recent ERC-20 transfer touching address.
func (c *client) LatestTokenTransfer(ctx context.Context, address string) (*walletwatch.TokenTransfer, error) {
	var transfers []tokenTransfer
	found, err := c.fetch(ctx, actionTokenTransfers, address, &transfers)
	if err != nil || !found || len(transfers) == 0 {
		return nil, err
	}

	return transfers[0].toDomain(), nil
}
