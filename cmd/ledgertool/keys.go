package main

import (
	"fmt"
	"math"

	"github.com/urfave/cli/v2"

	"github.com/anyswap/ripple-ledger-core/cmd/utils"
	"github.com/anyswap/ripple-ledger-core/ripple/data"
)

var (
	accountRootCommand = &cli.Command{
		Action:    accountRoot,
		Name:      "accountroot",
		Usage:     "print the ledger key of an account root",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			accountFlag,
		},
	}

	offerCommand = &cli.Command{
		Action:    offer,
		Name:      "offer",
		Usage:     "print the ledger key of an offer",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			accountFlag,
			sequenceFlag,
		},
	}

	trustLineCommand = &cli.Command{
		Action:    trustLine,
		Name:      "trustline",
		Usage:     "print the ledger key of the trust line between two accounts",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			accountFlag,
			peerFlag,
			currencyFlag,
		},
	}

	accountFlag = &cli.StringFlag{
		Name:     "account",
		Usage:    "account address",
		Required: true,
	}
	peerFlag = &cli.StringFlag{
		Name:     "peer",
		Usage:    "address of the other side of the trust line",
		Required: true,
	}
	currencyFlag = &cli.StringFlag{
		Name:     "currency",
		Usage:    "three letter code or 40 hex characters",
		Required: true,
	}
	sequenceFlag = &cli.UintFlag{
		Name:     "sequence",
		Usage:    "sequence of the transaction that created the offer",
		Required: true,
	}
)

type keyResult struct {
	Index string `json:"index"`
}

func printKey(ctx *cli.Context, key data.Hash256, err error) error {
	if err != nil {
		return err
	}
	return printJSON(ctx, &keyResult{Index: key.String()})
}

func accountRoot(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	key, err := data.DefaultIndexer.AccountRootKeyFromAddress(ctx.String(accountFlag.Name))
	return printKey(ctx, key, err)
}

func offer(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	sequence := ctx.Uint(sequenceFlag.Name)
	if uint64(sequence) > math.MaxUint32 {
		return fmt.Errorf("sequence %v overflows 32 bits", sequence)
	}
	key, err := data.DefaultIndexer.OfferKeyFromAddress(ctx.String(accountFlag.Name), uint32(sequence))
	return printKey(ctx, key, err)
}

func trustLine(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	key, err := data.DefaultIndexer.TrustLineKeyFromAddresses(
		ctx.String(accountFlag.Name), ctx.String(peerFlag.Name), ctx.String(currencyFlag.Name))
	return printKey(ctx, key, err)
}
