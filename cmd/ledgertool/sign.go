package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/anyswap/ripple-ledger-core/cmd/utils"
	"github.com/anyswap/ripple-ledger-core/ripple/signer"
)

var (
	signCommand = &cli.Command{
		Action:    sign,
		Name:      "sign",
		Usage:     "sign a transaction json offline",
		ArgsUsage: " ",
		Description: `
sign prints the signed blob and the transaction id. SigningPubKey is
filled in from the secret unless the transaction already carries one.

Example:

./ledgertool sign --tx '{"TransactionType":"Payment","Account":"r...","Destination":"r...","Amount":"1000000","Fee":"12","Sequence":1}' --secret s...
`,
		Flags: []cli.Flag{
			txFlag,
			txFileFlag,
			secretFlag,
		},
	}

	verifyCommand = &cli.Command{
		Action:    verify,
		Name:      "verify",
		Usage:     "check the signature of a signed transaction blob",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			blobFlag,
		},
	}

	walletCommand = &cli.Command{
		Action:    wallet,
		Name:      "wallet",
		Usage:     "print the address and public key of a secret",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			secretFlag,
		},
	}

	txFlag = &cli.StringFlag{
		Name:  "tx",
		Usage: "transaction json",
	}
	txFileFlag = &cli.StringFlag{
		Name:  "txfile",
		Usage: "transaction json file",
	}
	secretFlag = &cli.StringFlag{
		Name:     "secret",
		Usage:    "family seed (s...) or ed25519 seed (sEd...)",
		Required: true,
	}
	blobFlag = &cli.StringFlag{
		Name:     "blob",
		Usage:    "signed transaction hex",
		Required: true,
	}
)

func sign(ctx *cli.Context) error {
	if _, err := utils.LoadConfig(ctx); err != nil {
		return err
	}
	txJSON := ctx.String(txFlag.Name)
	if file := ctx.String(txFileFlag.Name); file != "" {
		if txJSON != "" {
			return fmt.Errorf("--%v and --%v are exclusive", txFlag.Name, txFileFlag.Name)
		}
		bs, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		txJSON = string(bs)
	}
	if txJSON == "" {
		return fmt.Errorf("one of --%v and --%v is required", txFlag.Name, txFileFlag.Name)
	}
	signed, err := signer.Sign(txJSON, ctx.String(secretFlag.Name))
	if err != nil {
		return err
	}
	return printJSON(ctx, signed)
}

func verify(ctx *cli.Context) error {
	if _, err := utils.LoadConfig(ctx); err != nil {
		return err
	}
	tx, err := signer.Verify(ctx.String(blobFlag.Name))
	if err != nil {
		return err
	}
	return printJSON(ctx, tx)
}

func wallet(ctx *cli.Context) error {
	if _, err := utils.LoadConfig(ctx); err != nil {
		return err
	}
	w, err := signer.DeriveWallet(ctx.String(secretFlag.Name))
	if err != nil {
		return err
	}
	return printJSON(ctx, w)
}
