package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/anyswap/ripple-ledger-core/cmd/utils"
	"github.com/anyswap/ripple-ledger-core/ripple/ledger"
)

var (
	ledgerStyle   = color.New(color.FgWhite, color.Underline)
	verifiedStyle = color.New(color.FgGreen)
	mismatchStyle = color.New(color.FgRed, color.Bold)
	sanityStyle   = color.New(color.FgYellow)
)

// reportVerify writes a one line verdict to stderr. Colors follow --color.
func reportVerify(ctx *cli.Context, sequence uint32, err error) {
	color.NoColor = !ctx.Bool(utils.ColorFormatFlag.Name)
	ledgerStyle.Fprintf(os.Stderr, "ledger %d", sequence)
	fmt.Fprint(os.Stderr, " ")

	var mismatch *ledger.HashMismatchError
	switch {
	case err == nil:
		verifiedStyle.Fprintln(os.Stderr, "verified")
	case errors.As(err, &mismatch):
		mismatchStyle.Fprintf(os.Stderr, "%s mismatch\n", mismatch.Field)
	case errors.Is(err, ledger.ErrSanityCheck):
		sanityStyle.Fprintln(os.Stderr, "failed sanity check")
	default:
		mismatchStyle.Fprintln(os.Stderr, "failed")
	}
}
