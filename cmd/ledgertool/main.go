package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/anyswap/ripple-ledger-core/cmd/utils"
)

var (
	clientIdentifier = "ledgertool"
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""
	// The app that holds all commands and flags.
	app = utils.NewApp(clientIdentifier, gitCommit, gitDate, "hash, verify and sign ripple ledger data offline")
)

func initApp() {
	app.Commands = []*cli.Command{
		hashLedgerCommand,
		signCommand,
		verifyCommand,
		walletCommand,
		accountRootCommand,
		offerCommand,
		trustLineCommand,
		utils.VersionCommand,
	}
	app.Flags = utils.CommonLogFlags
	sort.Sort(cli.CommandsByName(app.Commands))
}

func main() {
	initApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printJSON(ctx *cli.Context, v interface{}) error {
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, string(bs))
	return err
}
