package utils

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/anyswap/ripple-ledger-core/params"
)

var (
	clientIdentifier string
	gitCommit        string
	gitDate          string
)

// NewApp creates an app with sane defaults.
func NewApp(identifier, gitcommit, gitdate, usage string) *cli.App {
	clientIdentifier = identifier
	gitCommit = gitcommit
	gitDate = gitdate
	app := cli.NewApp()
	app.Name = filepath.Base(os.Args[0])
	app.Version = params.VersionWithCommit(gitCommit, gitDate)
	app.Usage = usage
	app.HideVersion = true // we have a command to print the version
	return app
}
