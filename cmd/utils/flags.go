package utils

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/anyswap/ripple-ledger-core/log"
	"github.com/anyswap/ripple-ledger-core/params"
)

var (
	// ConfigFileFlag --config
	ConfigFileFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Specify config file",
	}
	// VerbosityFlag --verbosity
	VerbosityFlag = &cli.Uint64Flag{
		Name:    "verbosity",
		Aliases: []string{"v"},
		Usage:   "log verbosity (0:panic, 1:fatal, 2:error, 3:warn, 4:info, 5:debug, 6:trace)",
		Value:   4,
	}
	// JSONFormatFlag --json
	JSONFormatFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "output log in json format",
	}
	// ColorFormatFlag --color
	ColorFormatFlag = &cli.BoolFlag{
		Name:  "color",
		Usage: "output log in color text format",
	}

	// CommonLogFlags are the log and config flags shared by every command.
	CommonLogFlags = []cli.Flag{
		ConfigFileFlag,
		VerbosityFlag,
		JSONFormatFlag,
		ColorFormatFlag,
	}
)

// SetLogger sets up logging from the command line. Logs go to stderr so
// that command results on stdout stay machine readable.
func SetLogger(ctx *cli.Context) {
	logLevel := ctx.Uint64(VerbosityFlag.Name)
	jsonFormat := ctx.Bool(JSONFormatFlag.Name)
	colorFormat := ctx.Bool(ColorFormatFlag.Name)
	log.SetLogger(uint32(logLevel), jsonFormat, colorFormat)
	log.SetOutput(os.Stderr)
}

// GetConfigFilePath returns the --config value.
func GetConfigFilePath(ctx *cli.Context) string {
	return ctx.String(ConfigFileFlag.Name)
}

// LoadConfig loads the config file named by --config, or the defaults, and
// sets up logging. Log flags given on the command line win over the file.
func LoadConfig(ctx *cli.Context) (*params.Config, error) {
	SetLogger(ctx)
	config, err := params.LoadConfig(GetConfigFilePath(ctx))
	if err != nil {
		return nil, err
	}
	logConfig := *config.Log
	if ctx.IsSet(VerbosityFlag.Name) {
		logConfig.Verbosity = uint32(ctx.Uint64(VerbosityFlag.Name))
	}
	if ctx.IsSet(JSONFormatFlag.Name) {
		logConfig.JSONFormat = ctx.Bool(JSONFormatFlag.Name)
	}
	if ctx.IsSet(ColorFormatFlag.Name) {
		logConfig.ColorFormat = ctx.Bool(ColorFormatFlag.Name)
	}
	log.SetLogger(logConfig.Verbosity, logConfig.JSONFormat, logConfig.ColorFormat)
	log.SetOutput(os.Stderr)
	return config, nil
}
