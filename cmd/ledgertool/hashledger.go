package main

import (
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/anyswap/ripple-ledger-core/cmd/utils"
	"github.com/anyswap/ripple-ledger-core/leveldb"
	"github.com/anyswap/ripple-ledger-core/log"
	"github.com/anyswap/ripple-ledger-core/params"
	"github.com/anyswap/ripple-ledger-core/ripple/ledger"
)

var (
	hashLedgerCommand = &cli.Command{
		Action:    hashLedger,
		Name:      "hashledger",
		Usage:     "recompute the hashes of a ledger json file",
		ArgsUsage: " ",
		Description: `
hashledger reads the output of the ledger command with expanded
transactions and account state, and prints the transaction tree root,
the account state tree root and the ledger hash.

Example:

./ledgertool hashledger --file ledger.json --sanity --verify --nodestore ./nodes
`,
		Flags: []cli.Flag{
			ledgerFileFlag,
			sanityFlag,
			verifyFlag,
			nodeStoreFlag,
			parallelFlag,
		},
	}

	ledgerFileFlag = &cli.StringFlag{
		Name:     "file",
		Usage:    "ledger json file, - for stdin",
		Required: true,
	}
	sanityFlag = &cli.BoolFlag{
		Name:  "sanity",
		Usage: "check every account state entry survives a decode and re-encode",
	}
	verifyFlag = &cli.BoolFlag{
		Name:  "verify",
		Usage: "fail unless the computed hashes match the ledger header",
	}
	nodeStoreFlag = &cli.StringFlag{
		Name:  "nodestore",
		Usage: "export tree nodes into the leveldb node store in this directory",
	}
	parallelFlag = &cli.IntFlag{
		Name:  "parallel",
		Usage: "number of goroutines hashing subtrees",
	}
)

type hashLedgerResult struct {
	LedgerIndex     uint32 `json:"ledger_index"`
	LedgerHash      string `json:"ledger_hash"`
	TransactionHash string `json:"transaction_hash"`
	AccountHash     string `json:"account_hash"`
	Transactions    int    `json:"transactions"`
	Entries         int    `json:"account_state_entries"`
	NodesExported   int    `json:"nodes_exported,omitempty"`
	Verified        bool   `json:"verified"`
}

func readSnapshot(file string) (*ledger.Snapshot, error) {
	var r io.Reader = os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return ledger.ParseSnapshot(r)
}

func hashLedger(ctx *cli.Context) (err error) {
	config, err := utils.LoadConfig(ctx)
	if err != nil {
		return err
	}
	hasherConfig := *config.Hasher
	if ctx.IsSet(sanityFlag.Name) {
		hasherConfig.SanityCheck = ctx.Bool(sanityFlag.Name)
	}
	if ctx.IsSet(parallelFlag.Name) {
		hasherConfig.Parallelism = ctx.Int(parallelFlag.Name)
	}
	if err = hasherConfig.CheckConfig(); err != nil {
		return err
	}

	snapshot, err := readSnapshot(ctx.String(ledgerFileFlag.Name))
	if err != nil {
		return err
	}

	var opts []ledger.Option
	storeConfig := config.NodeStore
	if dir := ctx.String(nodeStoreFlag.Name); dir != "" {
		storeConfig = &params.NodeStoreConfig{DataDir: dir}
	}
	if storeConfig != nil {
		store, serr := leveldb.OpenNodeStore(storeConfig)
		if serr != nil {
			return serr
		}
		defer func() {
			if cerr := store.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		opts = append(opts, ledger.WithNodeStore(store))
	}

	hasher := ledger.NewHasher(&hasherConfig, opts...)
	verify := ctx.Bool(verifyFlag.Name)
	var result *ledger.Result
	if verify {
		result, err = hasher.Verify(snapshot)
		reportVerify(ctx, snapshot.Header.LedgerSequence, err)
	} else {
		result, err = hasher.Hash(snapshot)
	}
	if err != nil {
		log.Error("hash ledger failed", "ledger", snapshot.Header.LedgerSequence, "err", err)
		return err
	}
	return printJSON(ctx, &hashLedgerResult{
		LedgerIndex:     result.LedgerSequence,
		LedgerHash:      result.LedgerHash.String(),
		TransactionHash: result.TransactionHash.String(),
		AccountHash:     result.AccountHash.String(),
		Transactions:    result.Transactions,
		Entries:         result.Entries,
		NodesExported:   result.NodesExported,
		Verified:        verify,
	})
}
