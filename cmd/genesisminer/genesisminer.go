// Copyright (c) 2017-2024 The nekod developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btclog"
	"github.com/jessevdk/go-flags"
	"github.com/nekoproject/nekod/chaincfg"
	"github.com/nekoproject/nekod/wire"
)

var log = btclog.Disabled

// config defines the options of the genesis miner.  Unset options keep the
// value of the selected network's genesis block.
type config struct {
	Network    string `short:"n" long:"network" default:"main" description:"Network whose genesis block is the starting point {main, test, regtest}"`
	Time       int64  `short:"t" long:"time" description:"Block timestamp in seconds since the epoch"`
	Bits       string `short:"b" long:"bits" description:"Target difficulty in compact hex form"`
	StartNonce uint32 `long:"nonce" description:"Nonce to start searching from"`
	Message    string `short:"m" long:"message" description:"Message embedded in the coinbase"`
	Debug      bool   `short:"d" long:"debug" description:"Log search progress"`
}

// genesisSpec returns the genesis inputs named by the options.
func (cfg *config) genesisSpec() (*chaincfg.GenesisSpec, error) {
	id, err := chaincfg.NetIDFromName(cfg.Network)
	if err != nil {
		return nil, err
	}
	spec := chaincfg.ParamsFor(id).GenesisSpec()

	spec.Nonce = cfg.StartNonce
	if cfg.Time != 0 {
		spec.Timestamp = time.Unix(cfg.Time, 0)
	}
	if cfg.Bits != "" {
		bits, err := strconv.ParseUint(cfg.Bits, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid bits %q: %w", cfg.Bits, err)
		}
		spec.Bits = uint32(bits)
	}
	if cfg.Message != "" {
		spec.Message = cfg.Message
	}
	return spec, nil
}

// writeResult prints the solved block in a form that can be copied into the
// network parameters.
func writeResult(w io.Writer, spec *chaincfg.GenesisSpec, block *wire.MsgBlock) {
	hash := block.BlockHash()
	fmt.Fprintln(w, block)
	fmt.Fprintf(w, "coinbase message: %q\n", spec.Message)
	fmt.Fprintf(w, "coinbase reward:  %v\n", btcutil.Amount(spec.Reward))
	fmt.Fprintf(w, "merkle root:      %v\n", block.Header.MerkleRoot)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "GenesisBlock: mustGenesisBlock(%d, %d, genesisHash),\n",
		block.Header.Timestamp.Unix(), block.Header.Nonce)
	fmt.Fprintf(w, "genesisHash = newHashFromStr(%q)\n", hash.String())
}

func main() {
	var cfg config
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	backend := btclog.NewBackend(os.Stderr)
	log = backend.Logger("MINR")
	if cfg.Debug {
		log.SetLevel(btclog.LevelDebug)
	}

	spec, err := cfg.genesisSpec()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Infof("Searching for a nonce below target %08x from nonce %d",
		spec.Bits, spec.Nonce)
	start := time.Now()
	block, err := solveGenesis(ctx, spec)
	if err != nil {
		log.Errorf("Search failed after %v: %v", time.Since(start), err)
		stop()
		os.Exit(1)
	}
	log.Infof("Found nonce %d in %v", block.Header.Nonce, time.Since(start))

	writeResult(os.Stdout, spec, block)
}
