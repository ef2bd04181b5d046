// Copyright (c) 2017-2024 The nekod developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"math"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/nekoproject/nekod/chaincfg"
	"github.com/nekoproject/nekod/wire"
)

// checkInterval is how many nonces are tried between checks for
// cancellation and progress reports.
const checkInterval = 1 << 16

// errNonceSpaceExhausted is returned when no nonce at or above the starting one
// solves the block.  A different timestamp or message must be tried.
var errNonceSpaceExhausted = errors.New("nonce space exhausted")

// solveGenesis builds the genesis block described by spec and searches for a
// nonce, starting at spec.Nonce, whose block hash does not exceed the target
// encoded by spec.Bits.  The search stops early when ctx is canceled.
func solveGenesis(ctx context.Context, spec *chaincfg.GenesisSpec) (*wire.MsgBlock, error) {
	block, err := chaincfg.NewGenesisBlock(spec)
	if err != nil {
		return nil, err
	}

	target := blockchain.CompactToBig(spec.Bits)
	if target.Sign() <= 0 {
		return nil, errors.New("target difficulty is not positive")
	}

	header := &block.Header
	for nonce := uint64(spec.Nonce); nonce <= math.MaxUint32; nonce++ {
		header.Nonce = uint32(nonce)
		hash := header.BlockHash()
		if blockchain.HashToBig(&hash).Cmp(target) <= 0 {
			return block, nil
		}

		if nonce%checkInterval == checkInterval-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			log.Debugf("Tried nonces up to %d", nonce)
		}
	}

	return nil, errNonceSpaceExhausted
}
