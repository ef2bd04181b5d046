// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017-2024 The nekod developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

var (
	// ErrCheckpointOrder describes a checkpoint list whose heights are not
	// strictly increasing.
	ErrCheckpointOrder = errors.New("checkpoints not in strictly increasing height order")

	// ErrMissingGenesisCheckpoint describes a checkpoint list without an
	// entry for the genesis block.
	ErrMissingGenesisCheckpoint = errors.New("no checkpoint at height 0")
)

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
//
// Each checkpoint is selected based upon several factors.  See the
// documentation for blockchain.IsCheckpointCandidate for details on the
// selection criteria.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// CheckpointStats estimates verification progress up to the last checkpoint.
type CheckpointStats struct {
	// LastCheckpointTime is the block time of the last checkpoint.
	LastCheckpointTime time.Time

	// TxsToLastCheckpoint is the total number of transactions between the
	// genesis block and the last checkpoint.
	TxsToLastCheckpoint uint64

	// TxsPerDay is the estimated number of transactions per day after the
	// last checkpoint.
	TxsPerDay float64
}

// CheckpointTable is an immutable list of checkpoints ordered by height that
// always starts at the genesis block.
type CheckpointTable struct {
	checkpoints []Checkpoint
	CheckpointStats
}

// NewCheckpointTable returns a table over the given checkpoints, which must be
// in strictly increasing height order and include height 0.
func NewCheckpointTable(stats CheckpointStats, checkpoints ...Checkpoint) (*CheckpointTable, error) {
	for i := 1; i < len(checkpoints); i++ {
		if checkpoints[i].Height <= checkpoints[i-1].Height {
			return nil, fmt.Errorf("%w: height %d follows %d",
				ErrCheckpointOrder, checkpoints[i].Height,
				checkpoints[i-1].Height)
		}
	}
	if len(checkpoints) == 0 || checkpoints[0].Height != 0 {
		return nil, ErrMissingGenesisCheckpoint
	}
	for _, cp := range checkpoints {
		if cp.Hash == nil {
			return nil, fmt.Errorf("checkpoint at height %d has no hash",
				cp.Height)
		}
	}

	return &CheckpointTable{
		checkpoints:     append([]Checkpoint{}, checkpoints...),
		CheckpointStats: stats,
	}, nil
}

// mustCheckpointTable is NewCheckpointTable for compiled-in tables.
func mustCheckpointTable(stats CheckpointStats, checkpoints ...Checkpoint) *CheckpointTable {
	table, err := NewCheckpointTable(stats, checkpoints...)
	if err != nil {
		panic(err)
	}
	return table
}

// Len returns the number of checkpoints.
func (t *CheckpointTable) Len() int {
	return len(t.checkpoints)
}

// Checkpoints returns a copy of the checkpoints in height order.
func (t *CheckpointTable) Checkpoints() []Checkpoint {
	return append([]Checkpoint{}, t.checkpoints...)
}

// Latest returns the checkpoint with the greatest height.
func (t *CheckpointTable) Latest() Checkpoint {
	return t.checkpoints[len(t.checkpoints)-1]
}

// search returns the index of the first checkpoint above height.
func (t *CheckpointTable) search(height int32) int {
	return sort.Search(len(t.checkpoints), func(i int) bool {
		return t.checkpoints[i].Height > height
	})
}

// Lookup returns the hash checkpointed at height, if any.
func (t *CheckpointTable) Lookup(height int32) (*chainhash.Hash, bool) {
	i := t.search(height)
	if i == 0 || t.checkpoints[i-1].Height != height {
		return nil, false
	}
	return t.checkpoints[i-1].Hash, true
}

// LatestAtOrBelow returns the highest checkpoint whose height does not exceed
// height.  Blocks that fork the chain below it can be rejected outright.
func (t *CheckpointTable) LatestAtOrBelow(height int32) (Checkpoint, bool) {
	i := t.search(height)
	if i == 0 {
		return Checkpoint{}, false
	}
	return t.checkpoints[i-1], true
}

// VerifyGenesis checks the height 0 checkpoint against the genesis hash.
func (t *CheckpointTable) VerifyGenesis(genesisHash *chainhash.Hash) error {
	if !t.checkpoints[0].Hash.IsEqual(genesisHash) {
		return fmt.Errorf("%w: checkpoint 0 is %v, genesis is %v",
			ErrGenesisMismatch, t.checkpoints[0].Hash, genesisHash)
	}
	return nil
}
