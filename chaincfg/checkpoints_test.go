// Copyright (c) 2017-2024 The nekod developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
)

func testCheckpointTable(t *testing.T) *CheckpointTable {
	table, err := NewCheckpointTable(CheckpointStats{},
		Checkpoint{0, mainGenesisHash},
		Checkpoint{100, newHashFromStr("00000000000000000000000000000000000000000000000000000000000000aa")},
		Checkpoint{250, newHashFromStr("00000000000000000000000000000000000000000000000000000000000000bb")},
	)
	require.NoError(t, err)
	return table
}

func TestNewCheckpointTableErrors(t *testing.T) {
	t.Parallel()

	hash := newHashFromStr("01")
	tests := []struct {
		name        string
		checkpoints []Checkpoint
		want        error
	}{
		{
			name: "empty",
			want: ErrMissingGenesisCheckpoint,
		},
		{
			name:        "no genesis",
			checkpoints: []Checkpoint{{5, hash}, {10, hash}},
			want:        ErrMissingGenesisCheckpoint,
		},
		{
			name:        "duplicate height",
			checkpoints: []Checkpoint{{0, hash}, {10, hash}, {10, hash}},
			want:        ErrCheckpointOrder,
		},
		{
			name:        "decreasing height",
			checkpoints: []Checkpoint{{0, hash}, {20, hash}, {10, hash}},
			want:        ErrCheckpointOrder,
		},
	}

	for _, test := range tests {
		_, err := NewCheckpointTable(CheckpointStats{}, test.checkpoints...)
		require.ErrorIs(t, err, test.want, test.name)
	}

	_, err := NewCheckpointTable(CheckpointStats{}, Checkpoint{0, nil})
	require.Error(t, err)

	require.Panics(t, func() {
		mustCheckpointTable(CheckpointStats{}, Checkpoint{10, hash})
	})
}

func TestCheckpointTableLookup(t *testing.T) {
	t.Parallel()

	table := testCheckpointTable(t)
	require.Equal(t, 3, table.Len())

	hash, ok := table.Lookup(0)
	require.True(t, ok)
	require.Equal(t, mainGenesisHash, hash)

	hash, ok = table.Lookup(100)
	require.True(t, ok)
	require.Equal(t, byte(0xaa), hash[0])

	for _, height := range []int32{-1, 1, 99, 101, 249, 251} {
		_, ok := table.Lookup(height)
		require.False(t, ok, "height %d", height)
	}
}

func TestCheckpointTableLatestAtOrBelow(t *testing.T) {
	t.Parallel()

	table := testCheckpointTable(t)
	tests := []struct {
		height int32
		want   int32
		found  bool
	}{
		{-1, 0, false},
		{0, 0, true},
		{99, 0, true},
		{100, 100, true},
		{249, 100, true},
		{250, 250, true},
		{1 << 30, 250, true},
	}

	for _, test := range tests {
		cp, ok := table.LatestAtOrBelow(test.height)
		require.Equal(t, test.found, ok, "height %d", test.height)
		if ok {
			require.Equal(t, test.want, cp.Height, "height %d", test.height)
		}
	}

	require.Equal(t, int32(250), table.Latest().Height)
}

func TestCheckpointTableIsolation(t *testing.T) {
	t.Parallel()

	table := testCheckpointTable(t)
	checkpoints := table.Checkpoints()
	checkpoints[1].Height = 1000

	require.Equal(t, 3, table.Len())
	_, ok := table.Lookup(100)
	require.True(t, ok)
}

func TestCheckpointTableVerifyGenesis(t *testing.T) {
	t.Parallel()

	table := testCheckpointTable(t)
	require.NoError(t, table.VerifyGenesis(mainGenesisHash))
	require.ErrorIs(t, table.VerifyGenesis(&chainhash.Hash{}), ErrGenesisMismatch)
}

// TestNetworkCheckpoints ensures every network's checkpoints increase in
// height and start at its genesis block.
func TestNetworkCheckpoints(t *testing.T) {
	t.Parallel()

	for id := MainNet; id < numNetIDs; id++ {
		params := ParamsFor(id)
		checkpoints := params.Checkpoints.Checkpoints()
		require.NotEmpty(t, checkpoints, id)
		require.Equal(t, int32(0), checkpoints[0].Height, id)
		require.Equal(t, *params.GenesisHash, *checkpoints[0].Hash, id)
		for i := 1; i < len(checkpoints); i++ {
			require.Greater(t, checkpoints[i].Height, checkpoints[i-1].Height, id)
		}

		require.Equal(t, params.GenesisBlock.Header.Timestamp,
			params.Checkpoints.LastCheckpointTime, id)
	}

	require.Same(t, ParamsFor(MainNet).Checkpoints, ParamsFor(UnitTest).Checkpoints)
}
