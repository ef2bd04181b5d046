// Copyright (c) 2017-2024 The nekod developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/nekoproject/nekod/wire"
)

var (
	// regTestGenesisHash is the hash of the first block in the block chain
	// for the regression test network.
	regTestGenesisHash = newHashFromStr("0000ab5744714f3d85eec0f8eabee1cebb851fe39a335ec8f432f7303b42ea23")

	// regTestPowLimit is the highest proof of work value a block can have
	// for the regression test network.  It is the value 2^255 - 1.
	regTestPowLimit = powLimitShift(1)
)

// newRegTestParams derives the regression test network parameters from the
// test network ones.  The initial hash target stays the test network's.
func newRegTestParams(test *Params) *Params {
	p := test.clone()

	p.Net = RegTest
	p.Name = "regtest"
	p.Magic = wire.RegTest
	p.DefaultPort = "6164"
	p.DNSSeeds = []DNSSeed{}
	p.FixedSeeds = []SeedSpec{}

	p.GenesisBlock = mustGenesisBlock(1508535055, 41490, regTestGenesisHash)
	p.GenesisHash = regTestGenesisHash
	p.PowLimit = regTestPowLimit
	p.PowLimitBits = 0x207fffff

	p.BlockEnforceNumRequired = 750
	p.BlockRejectNumRequired = 950
	p.BlockUpgradeNumToCheck = 1000

	p.MinerThreads = 1
	p.MaxTipAge = 24 * time.Hour

	p.Checkpoints = mustCheckpointTable(CheckpointStats{
		LastCheckpointTime: time.Unix(1508535055, 0),
	},
		Checkpoint{0, regTestGenesisHash},
	)

	p.RequireRPCPassword = false
	p.MiningRequiresPeers = false
	p.ReduceMinDifficulty = true
	p.ConsistencyChecks = true
	p.RequireStandard = false
	p.MineBlocksOnDemand = true
	p.TestnetToBeDeprecatedFieldRPC = false

	return p
}
