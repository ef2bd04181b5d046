// Copyright (c) 2017-2024 The nekod developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/nekoproject/nekod/wire"
)

var (
	// testNetGenesisHash is the hash of the first block in the block chain
	// for the test network.
	testNetGenesisHash = newHashFromStr("0000580a864fa09315c854185d7bbbb78260a69bf5a087e690b1c9c2526fe4da")

	// testNetPowLimit is the highest proof of work value a block can have
	// for the test network.  It is the value 2^251 - 1.
	testNetPowLimit = powLimitShift(5)
)

// newTestNetParams derives the test network parameters from the main
// network ones.
func newTestNetParams(main *Params) *Params {
	p := main.clone()

	p.Net = TestNet
	p.Name = "test"
	p.Magic = wire.TestNet
	p.DefaultPort = "6163"
	p.DNSSeeds = []DNSSeed{}
	p.FixedSeeds = append([]SeedSpec{}, testNetSeeds...)

	p.GenesisBlock = mustGenesisBlock(1508535054, 26039, testNetGenesisHash)
	p.GenesisHash = testNetGenesisHash
	p.PowLimit = testNetPowLimit
	p.PowLimitBits = 0x2007ffff
	p.InitialHashTarget = testNetPowLimit

	p.BlockEnforceNumRequired = 51
	p.BlockRejectNumRequired = 75
	p.BlockUpgradeNumToCheck = 100

	p.CoinbaseMaturity = 1
	p.StakeMinAge = time.Minute
	p.StakeModifierInterval = 20 * time.Minute
	p.MaxTipAge = 0x7fffffff * time.Second

	p.Checkpoints = mustCheckpointTable(CheckpointStats{
		LastCheckpointTime: time.Unix(1508535054, 0),
	},
		Checkpoint{0, testNetGenesisHash},
	)

	p.AddressPrefixes = testNetPrefixes

	p.ReduceMinDifficulty = true
	p.RequireStandard = false
	p.TestnetToBeDeprecatedFieldRPC = true

	return p
}
