// Copyright (c) 2017-2024 The nekod developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/nekoproject/nekod/wire"
)

var (
	// mainGenesisHash is the hash of the first block in the block chain for
	// the main network (genesis block).
	mainGenesisHash = newHashFromStr("000027036a0c08bcc5705a8025481ddd6905fd6bd03567019f1844034b09b0c7")

	// mainPowLimit is the highest proof of work value a block can have for
	// the main network.  It is the value 2^241 - 1.
	mainPowLimit = powLimitShift(15)
)

// newMainNetParams builds the main network parameters.
func newMainNetParams() *Params {
	return &Params{
		Net:         MainNet,
		Name:        "main",
		Magic:       wire.MainNet,
		DefaultPort: "6161",
		DNSSeeds:    []DNSSeed{},
		FixedSeeds:  []SeedSpec{},

		// Chain parameters
		GenesisBlock:      mustGenesisBlock(1508535053, 24340, mainGenesisHash),
		GenesisHash:       mainGenesisHash,
		PowLimit:          mainPowLimit,
		PowLimitBits:      0x1f01ffff,
		InitialHashTarget: mainPowLimit,

		BlockEnforceNumRequired: 750,
		BlockRejectNumRequired:  950,
		BlockUpgradeNumToCheck:  1000,

		MinerThreads: 0,

		TargetTimespan:     oneWeek,
		TargetTimePerBlock: 8 * time.Minute,
		StakeTargetSpacing: time.Minute,
		TargetSpacingMax:   time.Minute,

		CoinbaseMaturity: 32,

		StakeMinAge:           time.Minute,
		StakeMaxAge:           90 * time.Second,
		StakeModifierInterval: time.Minute,

		MaxTipAge: oneWeek,

		BIP0034Height: 0,
		BIP0065Height: 0,
		BIP0066Height: 0,

		// Checkpoints ordered from oldest to newest.
		Checkpoints: mustCheckpointTable(CheckpointStats{
			LastCheckpointTime:  time.Unix(1508535053, 0),
			TxsToLastCheckpoint: 0,
			TxsPerDay:           0,
		},
			Checkpoint{0, mainGenesisHash},
		),

		AddressPrefixes: mainNetPrefixes,

		RequireRPCPassword:            true,
		MiningRequiresPeers:           true,
		ReduceMinDifficulty:           false,
		ConsistencyChecks:             false,
		RequireStandard:               true,
		MineBlocksOnDemand:            false,
		SkipProofOfWorkCheck:          false,
		TestnetToBeDeprecatedFieldRPC: false,
	}
}
