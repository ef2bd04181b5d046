// Copyright (c) 2017-2024 The nekod developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// newUnitTestParams derives the unit test network parameters from the main
// network ones.  It keeps the main network genesis block, checkpoints,
// message start bytes and address prefixes.
func newUnitTestParams(main *Params) *Params {
	p := main.clone()

	p.Net = UnitTest
	p.Name = "unittest"
	p.DefaultPort = "6665"
	p.DNSSeeds = []DNSSeed{}
	p.FixedSeeds = []SeedSpec{}

	p.RequireRPCPassword = false
	p.MiningRequiresPeers = false
	p.ConsistencyChecks = true
	p.ReduceMinDifficulty = false
	p.MineBlocksOnDemand = true

	return p
}
