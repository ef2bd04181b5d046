// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017-2024 The nekod developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chaincfg defines chain configuration parameters.

In addition to the main network, which is intended for the transfer
of monetary value, there also exists a public test network and a local
regression test network.  A fourth network exists only to be selected by
unit tests.  These networks are incompatible with each other (each sharing a
different genesis block) and software should handle errors where input
intended for one network is used on an application instance running on a
different network.

All four networks are built, verified and registered when the package is
initialized.  A compiled-in genesis block that does not hash to its expected
value, or a malformed checkpoint list, panics during initialization since
the binary can not follow any network in that case.

Exactly one network is active at a time.  The daemon selects it during
startup, before any other goroutine reads parameters:

	if err := chaincfg.SelectFromFlags(cfg.TestNet, cfg.RegTest); err != nil {
		// Print usage and exit.
	}
	params := chaincfg.ActiveParams()
	fmt.Println(params.Name, params.DefaultPort)

Parameters must be treated as read-only.  Tests that need different
thresholds select the unit test network and change them through
ModifiableParams:

	chaincfg.Select(chaincfg.UnitTest)
	chaincfg.ModifiableParams().SetReduceMinDifficulty(true)

Selecting a network and changing unit test parameters are not safe for
concurrent use with readers.
*/
package chaincfg
