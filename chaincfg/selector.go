// Copyright (c) 2017-2024 The nekod developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoMatchingNetwork describes a combination of network selection
	// flags that does not name exactly one network.
	ErrNoMatchingNetwork = errors.New("no matching network")

	// ErrUnknownNetwork describes a network name that is not known.
	ErrUnknownNetwork = errors.New("unknown network")
)

// Selection state.  The variants are built once during package
// initialization and never replaced.  active is written by Select only,
// which callers must not run concurrently with readers of ActiveParams or
// with each other.
var (
	variants [numNetIDs]*Params
	active   *Params
)

func init() {
	// Bases are built before the variants derived from them.
	mainNet := mustValidate(newMainNetParams())
	testNet := mustValidate(newTestNetParams(mainNet))
	regTest := mustValidate(newRegTestParams(testNet))
	unitTest := mustValidate(newUnitTestParams(mainNet))

	variants = [numNetIDs]*Params{
		MainNet:  mainNet,
		TestNet:  testNet,
		RegTest:  regTest,
		UnitTest: unitTest,
	}

	for _, params := range variants {
		mustRegister(params)
	}
}

// paramsFor returns the variant for id, panicking on an unknown id.
func paramsFor(id NetID) *Params {
	if id >= numNetIDs {
		panic(fmt.Sprintf("chaincfg: unknown network %v", id))
	}
	return variants[id]
}

// Select makes the network identified by id the active one.  Selecting again
// replaces the active network, which test harnesses use to switch networks
// between test cases.
func Select(id NetID) {
	params := paramsFor(id)
	active = params
	log.Debugf("Selected %s network parameters", params.Name)
	log.Tracef("Genesis block: %v", newLogClosure(func() string {
		return params.GenesisBlock.String()
	}))
}

// ActiveParams returns the parameters of the selected network.  It panics if
// no network has been selected yet.
func ActiveParams() *Params {
	if active == nil {
		panic("chaincfg: network parameters read before a network was selected")
	}
	return active
}

// ParamsFor returns the parameters of the network identified by id regardless
// of which network is active.
func ParamsFor(id NetID) *Params {
	return paramsFor(id)
}

// UnitTestOverrides changes the unit test network parameters in place.  It
// is obtained from ModifiableParams.
type UnitTestOverrides struct {
	params *Params
}

// ModifiableParams returns the override handle for the unit test network.
// It panics unless the unit test network is the active one.
func ModifiableParams() *UnitTestOverrides {
	params := ActiveParams()
	if params.Net != UnitTest {
		panic(fmt.Sprintf("chaincfg: parameters of the %s network are "+
			"not modifiable", params.Name))
	}
	return &UnitTestOverrides{params: params}
}

// SetBlockEnforceNumRequired sets the number of upgraded blocks in the window
// that enforces the new block version.
func (o *UnitTestOverrides) SetBlockEnforceNumRequired(n uint32) {
	o.params.BlockEnforceNumRequired = n
}

// SetBlockRejectNumRequired sets the number of upgraded blocks in the window
// that rejects older block versions.
func (o *UnitTestOverrides) SetBlockRejectNumRequired(n uint32) {
	o.params.BlockRejectNumRequired = n
}

// SetBlockUpgradeNumToCheck sets the window of blocks examined for block
// version upgrades.
func (o *UnitTestOverrides) SetBlockUpgradeNumToCheck(n uint32) {
	o.params.BlockUpgradeNumToCheck = n
}

func (o *UnitTestOverrides) SetConsistencyChecks(v bool) {
	o.params.ConsistencyChecks = v
}

func (o *UnitTestOverrides) SetReduceMinDifficulty(v bool) {
	o.params.ReduceMinDifficulty = v
}

func (o *UnitTestOverrides) SetSkipProofOfWorkCheck(v bool) {
	o.params.SkipProofOfWorkCheck = v
}

// NetIDFromFlags maps the command line network flags to a network.  Neither
// flag selects the main network, and setting both is an error.
func NetIDFromFlags(testNet, regTest bool) (NetID, error) {
	switch {
	case testNet && regTest:
		return 0, fmt.Errorf("%w: the testnet and regtest flags can not "+
			"be used together", ErrNoMatchingNetwork)
	case testNet:
		return TestNet, nil
	case regTest:
		return RegTest, nil
	}
	return MainNet, nil
}

// SelectFromFlags selects the network named by the command line network
// flags.  The active network is left unchanged on error.
func SelectFromFlags(testNet, regTest bool) error {
	id, err := NetIDFromFlags(testNet, regTest)
	if err != nil {
		return err
	}
	Select(id)
	return nil
}

// NetIDFromName returns the network with the given name.  The unit test
// network can not be named since it is never run outside of tests.
func NetIDFromName(name string) (NetID, error) {
	switch strings.ToLower(name) {
	case "main", "mainnet":
		return MainNet, nil
	case "test", "testnet":
		return TestNet, nil
	case "regtest":
		return RegTest, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
}
