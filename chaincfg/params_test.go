// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2017-2024 The nekod developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"math/big"
	"testing"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/nekoproject/nekod/wire"
	"github.com/stretchr/testify/require"
)

func TestNetIDString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   NetID
		want string
	}{
		{MainNet, "main"},
		{TestNet, "test"},
		{RegTest, "regtest"},
		{UnitTest, "unittest"},
		{NetID(200), "Unknown NetID (200)"},
	}

	for _, test := range tests {
		require.Equal(t, test.want, test.in.String())
	}

	for id := MainNet; id < numNetIDs; id++ {
		require.Equal(t, id.String(), ParamsFor(id).Name)
		require.Equal(t, id, ParamsFor(id).Net)
	}
}

func TestMainNetParams(t *testing.T) {
	t.Parallel()

	params := ParamsFor(MainNet)
	require.Equal(t, "6161", params.DefaultPort)
	require.Equal(t, [4]byte{0x11, 0x22, 0x33, 0x44}, params.Magic.Bytes())
	require.Equal(t, uint16(32), params.CoinbaseMaturity)
	require.Equal(t, uint32(750), params.BlockEnforceNumRequired)
	require.Equal(t, uint32(950), params.BlockRejectNumRequired)
	require.Equal(t, uint32(1000), params.BlockUpgradeNumToCheck)

	require.Equal(t, 7*24*time.Hour, params.TargetTimespan)
	require.Equal(t, 8*time.Minute, params.TargetTimePerBlock)
	require.Equal(t, time.Minute, params.StakeMinAge)
	require.Equal(t, 90*time.Second, params.StakeMaxAge)
	require.Equal(t, time.Minute, params.StakeModifierInterval)
	require.Equal(t, time.Minute, params.TargetSpacingMax)
	require.Equal(t, 0, params.MinerThreads)

	require.Empty(t, params.FixedSeeds)
	require.Empty(t, params.DNSSeeds)

	require.True(t, params.RequireRPCPassword)
	require.True(t, params.MiningRequiresPeers)
	require.True(t, params.RequireStandard)
	require.False(t, params.ReduceMinDifficulty)
	require.False(t, params.ConsistencyChecks)
	require.False(t, params.MineBlocksOnDemand)
	require.False(t, params.SkipProofOfWorkCheck)
	require.False(t, params.TestnetToBeDeprecatedFieldRPC)
}

func TestTestNetParams(t *testing.T) {
	t.Parallel()

	params := ParamsFor(TestNet)
	require.Equal(t, "6163", params.DefaultPort)
	require.Equal(t, [4]byte{0xbb, 0xf1, 0xc9, 0xef}, params.Magic.Bytes())
	require.Equal(t, uint16(1), params.CoinbaseMaturity)
	require.Equal(t, uint32(51), params.BlockEnforceNumRequired)
	require.Equal(t, uint32(75), params.BlockRejectNumRequired)
	require.Equal(t, uint32(100), params.BlockUpgradeNumToCheck)
	require.Equal(t, 20*time.Minute, params.StakeModifierInterval)
	require.Equal(t, 0x7fffffff*time.Second, params.MaxTipAge)

	// Inherited from the main network.
	require.Equal(t, 8*time.Minute, params.TargetTimePerBlock)
	require.Equal(t, 90*time.Second, params.StakeMaxAge)
	require.True(t, params.RequireRPCPassword)

	require.True(t, params.ReduceMinDifficulty)
	require.False(t, params.RequireStandard)
	require.True(t, params.TestnetToBeDeprecatedFieldRPC)
	require.Equal(t, len(testNetSeeds), len(params.FixedSeeds))
}

func TestRegTestParams(t *testing.T) {
	t.Parallel()

	params := ParamsFor(RegTest)
	require.Equal(t, "6164", params.DefaultPort)
	require.Equal(t, [4]byte{0xcb, 0xf2, 0xc0, 0xef}, params.Magic.Bytes())
	require.Empty(t, params.FixedSeeds)
	require.Empty(t, params.DNSSeeds)
	require.True(t, params.MineBlocksOnDemand)
	require.Equal(t, uint32(750), params.BlockEnforceNumRequired)
	require.Equal(t, uint32(950), params.BlockRejectNumRequired)
	require.Equal(t, uint32(1000), params.BlockUpgradeNumToCheck)
	require.Equal(t, 1, params.MinerThreads)
	require.Equal(t, 24*time.Hour, params.MaxTipAge)

	// Inherited from the test network.
	require.Equal(t, uint16(1), params.CoinbaseMaturity)
	require.Equal(t, 20*time.Minute, params.StakeModifierInterval)
	require.Equal(t, ParamsFor(TestNet).AddressPrefixes, params.AddressPrefixes)
	require.Zero(t, params.InitialHashTarget.Cmp(ParamsFor(TestNet).PowLimit))

	require.False(t, params.RequireRPCPassword)
	require.False(t, params.MiningRequiresPeers)
	require.True(t, params.ReduceMinDifficulty)
	require.True(t, params.ConsistencyChecks)
	require.False(t, params.RequireStandard)
	require.False(t, params.TestnetToBeDeprecatedFieldRPC)
}

func TestUnitTestParams(t *testing.T) {
	t.Parallel()

	mainParams := ParamsFor(MainNet)
	params := ParamsFor(UnitTest)
	require.Equal(t, "6665", params.DefaultPort)
	require.Equal(t, mainParams.Magic, params.Magic)
	require.Equal(t, *mainParams.GenesisHash, *params.GenesisHash)
	require.Equal(t, mainParams.AddressPrefixes, params.AddressPrefixes)
	require.Equal(t, mainParams.CoinbaseMaturity, params.CoinbaseMaturity)
	require.Empty(t, params.FixedSeeds)
	require.Empty(t, params.DNSSeeds)

	require.False(t, params.RequireRPCPassword)
	require.False(t, params.MiningRequiresPeers)
	require.True(t, params.MineBlocksOnDemand)
	require.NotSame(t, mainParams.GenesisBlock, params.GenesisBlock)
}

// TestPowLimits ensures the compact and full proof of work limits agree.
func TestPowLimits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		net   NetID
		shift uint
		bits  uint32
	}{
		{MainNet, 15, 0x1f01ffff},
		{TestNet, 5, 0x2007ffff},
		{RegTest, 1, 0x207fffff},
		{UnitTest, 15, 0x1f01ffff},
	}

	for _, test := range tests {
		params := ParamsFor(test.net)
		want := new(big.Int).Rsh(maxUint256, test.shift)
		require.Zero(t, want.Cmp(params.PowLimit), test.net)
		require.Equal(t, test.bits, params.PowLimitBits, test.net)
		require.Equal(t, test.bits, blockchain.BigToCompact(params.PowLimit), test.net)
		require.Equal(t, 256-int(test.shift), params.PowLimit.BitLen(), test.net)
	}

	require.Zero(t, ParamsFor(MainNet).InitialHashTarget.Cmp(ParamsFor(MainNet).PowLimit))
	require.Zero(t, ParamsFor(TestNet).InitialHashTarget.Cmp(ParamsFor(TestNet).PowLimit))
}

func TestMagicsUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[wire.NekoNet]NetID)
	for _, id := range []NetID{MainNet, TestNet, RegTest} {
		magic := ParamsFor(id).Magic
		other, ok := seen[magic]
		require.False(t, ok, "%v shares magic with %v", id, other)
		seen[magic] = id
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(p *Params)
		want   error
	}{
		{
			name: "enforce above window",
			modify: func(p *Params) {
				p.BlockEnforceNumRequired = p.BlockUpgradeNumToCheck + 1
			},
			want: ErrInvalidMajority,
		},
		{
			name: "reject above window",
			modify: func(p *Params) {
				p.BlockRejectNumRequired = p.BlockUpgradeNumToCheck + 1
			},
			want: ErrInvalidMajority,
		},
		{
			name:   "empty window",
			modify: func(p *Params) { p.BlockUpgradeNumToCheck = 0 },
			want:   ErrInvalidMajority,
		},
		{
			name:   "ambiguous prefixes",
			modify: func(p *Params) { p.ScriptHashAddrID = p.PubKeyHashAddrID },
			want:   ErrAmbiguousPrefixes,
		},
		{
			name:   "pow limit bits",
			modify: func(p *Params) { p.PowLimitBits = 0x1d00ffff },
			want:   ErrPowLimitBits,
		},
		{
			name:   "genesis hash",
			modify: func(p *Params) { p.GenesisHash = testNetGenesisHash },
			want:   ErrGenesisMismatch,
		},
		{
			name: "checkpoint genesis",
			modify: func(p *Params) {
				p.Checkpoints = mustCheckpointTable(CheckpointStats{},
					Checkpoint{0, &chainhash.Hash{}})
			},
			want: ErrGenesisMismatch,
		},
		{
			name:   "no checkpoints",
			modify: func(p *Params) { p.Checkpoints = nil },
			want:   ErrMissingGenesisCheckpoint,
		},
	}

	for id := MainNet; id < numNetIDs; id++ {
		require.NoError(t, ParamsFor(id).Validate(), id)
	}

	for _, test := range tests {
		params := ParamsFor(MainNet).clone()
		test.modify(params)
		require.ErrorIs(t, params.Validate(), test.want, test.name)
	}

	require.Panics(t, func() {
		params := ParamsFor(MainNet).clone()
		params.BlockUpgradeNumToCheck = 0
		mustValidate(params)
	})
}

// TestClone ensures derived parameters do not share mutable state with their
// base.
func TestClone(t *testing.T) {
	t.Parallel()

	base := ParamsFor(MainNet)
	clone := base.clone()

	clone.PowLimit.SetInt64(1)
	clone.InitialHashTarget.SetInt64(1)
	clone.DNSSeeds = append(clone.DNSSeeds, DNSSeed{Host: "seed.example.org"})
	clone.GenesisBlock.Header.Nonce++
	clone.GenesisHash[0] ^= 0xff

	require.Equal(t, 241, base.PowLimit.BitLen())
	require.Equal(t, 241, base.InitialHashTarget.BitLen())
	require.Empty(t, base.DNSSeeds)
	require.Equal(t, uint32(24340), base.GenesisBlock.Header.Nonce)
	require.Equal(t, *mainGenesisHash, *base.GenesisHash)
}

func TestRegister(t *testing.T) {
	// Registration changes package state shared by other tests.
	params := ParamsFor(MainNet).clone()
	require.ErrorIs(t, Register(params), ErrDuplicateNet)
	require.ErrorIs(t, Register(ParamsFor(RegTest)), ErrDuplicateNet)

	// The unit test network is exempt from the magic check.
	require.NoError(t, Register(ParamsFor(UnitTest)))

	custom := ParamsFor(RegTest).clone()
	custom.Magic = wire.NekoNet(0x0709110b)
	custom.PubKeyHashAddrID = 0x3f
	custom.ScriptHashAddrID = 0x40
	custom.HDPrivateKeyID = [4]byte{0x01, 0x02, 0x03, 0x04}
	custom.HDPublicKeyID = [4]byte{0x05, 0x06, 0x07, 0x08}
	require.NoError(t, Register(custom))
	require.ErrorIs(t, Register(custom), ErrDuplicateNet)

	tests := []struct {
		id         byte
		pubKeyHash bool
		scriptHash bool
	}{
		{33, true, false},
		{92, false, true},
		{111, true, false},
		{196, false, true},
		{0x3f, true, false},
		{0x40, false, true},
		{0x00, false, false},
		{128, false, false},
	}
	for _, test := range tests {
		require.Equal(t, test.pubKeyHash, IsPubKeyHashAddrID(test.id), "id %d", test.id)
		require.Equal(t, test.scriptHash, IsScriptHashAddrID(test.id), "id %d", test.id)
	}

	pub, err := HDPrivateKeyToPublicKeyID([]byte{0x04, 0x88, 0xad, 0xe4})
	require.NoError(t, err)
	require.True(t, bytes.Equal(pub, []byte{0x04, 0x88, 0xb2, 0x1e}))

	pub, err = HDPrivateKeyToPublicKeyID([]byte{0x04, 0x35, 0x83, 0x94})
	require.NoError(t, err)
	require.True(t, bytes.Equal(pub, []byte{0x04, 0x35, 0x87, 0xcf}))

	pub, err = HDPrivateKeyToPublicKeyID([]byte{0x01, 0x02, 0x03, 0x04})
	require.NoError(t, err)
	require.True(t, bytes.Equal(pub, []byte{0x05, 0x06, 0x07, 0x08}))

	_, err = HDPrivateKeyToPublicKeyID([]byte{0xff, 0xff, 0xff, 0xff})
	require.ErrorIs(t, err, ErrUnknownHDKeyID)
	_, err = HDPrivateKeyToPublicKeyID([]byte{0x04})
	require.ErrorIs(t, err, ErrUnknownHDKeyID)

	require.ErrorIs(t, RegisterHDKeyID([]byte{0x01}, []byte{0x01, 0x02, 0x03, 0x04}),
		ErrInvalidHDKeyID)
}

func TestMustRegisterPanics(t *testing.T) {
	require.PanicsWithValue(t, "failed to register network: duplicate network",
		func() { mustRegister(ParamsFor(TestNet)) })
}

func TestNewHashFromStrPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { newHashFromStr("zz") })
}
