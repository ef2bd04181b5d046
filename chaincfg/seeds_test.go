// Copyright (c) 2017-2024 The nekod developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"
	"time"

	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
)

func TestSeedsToAddresses(t *testing.T) {
	t.Parallel()

	seeds := []SeedSpec{
		{
			Addr: [16]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xff, 10, 0, 0, 1},
			Port: 6163,
		},
		{
			Addr: [16]byte{0x20, 0x01, 0x0d, 0xb8, 15: 0x01},
			Port: 16163,
		},
	}

	now := time.Unix(1700000000, 0)
	addrs := seedsToAddresses(seeds, now)
	require.Len(t, addrs, 2)

	require.Equal(t, "10.0.0.1", addrs[0].IP.String())
	require.Equal(t, uint16(6163), addrs[0].Port)
	require.Equal(t, "2001:db8::1", addrs[1].IP.String())
	require.Equal(t, uint16(16163), addrs[1].Port)

	for _, addr := range addrs {
		require.Equal(t, btcwire.SFNodeNetwork, addr.Services)
		age := now.Sub(addr.Timestamp)
		require.True(t, age >= oneWeek && age <= 2*oneWeek,
			"last seen %v ago", age)
	}
}

func TestFixedSeedAddresses(t *testing.T) {
	t.Parallel()

	for id := MainNet; id < numNetIDs; id++ {
		params := ParamsFor(id)
		require.Len(t, params.FixedSeedAddresses(), len(params.FixedSeeds), id)
	}
}
