// Copyright (c) 2017-2024 The nekod developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/rand"
	"net"
	"time"

	btcwire "github.com/btcsuite/btcd/wire"
)

const oneWeek = 7 * 24 * time.Hour

// SeedSpec is a compiled-in peer address.  IPv4 addresses are stored in their
// IPv4-mapped IPv6 form.
type SeedSpec struct {
	Addr [16]byte
	Port uint16
}

// testNetSeeds is the compiled test network seed list.  It is empty until
// seed nodes are published for the network.
var testNetSeeds []SeedSpec

// seedsToAddresses converts seed specs to network addresses that appear to
// have last been seen between one and two weeks ago, so the address manager
// prefers peers it learns about from the network.
func seedsToAddresses(seeds []SeedSpec, now time.Time) []*btcwire.NetAddress {
	addrs := make([]*btcwire.NetAddress, 0, len(seeds))
	for _, seed := range seeds {
		ip := make(net.IP, net.IPv6len)
		copy(ip, seed.Addr[:])

		addr := btcwire.NewNetAddressIPPort(ip, seed.Port, btcwire.SFNodeNetwork)
		lastSeen := now.Add(-oneWeek - time.Duration(rand.Int63n(int64(oneWeek))))
		addr.Timestamp = time.Unix(lastSeen.Unix(), 0)
		addrs = append(addrs, addr)
	}
	return addrs
}

// FixedSeedAddresses returns the compiled-in seeds of the network as peer
// addresses.
func (p *Params) FixedSeedAddresses() []*btcwire.NetAddress {
	return seedsToAddresses(p.FixedSeeds, time.Now())
}
