// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2017-2024 The nekod developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
)

// NekoNet represents which network a message belongs to.  The value is the
// little-endian reading of the four message start bytes that prefix every
// message on the wire.
type NekoNet uint32

// Constants used to indicate the message network.  They can also be used to
// seek to the next message when a stream's state is unknown, but this package
// does not provide that functionality since it's generally a better idea to
// simply disconnect clients that are misbehaving over TCP.
//
// The bytes are rarely used upper ASCII, not valid as UTF-8, and produce a
// large 4-byte int at any alignment.
const (
	// MainNet represents the main network.
	MainNet NekoNet = 0x44332211

	// TestNet represents the public test network.
	TestNet NekoNet = 0xefc9f1bb

	// RegTest represents the regression test network.
	RegTest NekoNet = 0xefc0f2cb
)

// nnStrings is a map of networks back to their constant names for pretty
// printing.
var nnStrings = map[NekoNet]string{
	MainNet: "MainNet",
	TestNet: "TestNet",
	RegTest: "RegTest",
}

// String returns the NekoNet in human-readable form.
func (n NekoNet) String() string {
	if s, ok := nnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown NekoNet (%d)", uint32(n))
}

// Bytes returns the message start bytes in the order they appear on the
// wire.
func (n NekoNet) Bytes() [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(n))
	return b
}
