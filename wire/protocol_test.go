// Copyright (c) 2017-2024 The nekod developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNekoNetStringer tests the stringized output for network types.
func TestNekoNetStringer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   NekoNet
		want string
	}{
		{MainNet, "MainNet"},
		{TestNet, "TestNet"},
		{RegTest, "RegTest"},
		{0xffffffff, "Unknown NekoNet (4294967295)"},
	}

	for i, test := range tests {
		require.Equal(t, test.want, test.in.String(), "test #%d", i)
	}
}

func TestNekoNetBytes(t *testing.T) {
	t.Parallel()

	require.Equal(t, [4]byte{0x11, 0x22, 0x33, 0x44}, MainNet.Bytes())
	require.Equal(t, [4]byte{0xbb, 0xf1, 0xc9, 0xef}, TestNet.Bytes())
	require.Equal(t, [4]byte{0xcb, 0xf2, 0xc0, 0xef}, RegTest.Bytes())
}
