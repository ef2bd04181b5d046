// Copyright (c) 2017-2024 The nekod developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/hex"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// testBlockHex is the serialized main network genesis block.
const testBlockHex = "0100000000000000000000000000000000000000000000000000000000000000" +
	"0000000096742799081b7e5b21e7b0faa71fd8ac82ed452732418c6c73f10377" +
	"d286b58d0d6bea59ffff001f145f000001010000000a6bea5901000000000000" +
	"0000000000000000000000000000000000000000000000000000ffffffff1d04" +
	"ffff001d020f2714456e7465726e656b6f2032312f31302f32303137ffffffff" +
	"010000000000000000000000000000"

func testBlock() *MsgBlock {
	tx := testCoinbaseTx()
	return &MsgBlock{
		Header: BlockHeader{
			Version:    1,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: tx.TxHash(),
			Timestamp:  time.Unix(1508535053, 0),
			Bits:       0x1f00ffff,
			Nonce:      24340,
		},
		Transactions: []*MsgTx{tx},
	}
}

func TestMsgBlockSerialize(t *testing.T) {
	t.Parallel()

	block := testBlock()
	want := hexToBytes(testBlockHex)

	got, err := block.Bytes()
	require.NoError(t, err)
	if !bytes.Equal(got, want) {
		t.Fatalf("serialized block mismatch - got %v, want %v",
			spew.Sdump(got), spew.Sdump(want))
	}
	require.Equal(t, len(want), block.SerializeSize())

	hash := block.BlockHash()
	require.Equal(t, "000027036a0c08bcc5705a8025481ddd6905fd6bd03567019f1844034b09b0c7",
		hash.String())
}

func TestMsgBlockDeserialize(t *testing.T) {
	t.Parallel()

	var block MsgBlock
	require.NoError(t, block.Deserialize(bytes.NewReader(hexToBytes(testBlockHex))))
	require.Len(t, block.Transactions, 1)
	require.Empty(t, block.Signature)
	require.Equal(t, testBlock().BlockHash(), block.BlockHash())
	require.Equal(t, block.Header.MerkleRoot, block.MerkleRoot())

	// A signed block keeps its signature through a round trip without the
	// signature affecting the hash.
	signed := testBlock()
	signed.Signature = []byte{0x30, 0x44, 0x02, 0x20}
	raw, err := signed.Bytes()
	require.NoError(t, err)
	require.Equal(t, testBlockHex[:len(testBlockHex)-2]+"0430440220",
		hex.EncodeToString(raw))

	var decoded MsgBlock
	require.NoError(t, decoded.Deserialize(bytes.NewReader(raw)))
	require.Equal(t, signed.Signature, decoded.Signature)
	require.Equal(t, testBlock().BlockHash(), decoded.BlockHash())
}

func TestMsgBlockCopy(t *testing.T) {
	t.Parallel()

	block := testBlock()
	cp := block.Copy()
	require.Equal(t, block.BlockHash(), cp.BlockHash())

	cp.Header.Nonce++
	cp.Transactions[0].TxOut[0].Value = 5
	require.Equal(t, uint32(24340), block.Header.Nonce)
	require.Equal(t, int64(0), block.Transactions[0].TxOut[0].Value)
}

func TestMsgBlockString(t *testing.T) {
	t.Parallel()

	want := "MsgBlock(hash=000027036a0c08bcc5705a8025481ddd6905fd6bd0356701" +
		"9f1844034b09b0c7, ver=1, hashPrevBlock=0000000000000000000000000000" +
		"000000000000000000000000000000000000, hashMerkleRoot=8db586d27703f17" +
		"36c8c41322745ed82acd81fa7fab0e7215b7e1b0899277496, nTime=1508535053, " +
		"nBits=1f00ffff, nNonce=24340, vtx=1)"
	require.Equal(t, want, testBlock().String())
}
