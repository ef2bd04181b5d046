// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2017-2024 The nekod developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"
)

const (
	// blockHeaderLen is the number of bytes of a serialized block header.
	blockHeaderLen = btcwire.MaxBlockHeaderPayload

	// MaxBlockSignatureSize is the maximum length of the block signature
	// appended to a serialized block.
	MaxBlockSignatureSize = 80

	// maxTxPerBlock is the maximum number of transactions that could
	// possibly fit into a block.
	maxTxPerBlock = (btcwire.MaxBlockPayload / 10) + 1
)

// MsgBlock is a block: the 80-byte bitcoin header, the transactions and the
// signature of the block producer.  The signature is empty for proof-of-work
// blocks, the genesis block included, and does not contribute to the block
// hash.
type MsgBlock struct {
	Header       BlockHeader
	Transactions []*MsgTx
	Signature    []byte
}

// AddTransaction adds a transaction to the message.
func (msg *MsgBlock) AddTransaction(tx *MsgTx) {
	msg.Transactions = append(msg.Transactions, tx)
}

// BlockHash computes the block identifier hash for this block.
func (msg *MsgBlock) BlockHash() chainhash.Hash {
	return msg.Header.BlockHash()
}

// TxHashes returns a slice of hashes of all of transactions in this block.
func (msg *MsgBlock) TxHashes() []chainhash.Hash {
	hashList := make([]chainhash.Hash, 0, len(msg.Transactions))
	for _, tx := range msg.Transactions {
		hashList = append(hashList, tx.TxHash())
	}
	return hashList
}

// SerializeSize returns the number of bytes it would take to serialize the
// block.
func (msg *MsgBlock) SerializeSize() int {
	n := blockHeaderLen + btcwire.VarIntSerializeSize(uint64(len(msg.Transactions))) +
		btcwire.VarIntSerializeSize(uint64(len(msg.Signature))) + len(msg.Signature)

	for _, tx := range msg.Transactions {
		n += tx.SerializeSize()
	}

	return n
}

// Serialize encodes the block to w.
func (msg *MsgBlock) Serialize(w io.Writer) error {
	if err := msg.Header.Serialize(w); err != nil {
		return err
	}

	err := btcwire.WriteVarInt(w, 0, uint64(len(msg.Transactions)))
	if err != nil {
		return err
	}

	for _, tx := range msg.Transactions {
		if err := tx.Serialize(w); err != nil {
			return err
		}
	}

	return btcwire.WriteVarBytes(w, 0, msg.Signature)
}

// Deserialize decodes a block from r into the receiver.
func (msg *MsgBlock) Deserialize(r io.Reader) error {
	if err := msg.Header.Deserialize(r); err != nil {
		return err
	}

	txCount, err := btcwire.ReadVarInt(r, 0)
	if err != nil {
		return err
	}

	// Prevent more transactions than could possibly fit into a block.
	// It would be possible to cause memory exhaustion and panics without
	// a sane upper bound on this count.
	if txCount > maxTxPerBlock {
		str := fmt.Sprintf("too many transactions to fit into a block "+
			"[count %d, max %d]", txCount, maxTxPerBlock)
		return messageError("MsgBlock.Deserialize", str)
	}

	msg.Transactions = make([]*MsgTx, 0, txCount)
	for i := uint64(0); i < txCount; i++ {
		tx := MsgTx{}
		if err := tx.Deserialize(r); err != nil {
			return err
		}
		msg.Transactions = append(msg.Transactions, &tx)
	}

	msg.Signature, err = btcwire.ReadVarBytes(r, 0, MaxBlockSignatureSize,
		"block signature")
	return err
}

// Bytes returns the serialized block.
func (msg *MsgBlock) Bytes() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, msg.SerializeSize()))
	if err := msg.Serialize(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Copy creates a deep copy of the block.
func (msg *MsgBlock) Copy() *MsgBlock {
	block := &MsgBlock{
		Header:       msg.Header,
		Transactions: make([]*MsgTx, 0, len(msg.Transactions)),
	}
	for _, tx := range msg.Transactions {
		block.Transactions = append(block.Transactions, tx.Copy())
	}
	if msg.Signature != nil {
		block.Signature = make([]byte, len(msg.Signature))
		copy(block.Signature, msg.Signature)
	}
	return block
}

// String returns a one line summary of the block suitable for logging.
func (msg *MsgBlock) String() string {
	return fmt.Sprintf("MsgBlock(hash=%v, ver=%d, hashPrevBlock=%v, "+
		"hashMerkleRoot=%v, nTime=%d, nBits=%08x, nNonce=%d, vtx=%d)",
		msg.BlockHash(), msg.Header.Version, msg.Header.PrevBlock,
		msg.Header.MerkleRoot, msg.Header.Timestamp.Unix(),
		msg.Header.Bits, msg.Header.Nonce, len(msg.Transactions))
}
