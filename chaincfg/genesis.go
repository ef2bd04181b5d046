// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017-2024 The nekod developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/nekoproject/nekod/wire"
)

const (
	// genesisMessage is embedded in the coinbase of every genesis block.
	genesisMessage = "Enterneko 21/10/2017"

	// genesisCoinbaseTime is the timestamp of the genesis coinbase.
	genesisCoinbaseTime = 1508535050

	// genesisBits is the difficulty every genesis block was mined at.
	genesisBits = 0x1f00ffff

	// genesisScriptBits and genesisScriptExtraNonce are the two numbers
	// pushed ahead of the message in the coinbase signature script.
	genesisScriptBits       = 486604799
	genesisScriptExtraNonce = 9999
)

// ErrGenesisMismatch describes a genesis block that does not hash to the
// expected values.
var ErrGenesisMismatch = errors.New("genesis block mismatch")

// genesisMerkleRoot is the merkle root shared by every genesis block since
// they all carry the same coinbase.
var genesisMerkleRoot = newHashFromStr("8db586d27703f1736c8c41322745ed82acd81fa7fab0e7215b7e1b0899277496")

// GenesisSpec holds the inputs a genesis block is built from.
type GenesisSpec struct {
	// Message is pushed last in the coinbase signature script.
	Message string

	// CoinbaseTime is the timestamp of the coinbase transaction.
	CoinbaseTime time.Time

	// Reward is the value of the single coinbase output in atoms.
	Reward int64

	// Version, Timestamp, Bits and Nonce populate the block header.
	Version   int32
	Timestamp time.Time
	Bits      uint32
	Nonce     uint32
}

// newGenesisSpec returns the genesis inputs shared by all networks with the
// given header time and nonce.
func newGenesisSpec(timestamp int64, nonce uint32) *GenesisSpec {
	return &GenesisSpec{
		Message:      genesisMessage,
		CoinbaseTime: time.Unix(genesisCoinbaseTime, 0),
		Reward:       0,
		Version:      1,
		Timestamp:    time.Unix(timestamp, 0),
		Bits:         genesisBits,
		Nonce:        nonce,
	}
}

// NewGenesisBlock builds the genesis block described by spec.
func NewGenesisBlock(spec *GenesisSpec) (*wire.MsgBlock, error) {
	sigScript, err := txscript.NewScriptBuilder().
		AddInt64(genesisScriptBits).
		AddInt64(genesisScriptExtraNonce).
		AddData([]byte(spec.Message)).
		Script()
	if err != nil {
		return nil, fmt.Errorf("genesis coinbase script: %w", err)
	}

	coinbase := wire.NewMsgTx(wire.TxVersion, spec.CoinbaseTime)
	coinbase.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{
			Hash:  chainhash.Hash{},
			Index: btcwire.MaxPrevOutIndex,
		},
		SignatureScript: sigScript,
		Sequence:        btcwire.MaxTxInSequenceNum,
	})
	coinbase.AddTxOut(&wire.TxOut{
		Value:    spec.Reward,
		PkScript: []byte{},
	})

	block := &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:   spec.Version,
			PrevBlock: chainhash.Hash{},
			Timestamp: spec.Timestamp,
			Bits:      spec.Bits,
			Nonce:     spec.Nonce,
		},
		Transactions: []*wire.MsgTx{coinbase},
	}
	block.Header.MerkleRoot = block.MerkleRoot()

	return block, nil
}

// VerifyGenesis checks that block hashes to wantHash and commits to
// wantMerkleRoot.  The returned error wraps ErrGenesisMismatch.
func VerifyGenesis(block *wire.MsgBlock, wantHash, wantMerkleRoot *chainhash.Hash) error {
	if root := block.MerkleRoot(); !root.IsEqual(wantMerkleRoot) {
		return fmt.Errorf("%w: merkle root %v, want %v",
			ErrGenesisMismatch, root, wantMerkleRoot)
	}
	if !block.Header.MerkleRoot.IsEqual(wantMerkleRoot) {
		return fmt.Errorf("%w: header merkle root %v, want %v",
			ErrGenesisMismatch, block.Header.MerkleRoot, wantMerkleRoot)
	}
	if hash := block.BlockHash(); !hash.IsEqual(wantHash) {
		return fmt.Errorf("%w: block hash %v, want %v",
			ErrGenesisMismatch, hash, wantHash)
	}
	return nil
}

// mustGenesisBlock builds and verifies a compiled-in genesis block, panicking
// on any mismatch since that can only mean the hard-coded values are wrong.
func mustGenesisBlock(timestamp int64, nonce uint32, hash *chainhash.Hash) *wire.MsgBlock {
	block, err := NewGenesisBlock(newGenesisSpec(timestamp, nonce))
	if err != nil {
		panic(err)
	}
	if err := VerifyGenesis(block, hash, genesisMerkleRoot); err != nil {
		panic(err)
	}
	return block
}

// GenesisSpec returns the inputs the network genesis block was built from.
func (p *Params) GenesisSpec() *GenesisSpec {
	header := &p.GenesisBlock.Header
	spec := newGenesisSpec(header.Timestamp.Unix(), header.Nonce)
	spec.Bits = header.Bits
	spec.Version = header.Version
	return spec
}
