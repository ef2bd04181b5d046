// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2017-2024 The nekod developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/binary"
	"io"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"
)

const (
	// TxVersion is the current latest supported transaction version.
	TxVersion = 1

	// MaxScriptSize is the maximum allowed length of a raw script.
	MaxScriptSize = 10000

	// minTxInPayload is the minimum payload size for a transaction input.
	// PreviousOutPoint.Hash + PreviousOutPoint.Index 4 bytes + Varint for
	// SignatureScript length 1 byte + Sequence 4 bytes.
	minTxInPayload = 9 + chainhash.HashSize

	// maxTxInPerMessage is the maximum number of transactions inputs that
	// a transaction which fits into a message could possibly have.
	maxTxInPerMessage = (btcwire.MaxMessagePayload / minTxInPayload) + 1

	// minTxOutPayload is the minimum payload size for a transaction output.
	// Value 8 bytes + Varint for PkScript length 1 byte.
	minTxOutPayload = 9

	// maxTxOutPerMessage is the maximum number of transactions outputs that
	// a transaction which fits into a message could possibly have.
	maxTxOutPerMessage = (btcwire.MaxMessagePayload / minTxOutPayload) + 1
)

// The input and output layouts are identical to bitcoin's, so the btcd types
// are used directly.
type (
	OutPoint    = btcwire.OutPoint
	TxIn        = btcwire.TxIn
	TxOut       = btcwire.TxOut
	BlockHeader = btcwire.BlockHeader
)

// MsgTx is a proof-of-stake style transaction.  It differs from a bitcoin
// transaction only by the timestamp serialized right after the version.
//
// The serialized format is:
//
//	Field        Type          Size
//	version      int32         4
//	timestamp    uint32        4
//	txin count   VLQ           variable
//	txins        []TxIn        variable
//	txout count  VLQ           variable
//	txouts       []TxOut       variable
//	lock time    uint32        4
type MsgTx struct {
	Version   int32
	Timestamp time.Time
	TxIn      []*TxIn
	TxOut     []*TxOut
	LockTime  uint32
}

// NewMsgTx returns a new transaction with the given version and timestamp
// and no inputs or outputs.
func NewMsgTx(version int32, timestamp time.Time) *MsgTx {
	return &MsgTx{
		Version:   version,
		Timestamp: timestamp,
		TxIn:      make([]*TxIn, 0, 1),
		TxOut:     make([]*TxOut, 0, 1),
	}
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// IsCoinBase determines whether or not the transaction is a coinbase.  A
// coinbase has exactly one input which references the all-zero hash with the
// maximum output index.
func (msg *MsgTx) IsCoinBase() bool {
	if len(msg.TxIn) != 1 {
		return false
	}

	prevOut := &msg.TxIn[0].PreviousOutPoint
	return prevOut.Index == btcwire.MaxPrevOutIndex &&
		prevOut.Hash == chainhash.Hash{}
}

// TxHash generates the double sha256 hash of the serialized transaction.
func (msg *MsgTx) TxHash() chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, msg.SerializeSize()))
	_ = msg.Serialize(buf)
	return chainhash.DoubleHashH(buf.Bytes())
}

// Copy creates a deep copy of the transaction so the original is not
// modified when the copy is manipulated.
func (msg *MsgTx) Copy() *MsgTx {
	newTx := MsgTx{
		Version:   msg.Version,
		Timestamp: msg.Timestamp,
		TxIn:      make([]*TxIn, 0, len(msg.TxIn)),
		TxOut:     make([]*TxOut, 0, len(msg.TxOut)),
		LockTime:  msg.LockTime,
	}

	for _, oldTxIn := range msg.TxIn {
		newTxIn := TxIn{
			PreviousOutPoint: oldTxIn.PreviousOutPoint,
			Sequence:         oldTxIn.Sequence,
		}
		if oldTxIn.SignatureScript != nil {
			newTxIn.SignatureScript = make([]byte, len(oldTxIn.SignatureScript))
			copy(newTxIn.SignatureScript, oldTxIn.SignatureScript)
		}
		newTx.TxIn = append(newTx.TxIn, &newTxIn)
	}

	for _, oldTxOut := range msg.TxOut {
		newTxOut := TxOut{Value: oldTxOut.Value}
		if oldTxOut.PkScript != nil {
			newTxOut.PkScript = make([]byte, len(oldTxOut.PkScript))
			copy(newTxOut.PkScript, oldTxOut.PkScript)
		}
		newTx.TxOut = append(newTx.TxOut, &newTxOut)
	}

	return &newTx
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction.
func (msg *MsgTx) SerializeSize() int {
	// Version 4 bytes + Timestamp 4 bytes + LockTime 4 bytes + Serialized
	// varint size for the number of transaction inputs and outputs.
	n := 12 + btcwire.VarIntSerializeSize(uint64(len(msg.TxIn))) +
		btcwire.VarIntSerializeSize(uint64(len(msg.TxOut)))

	for _, txIn := range msg.TxIn {
		// Outpoint 36 bytes + varint script length + script + sequence
		// 4 bytes.
		n += 40 + btcwire.VarIntSerializeSize(uint64(len(txIn.SignatureScript))) +
			len(txIn.SignatureScript)
	}

	for _, txOut := range msg.TxOut {
		// Value 8 bytes + varint script length + script.
		n += 8 + btcwire.VarIntSerializeSize(uint64(len(txOut.PkScript))) +
			len(txOut.PkScript)
	}

	return n
}

// Serialize encodes the transaction to w.
func (msg *MsgTx) Serialize(w io.Writer) error {
	var buf [8]byte

	binary.LittleEndian.PutUint32(buf[:4], uint32(msg.Version))
	if _, err := w.Write(buf[:4]); err != nil {
		return err
	}

	binary.LittleEndian.PutUint32(buf[:4], uint32(msg.Timestamp.Unix()))
	if _, err := w.Write(buf[:4]); err != nil {
		return err
	}

	err := btcwire.WriteVarInt(w, 0, uint64(len(msg.TxIn)))
	if err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		if err := writeTxIn(w, ti, buf[:]); err != nil {
			return err
		}
	}

	err = btcwire.WriteVarInt(w, 0, uint64(len(msg.TxOut)))
	if err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		binary.LittleEndian.PutUint64(buf[:], uint64(to.Value))
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
		if err := btcwire.WriteVarBytes(w, 0, to.PkScript); err != nil {
			return err
		}
	}

	binary.LittleEndian.PutUint32(buf[:4], msg.LockTime)
	_, err = w.Write(buf[:4])
	return err
}

// Deserialize decodes a transaction from r into the receiver.
func (msg *MsgTx) Deserialize(r io.Reader) error {
	var buf [8]byte

	if _, err := io.ReadFull(r, buf[:4]); err != nil {
		return err
	}
	msg.Version = int32(binary.LittleEndian.Uint32(buf[:4]))

	if _, err := io.ReadFull(r, buf[:4]); err != nil {
		return err
	}
	msg.Timestamp = time.Unix(int64(binary.LittleEndian.Uint32(buf[:4])), 0)

	count, err := btcwire.ReadVarInt(r, 0)
	if err != nil {
		return err
	}
	if count > uint64(maxTxInPerMessage) {
		return messageError("MsgTx.Deserialize", "too many input "+
			"transactions to fit into max message size")
	}
	msg.TxIn = make([]*TxIn, 0, count)
	for i := uint64(0); i < count; i++ {
		ti := new(TxIn)
		if err := readTxIn(r, ti, buf[:]); err != nil {
			return err
		}
		msg.TxIn = append(msg.TxIn, ti)
	}

	count, err = btcwire.ReadVarInt(r, 0)
	if err != nil {
		return err
	}
	if count > uint64(maxTxOutPerMessage) {
		return messageError("MsgTx.Deserialize", "too many output "+
			"transactions to fit into max message size")
	}
	msg.TxOut = make([]*TxOut, 0, count)
	for i := uint64(0); i < count; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return err
		}
		to := &TxOut{Value: int64(binary.LittleEndian.Uint64(buf[:]))}
		to.PkScript, err = btcwire.ReadVarBytes(r, 0, MaxScriptSize,
			"transaction output public key script")
		if err != nil {
			return err
		}
		msg.TxOut = append(msg.TxOut, to)
	}

	if _, err := io.ReadFull(r, buf[:4]); err != nil {
		return err
	}
	msg.LockTime = binary.LittleEndian.Uint32(buf[:4])

	return nil
}

func writeTxIn(w io.Writer, ti *TxIn, buf []byte) error {
	if _, err := w.Write(ti.PreviousOutPoint.Hash[:]); err != nil {
		return err
	}

	binary.LittleEndian.PutUint32(buf[:4], ti.PreviousOutPoint.Index)
	if _, err := w.Write(buf[:4]); err != nil {
		return err
	}

	if err := btcwire.WriteVarBytes(w, 0, ti.SignatureScript); err != nil {
		return err
	}

	binary.LittleEndian.PutUint32(buf[:4], ti.Sequence)
	_, err := w.Write(buf[:4])
	return err
}

func readTxIn(r io.Reader, ti *TxIn, buf []byte) error {
	if _, err := io.ReadFull(r, ti.PreviousOutPoint.Hash[:]); err != nil {
		return err
	}

	if _, err := io.ReadFull(r, buf[:4]); err != nil {
		return err
	}
	ti.PreviousOutPoint.Index = binary.LittleEndian.Uint32(buf[:4])

	var err error
	ti.SignatureScript, err = btcwire.ReadVarBytes(r, 0, MaxScriptSize,
		"transaction input signature script")
	if err != nil {
		return err
	}

	if _, err := io.ReadFull(r, buf[:4]); err != nil {
		return err
	}
	ti.Sequence = binary.LittleEndian.Uint32(buf[:4])

	return nil
}

// messageError creates an error for the given function and description.
func messageError(f string, desc string) *btcwire.MessageError {
	return &btcwire.MessageError{Func: f, Description: desc}
}
