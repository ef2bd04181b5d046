// Copyright (c) 2017-2024 The nekod developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
)

// PrefixKind is the purpose an address prefix is used for.
type PrefixKind uint8

const (
	// PubKeyHashPrefix prefixes pay-to-pubkey-hash addresses.
	PubKeyHashPrefix PrefixKind = iota

	// ScriptHashPrefix prefixes pay-to-script-hash addresses.
	ScriptHashPrefix

	// PrivateKeyPrefix prefixes WIF encoded private keys.
	PrivateKeyPrefix

	// HDPublicKeyPrefix and HDPrivateKeyPrefix prefix serialized BIP32
	// extended keys.
	HDPublicKeyPrefix
	HDPrivateKeyPrefix

	numPrefixKinds
)

var prefixKindStrings = [numPrefixKinds]string{
	PubKeyHashPrefix:   "pubkey hash",
	ScriptHashPrefix:   "script hash",
	PrivateKeyPrefix:   "private key",
	HDPublicKeyPrefix:  "hd public key",
	HDPrivateKeyPrefix: "hd private key",
}

// String returns the purpose name.
func (k PrefixKind) String() string {
	if k < numPrefixKinds {
		return prefixKindStrings[k]
	}
	return fmt.Sprintf("Unknown PrefixKind (%d)", uint8(k))
}

var (
	// ErrAmbiguousPrefixes describes a prefix table whose pubkey hash and
	// script hash address IDs collide.
	ErrAmbiguousPrefixes = errors.New("pubkey hash and script hash address IDs are equal")

	// ErrUnknownAddressPrefix describes an address whose version byte is
	// not an address ID of the network.
	ErrUnknownAddressPrefix = errors.New("unknown address prefix")

	// ErrInvalidAddress describes a string that is not a Base58Check
	// encoded 20-byte hash.
	ErrInvalidAddress = errors.New("invalid address")
)

// AddressPrefixes holds the version bytes used when encoding addresses and
// keys for a network.
type AddressPrefixes struct {
	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte
}

// Prefix returns the raw prefix bytes for the given purpose.  It panics on an
// unknown kind.
func (p *AddressPrefixes) Prefix(kind PrefixKind) []byte {
	switch kind {
	case PubKeyHashPrefix:
		return []byte{p.PubKeyHashAddrID}
	case ScriptHashPrefix:
		return []byte{p.ScriptHashAddrID}
	case PrivateKeyPrefix:
		return []byte{p.PrivateKeyID}
	case HDPublicKeyPrefix:
		return append([]byte{}, p.HDPublicKeyID[:]...)
	case HDPrivateKeyPrefix:
		return append([]byte{}, p.HDPrivateKeyID[:]...)
	}
	panic(fmt.Sprintf("prefix requested for %v", kind))
}

// Validate ensures pubkey hash and script hash addresses are
// distinguishable.
func (p *AddressPrefixes) Validate() error {
	if p.PubKeyHashAddrID == p.ScriptHashAddrID {
		return fmt.Errorf("%w: both are %d", ErrAmbiguousPrefixes,
			p.PubKeyHashAddrID)
	}
	return nil
}

// EncodePubKeyHash returns the pay-to-pubkey-hash address of the 20-byte
// hash.
func (p *AddressPrefixes) EncodePubKeyHash(pkHash []byte) (string, error) {
	if len(pkHash) != 20 {
		return "", fmt.Errorf("%w: pubkey hash is %d bytes", ErrInvalidAddress,
			len(pkHash))
	}
	return base58.CheckEncode(pkHash, p.PubKeyHashAddrID), nil
}

// EncodeScriptHash returns the pay-to-script-hash address of the serialized
// redeem script.
func (p *AddressPrefixes) EncodeScriptHash(script []byte) string {
	return base58.CheckEncode(btcutil.Hash160(script), p.ScriptHashAddrID)
}

// EncodeAddressPubKey returns the pay-to-pubkey-hash address of the
// compressed public key.
func (p *AddressPrefixes) EncodeAddressPubKey(pubKey *btcec.PublicKey) string {
	return base58.CheckEncode(btcutil.Hash160(pubKey.SerializeCompressed()),
		p.PubKeyHashAddrID)
}

// EncodePrivateKey returns the wallet import format of the private key.
func (p *AddressPrefixes) EncodePrivateKey(privKey *btcec.PrivateKey, compressed bool) string {
	payload := privKey.Serialize()
	if compressed {
		payload = append(payload, 0x01)
	}
	return base58.CheckEncode(payload, p.PrivateKeyID)
}

// DecodeAddress decodes a P2PKH or P2SH address for this network and returns
// its kind and hash.
func (p *AddressPrefixes) DecodeAddress(addr string) (PrefixKind, []byte, error) {
	decoded, version, err := base58.CheckDecode(addr)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(decoded) != 20 {
		return 0, nil, fmt.Errorf("%w: payload is %d bytes",
			ErrInvalidAddress, len(decoded))
	}

	switch version {
	case p.PubKeyHashAddrID:
		return PubKeyHashPrefix, decoded, nil
	case p.ScriptHashAddrID:
		return ScriptHashPrefix, decoded, nil
	}
	return 0, nil, fmt.Errorf("%w: %d", ErrUnknownAddressPrefix, version)
}

var (
	mainNetPrefixes = AddressPrefixes{
		PubKeyHashAddrID: 33,  // starts with E
		ScriptHashAddrID: 92,  // starts with e
		PrivateKeyID:     128, // starts with 5 (uncompressed) or K (compressed)
		HDPrivateKeyID:   [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
		HDPublicKeyID:    [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub
	}

	testNetPrefixes = AddressPrefixes{
		PubKeyHashAddrID: 111, // starts with m or n
		ScriptHashAddrID: 196, // starts with 2
		PrivateKeyID:     239, // starts with 9 (uncompressed) or c (compressed)
		HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
		HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub
	}
)
