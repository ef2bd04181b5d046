// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017-2024 The nekod developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/nekoproject/nekod/wire"
)

var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// maxUint256 is the largest 256-bit unsigned value, 2^256 - 1.  Proof
	// of work limits are expressed as this value shifted right.
	maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256), bigOne)
)

// powLimitShift returns the 256-bit all ones value shifted right by n bits.
func powLimitShift(n uint) *big.Int {
	return new(big.Int).Rsh(maxUint256, n)
}

// NetID identifies one of the network variants known to this package.
type NetID uint8

const (
	// MainNet is the production network.
	MainNet NetID = iota

	// TestNet is the public test network.
	TestNet

	// RegTest is the local regression test network.
	RegTest

	// UnitTest is an in-process network for unit tests.  It is the only
	// variant whose parameters may be changed after construction, see
	// ModifiableParams.
	UnitTest

	// numNetIDs is the number of defined network variants.  It must always
	// come last.
	numNetIDs
)

// netIDStrings maps each network variant to its name.
var netIDStrings = [numNetIDs]string{
	MainNet:  "main",
	TestNet:  "test",
	RegTest:  "regtest",
	UnitTest: "unittest",
}

// String returns the network name of the variant.
func (id NetID) String() string {
	if id < numNetIDs {
		return netIDStrings[id]
	}
	return fmt.Sprintf("Unknown NetID (%d)", uint8(id))
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string

	// HasFiltering defines whether the seed supports filtering
	// by service flags (wire.ServiceFlag).
	HasFiltering bool
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// Params defines a network by its parameters.  These parameters may be used
// by applications to differentiate networks as well as addresses and keys for
// one network from those intended for use on another network.
//
// A Params value obtained from this package must be treated as read-only.
// The only sanctioned mutation is through the UnitTestOverrides handle.
type Params struct {
	// Net identifies the network variant.
	Net NetID

	// Name defines a human-readable identifier for the network.
	Name string

	// Magic defines the message start bytes used to identify the network.
	Magic wire.NekoNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds are the compiled-in peer addresses used when no other
	// peers are known.
	FixedSeeds []SeedSpec

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// InitialHashTarget is the proof of stake target the chain starts at.
	InitialHashTarget *big.Int

	// Enforce the current block version once this many blocks out of the
	// last BlockUpgradeNumToCheck have upgraded, and reject blocks with
	// older versions once BlockRejectNumRequired have.
	BlockEnforceNumRequired uint32
	BlockRejectNumRequired  uint32
	BlockUpgradeNumToCheck  uint32

	// MinerThreads is the default number of mining threads.  Zero lets the
	// miner pick one per core.
	MinerThreads int

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine how
	// it should be changed in order to maintain the desired block
	// generation rate.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.  It only affects network code.
	TargetTimePerBlock time.Duration

	// StakeTargetSpacing is the desired time between proof of stake
	// blocks.  The spacing of proof of work blocks depends on how many
	// proof of stake blocks lie between them, up to TargetSpacingMax.
	StakeTargetSpacing time.Duration
	TargetSpacingMax   time.Duration

	// CoinbaseMaturity is the number of blocks required before newly mined
	// coins (coinbase transactions) can be spent.
	CoinbaseMaturity uint16

	// StakeMinAge is the minimum age for coin age, StakeMaxAge the age at
	// which a stake reaches full weight and StakeModifierInterval the time
	// to elapse before a new stake modifier is computed.
	StakeMinAge           time.Duration
	StakeMaxAge           time.Duration
	StakeModifierInterval time.Duration

	// MaxTipAge is how old the best block may be before the node considers
	// itself out of sync.
	MaxTipAge time.Duration

	// These fields define the block heights at which the specified softfork
	// BIP became active.
	BIP0034Height int32
	BIP0065Height int32
	BIP0066Height int32

	// Checkpoints ordered from oldest to newest.
	Checkpoints *CheckpointTable

	// Address encoding magics.
	AddressPrefixes

	// RequireRPCPassword defines whether the RPC server refuses to start
	// without credentials.
	RequireRPCPassword bool

	// MiningRequiresPeers defines whether the miner waits for at least one
	// connected peer.
	MiningRequiresPeers bool

	// ReduceMinDifficulty defines whether the network should reduce the
	// minimum required difficulty after a long enough period of time has
	// passed without finding a block.  This is really only useful for test
	// networks and should not be set on a main network.
	ReduceMinDifficulty bool

	// ConsistencyChecks enables expensive internal consistency checks by
	// default.
	ConsistencyChecks bool

	// RequireStandard defines whether the mempool only accepts standard
	// transactions.
	RequireStandard bool

	// MineBlocksOnDemand allows blocks to be generated on request instead
	// of on the normal schedule.
	MineBlocksOnDemand bool

	// SkipProofOfWorkCheck disables proof of work verification.
	SkipProofOfWorkCheck bool

	// TestnetToBeDeprecatedFieldRPC makes RPC results carry the legacy
	// "testnet" field.
	TestnetToBeDeprecatedFieldRPC bool
}

var (
	// ErrDuplicateNet describes an error where the parameters for a
	// network could not be set due to the network already being a standard
	// network or previously-registered into this package.
	ErrDuplicateNet = errors.New("duplicate network")

	// ErrUnknownHDKeyID describes an error where the provided id which
	// is intended to identify the network for a hierarchical deterministic
	// private extended key is not registered.
	ErrUnknownHDKeyID = errors.New("unknown hd private extended key bytes")

	// ErrInvalidHDKeyID describes an error where the provided hierarchical
	// deterministic version bytes, or hd key id, is malformed.
	ErrInvalidHDKeyID = errors.New("invalid hd extended key version bytes")

	// ErrInvalidMajority describes block version majority thresholds that
	// are larger than the window they are counted over.
	ErrInvalidMajority = errors.New("invalid block version majority thresholds")

	// ErrPowLimitBits describes a compact proof of work limit that does
	// not match the full one.
	ErrPowLimitBits = errors.New("proof of work limit bits mismatch")
)

var (
	registeredNets    = make(map[wire.NekoNet]struct{})
	pubKeyHashAddrIDs = make(map[byte]struct{})
	scriptHashAddrIDs = make(map[byte]struct{})
	hdPrivToPubKeyIDs = make(map[[4]byte][]byte)
)

// clone returns a deep copy of the parameters.  Variants are derived by
// cloning their base and then overriding fields.
func (p *Params) clone() *Params {
	c := *p
	c.DNSSeeds = append([]DNSSeed{}, p.DNSSeeds...)
	c.FixedSeeds = append([]SeedSpec{}, p.FixedSeeds...)
	c.PowLimit = new(big.Int).Set(p.PowLimit)
	c.InitialHashTarget = new(big.Int).Set(p.InitialHashTarget)
	c.GenesisBlock = p.GenesisBlock.Copy()
	genesisHash := *p.GenesisHash
	c.GenesisHash = &genesisHash

	// Checkpoint tables are immutable and may be shared.
	return &c
}

// Validate checks the internal consistency of the parameters: the majority
// thresholds, the address prefixes, the compact proof of work limit, the
// genesis block and the checkpoint table.
func (p *Params) Validate() error {
	if p.BlockUpgradeNumToCheck == 0 ||
		p.BlockEnforceNumRequired > p.BlockUpgradeNumToCheck ||
		p.BlockRejectNumRequired > p.BlockUpgradeNumToCheck {

		return fmt.Errorf("%w: enforce %d, reject %d, window %d",
			ErrInvalidMajority, p.BlockEnforceNumRequired,
			p.BlockRejectNumRequired, p.BlockUpgradeNumToCheck)
	}

	if err := p.AddressPrefixes.Validate(); err != nil {
		return err
	}

	if bits := blockchain.BigToCompact(p.PowLimit); bits != p.PowLimitBits {
		return fmt.Errorf("%w: limit compacts to %08x, have %08x",
			ErrPowLimitBits, bits, p.PowLimitBits)
	}

	if p.GenesisBlock == nil || p.GenesisHash == nil {
		return fmt.Errorf("%w: no genesis block", ErrGenesisMismatch)
	}
	if hash := p.GenesisBlock.BlockHash(); !hash.IsEqual(p.GenesisHash) {
		return fmt.Errorf("%w: block hashes to %v, have %v",
			ErrGenesisMismatch, hash, p.GenesisHash)
	}

	if p.Checkpoints == nil {
		return ErrMissingGenesisCheckpoint
	}
	return p.Checkpoints.VerifyGenesis(p.GenesisHash)
}

// mustValidate panics when the parameters are inconsistent.  It is only
// called on compiled-in parameters during package initialization, where an
// error means the binary itself is broken.
func mustValidate(p *Params) *Params {
	if err := p.Validate(); err != nil {
		panic(fmt.Sprintf("invalid %s network parameters: %v", p.Name, err))
	}
	return p
}

// Register registers the network parameters for a network.  This may error
// with ErrDuplicateNet if the network is already registered (either due to a
// previous Register call, or the network being one of the default networks).
//
// The unit test network shares the message start bytes of the main network
// since it never exchanges messages with peers, so it only registers its
// address magics.
//
// Network parameters should be registered into this package by a main package
// as early as possible.  Then, library packages may lookup networks or network
// parameters based on inputs and work regardless of the network being standard
// or not.
func Register(params *Params) error {
	if params.Net != UnitTest {
		if _, ok := registeredNets[params.Magic]; ok {
			return ErrDuplicateNet
		}
		registeredNets[params.Magic] = struct{}{}
	}
	pubKeyHashAddrIDs[params.PubKeyHashAddrID] = struct{}{}
	scriptHashAddrIDs[params.ScriptHashAddrID] = struct{}{}

	return RegisterHDKeyID(params.HDPublicKeyID[:], params.HDPrivateKeyID[:])
}

// mustRegister performs the same function as Register except it panics if there
// is an error.  This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-pubkey-hash address on any default or registered network.  This is
// used when decoding an address string into a specific address type.  It is up
// to the caller to check both this and IsScriptHashAddrID and decide whether an
// address is a pubkey hash address, script hash address, neither, or
// undeterminable (if both return true).
func IsPubKeyHashAddrID(id byte) bool {
	_, ok := pubKeyHashAddrIDs[id]
	return ok
}

// IsScriptHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-script-hash address on any default or registered network.  This is
// used when decoding an address string into a specific address type.  It is up
// to the caller to check both this and IsPubKeyHashAddrID and decide whether an
// address is a pubkey hash address, script hash address, neither, or
// undeterminable (if both return true).
func IsScriptHashAddrID(id byte) bool {
	_, ok := scriptHashAddrIDs[id]
	return ok
}

// RegisterHDKeyID registers a public and private hierarchical deterministic
// extended key ID pair.  When the provided key IDs are invalid, the
// ErrInvalidHDKeyID error will be returned.
func RegisterHDKeyID(hdPublicKeyID []byte, hdPrivateKeyID []byte) error {
	if len(hdPublicKeyID) != 4 || len(hdPrivateKeyID) != 4 {
		return ErrInvalidHDKeyID
	}

	var keyID [4]byte
	copy(keyID[:], hdPrivateKeyID)
	hdPrivToPubKeyIDs[keyID] = append([]byte{}, hdPublicKeyID...)

	return nil
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id.  When the provided
// id is not registered, the ErrUnknownHDKeyID error will be returned.
func HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	if len(id) != 4 {
		return nil, ErrUnknownHDKeyID
	}

	var key [4]byte
	copy(key[:], id)
	pubBytes, ok := hdPrivToPubKeyIDs[key]
	if !ok {
		return nil, ErrUnknownHDKeyID
	}

	return pubBytes, nil
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// The only way this can panic is if there is an error in the
		// hard-coded hashes, so it will only ever potentially panic on
		// init.
		panic(err)
	}
	return hash
}
