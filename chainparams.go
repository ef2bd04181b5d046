// Copyright (c) 2017-2024 The nekod developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/nekoproject/nekod/chaincfg"
)

// writeParams writes a human readable summary of the network parameters to w.
func writeParams(w io.Writer, params *chaincfg.Params) error {
	magic := params.Magic.Bytes()
	latest := params.Checkpoints.Latest()
	reward := btcutil.Amount(params.GenesisBlock.Transactions[0].TxOut[0].Value)

	lines := []struct {
		name  string
		value interface{}
	}{
		{"network", params.Name},
		{"magic", fmt.Sprintf("%x", magic[:])},
		{"port", params.DefaultPort},
		{"genesis", params.GenesisHash},
		{"genesis merkle root", params.GenesisBlock.Header.MerkleRoot},
		{"genesis time", params.GenesisBlock.Header.Timestamp.Unix()},
		{"genesis reward", reward},
		{"pow limit bits", fmt.Sprintf("%08x", params.PowLimitBits)},
		{"pow limit", fmt.Sprintf("%064x", params.PowLimit)},
		{"initial hash target", fmt.Sprintf("%064x", params.InitialHashTarget)},
		{"majority", fmt.Sprintf("%d/%d/%d", params.BlockEnforceNumRequired,
			params.BlockRejectNumRequired, params.BlockUpgradeNumToCheck)},
		{"target timespan", params.TargetTimespan},
		{"target time per block", params.TargetTimePerBlock},
		{"stake target spacing", params.StakeTargetSpacing},
		{"target spacing max", params.TargetSpacingMax},
		{"coinbase maturity", params.CoinbaseMaturity},
		{"stake min age", params.StakeMinAge},
		{"stake max age", params.StakeMaxAge},
		{"stake modifier interval", params.StakeModifierInterval},
		{"max tip age", params.MaxTipAge},
		{"checkpoints", params.Checkpoints.Len()},
		{"last checkpoint", fmt.Sprintf("%d %v", latest.Height, latest.Hash)},
		{"pubkey hash addr id", params.PubKeyHashAddrID},
		{"script hash addr id", params.ScriptHashAddrID},
		{"private key id", params.PrivateKeyID},
		{"hd public key id", fmt.Sprintf("%x", params.HDPublicKeyID[:])},
		{"hd private key id", fmt.Sprintf("%x", params.HDPrivateKeyID[:])},
		{"fixed seeds", len(params.FixedSeeds)},
		{"dns seeds", len(params.DNSSeeds)},
		{"require rpc password", params.RequireRPCPassword},
		{"mining requires peers", params.MiningRequiresPeers},
		{"reduce min difficulty", params.ReduceMinDifficulty},
		{"consistency checks", params.ConsistencyChecks},
		{"require standard", params.RequireStandard},
		{"mine blocks on demand", params.MineBlocksOnDemand},
	}

	for _, line := range lines {
		_, err := fmt.Fprintf(w, "%-24s %v\n", line.name+":", line.value)
		if err != nil {
			return err
		}
	}
	return nil
}
