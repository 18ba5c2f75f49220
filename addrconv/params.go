// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addrconv

import (
	"fmt"

	"github.com/btcsuite/bchaddr/cashaddr"
)

// Network identifies a Bitcoin Cash network.
type Network uint8

const (
	// MainNet is the main Bitcoin Cash network.
	MainNet Network = iota

	// TestNet is the public test network.
	TestNet

	// RegTest is the regression test network.
	RegTest
)

// networkStrings is a map of networks back to their constant names for pretty
// printing.
var networkStrings = map[Network]string{
	MainNet: "mainnet",
	TestNet: "testnet",
	RegTest: "regtest",
}

// String returns the Network in human-readable form.
func (n Network) String() string {
	if s, ok := networkStrings[n]; ok {
		return s
	}
	return fmt.Sprintf("Unknown Network (%d)", uint8(n))
}

// Params defines the address encoding parameters of a Bitcoin Cash network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net identifies the network the parameters belong to.
	Net Network

	// CashAddrPrefix is the prefix of CashAddr addresses on the network.
	CashAddrPrefix string

	// Legacy address version bytes.
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
}

// MainNetParams defines the address parameters for the main network.
var MainNetParams = Params{
	Name:             "mainnet",
	Net:              MainNet,
	CashAddrPrefix:   "bitcoincash",
	PubKeyHashAddrID: 0x00, // starts with 1
	ScriptHashAddrID: 0x05, // starts with 3
}

// TestNet3Params defines the address parameters for the test network
// (version 3).
var TestNet3Params = Params{
	Name:             "testnet3",
	Net:              TestNet,
	CashAddrPrefix:   "bchtest",
	PubKeyHashAddrID: 0x6f, // starts with m or n
	ScriptHashAddrID: 0xc4, // starts with 2
}

// RegressionNetParams defines the address parameters for the regression test
// network.  Legacy addresses share their version bytes with the test network.
var RegressionNetParams = Params{
	Name:             "regtest",
	Net:              RegTest,
	CashAddrPrefix:   "bchreg",
	PubKeyHashAddrID: 0x6f, // starts with m or n
	ScriptHashAddrID: 0xc4, // starts with 2
}

// KindToLegacyVersion returns the legacy address version byte for an address
// kind on the network described by params.
func KindToLegacyVersion(params *Params, kind cashaddr.AddressKind) (byte, error) {
	switch kind {
	case cashaddr.PubKeyHash:
		return params.PubKeyHashAddrID, nil
	case cashaddr.ScriptHash:
		return params.ScriptHashAddrID, nil
	}

	str := fmt.Sprintf("address kind %v has no legacy version on %s",
		kind, params.Name)
	return 0, makeError(ErrUnsupportedVersion, str)
}

// LegacyVersionToKind returns the address kind identified by a legacy address
// version byte on the network described by params.
func LegacyVersionToKind(params *Params, version byte) (cashaddr.AddressKind, error) {
	switch version {
	case params.PubKeyHashAddrID:
		return cashaddr.PubKeyHash, nil
	case params.ScriptHashAddrID:
		return cashaddr.ScriptHash, nil
	}

	str := fmt.Sprintf("version byte 0x%02x is not used by %s", version,
		params.Name)
	return 0, makeError(ErrUnsupportedVersion, str)
}
