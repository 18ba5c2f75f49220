// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addrconv

// Names of the built-in address formats.
const (
	// FormatLegacy is the Base58Check address format.
	FormatLegacy = "Legacy"

	// FormatCashAddr is the CashAddr address format using the prefixes of
	// the network parameters.
	FormatCashAddr = "CashAddr"
)

// Format describes an address format that shares the CashAddr encoding but
// uses its own prefixes.
type Format struct {
	// Name identifies the format in conversion options.
	Name string

	// Prefixes maps each network the format supports to its prefix.
	Prefixes map[Network]string
}

// SLPFormat is the Simple Ledger Protocol token address format.
var SLPFormat = Format{
	Name: "SLPAddr",
	Prefixes: map[Network]string{
		MainNet: "simpleledger",
		TestNet: "slptest",
	},
}
