// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package addrconv converts Bitcoin Cash addresses between the legacy Base58Check
format and the CashAddr format.

A legacy address is a version byte, a 20-byte hash and a checksum.  The version
byte identifies both the network and whether the hash is a public key hash or a
script hash.  A CashAddr address carries the same hash, with the network in its
prefix and the kind of hash in its own version byte.  Converting between the
two keeps the hash and maps the network and kind from one encoding onto the
other:

	network   prefix        P2PKH  P2SH
	mainnet   bitcoincash   0x00   0x05
	testnet   bchtest       0x6f   0xc4
	regtest   bchreg        0x6f   0xc4

Testnet and regtest share their legacy version bytes, so a legacy address with
one of them resolves to the default network when that is regtest and to
testnet otherwise.  WithNetwork selects another network explicitly.

# Formats

Other protocols reuse the CashAddr encoding with their own prefixes.  They are
registered through Config.Formats and selected by name with WithFormat:

	c, err := addrconv.New(&addrconv.Config{
		Formats: []addrconv.Format{addrconv.SLPFormat},
	})
	if err != nil {
		return err
	}
	slp, err := c.ToCashAddrWithOptions(addr, addrconv.WithFormat("SLPAddr"))

# Errors

Errors from the base58 and cashaddr packages are returned unchanged, so a
mistyped address can be identified with errors.Is against the codec error
kinds, for example cashaddr.ErrChecksumMismatch.  Errors specific to the
conversion are of type Error and wrap an ErrorKind of this package.
*/
package addrconv
