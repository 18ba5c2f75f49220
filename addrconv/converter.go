// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addrconv

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/btcsuite/bchaddr/base58"
	"github.com/btcsuite/bchaddr/cashaddr"
	"golang.org/x/crypto/ripemd160"
)

// Config is a descriptor which specifies the converter instance configuration.
type Config struct {
	// Params identifies the default network.  Its CashAddr prefix is used
	// for addresses without a prefix and it replaces the built-in
	// parameters of the same network.  MainNetParams is used when nil.
	Params *Params

	// Formats registers additional CashAddr style formats, such as
	// SLPFormat.
	Formats []Format
}

// Address is the decoded form of a legacy or CashAddr address.
type Address struct {
	// Format is the name of the format the address was written in.
	Format string

	// Net is the network the address belongs to.
	Net Network

	// Kind is the kind of script the address pays to.
	Kind cashaddr.AddressKind

	// Hash is the public key hash or script hash.
	Hash []byte
}

// prefixInfo identifies the format and network a CashAddr prefix belongs to.
type prefixInfo struct {
	format string
	net    Network
}

// Converter converts addresses between the legacy and CashAddr formats.  It
// is immutable once created and safe for concurrent use.
type Converter struct {
	defaultParams *Params

	// params holds the parameters of every network by id.  legacyOrder
	// holds the same parameters in the order legacy version bytes are
	// resolved, default network first.
	params      map[Network]*Params
	legacyOrder []*Params

	// prefixes maps registered CashAddr prefixes to their format and
	// network, and cashPrefixes is the inverse.  prefixOrder is the order
	// unprefixed addresses are tried in.
	prefixes     map[string]prefixInfo
	cashPrefixes map[prefixInfo]string
	prefixOrder  []string
	formats      map[string]struct{}
}

// validPrefix returns whether a lowercase prefix can be used in a CashAddr
// address.
func validPrefix(prefix string) bool {
	if prefix == "" {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// addPrefix registers prefix for a format on a network.
func (c *Converter) addPrefix(format string, net Network, prefix string) error {
	prefix = strings.ToLower(prefix)
	if !validPrefix(prefix) {
		str := fmt.Sprintf("format %s has invalid prefix %q on %v",
			format, prefix, net)
		return makeError(ErrInvalidConfig, str)
	}
	if info, ok := c.prefixes[prefix]; ok {
		str := fmt.Sprintf("prefix %q is already registered for format "+
			"%s on %v", prefix, info.format, info.net)
		return makeError(ErrInvalidConfig, str)
	}

	info := prefixInfo{format: format, net: net}
	c.prefixes[prefix] = info
	c.cashPrefixes[info] = prefix
	c.prefixOrder = append(c.prefixOrder, prefix)
	c.formats[format] = struct{}{}
	log.Debugf("Registered prefix %q for format %s on %v", prefix, format,
		net)
	return nil
}

// New returns a Converter for the given configuration.  A nil configuration
// converts mainnet, testnet and regtest addresses with mainnet as the default
// network.
func New(cfg *Config) (*Converter, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	defaultParams := cfg.Params
	if defaultParams == nil {
		defaultParams = &MainNetParams
	}

	c := &Converter{
		defaultParams: defaultParams,
		params:        make(map[Network]*Params),
		prefixes:      make(map[string]prefixInfo),
		cashPrefixes:  make(map[prefixInfo]string),
		formats:       make(map[string]struct{}),
	}

	// The default network comes first so ambiguous legacy version bytes
	// and unprefixed CashAddr strings resolve to it.
	c.legacyOrder = append(c.legacyOrder, defaultParams)
	builtin := []*Params{&MainNetParams, &TestNet3Params, &RegressionNetParams}
	for _, params := range builtin {
		if params.Net != defaultParams.Net {
			c.legacyOrder = append(c.legacyOrder, params)
		}
	}
	for _, params := range c.legacyOrder {
		c.params[params.Net] = params
		err := c.addPrefix(FormatCashAddr, params.Net, params.CashAddrPrefix)
		if err != nil {
			return nil, err
		}
	}

	for _, format := range cfg.Formats {
		switch format.Name {
		case "", FormatLegacy, FormatCashAddr:
			str := fmt.Sprintf("format name %q is reserved", format.Name)
			return nil, makeError(ErrInvalidConfig, str)
		}
		if _, ok := c.formats[format.Name]; ok {
			str := fmt.Sprintf("format %s is already registered",
				format.Name)
			return nil, makeError(ErrInvalidConfig, str)
		}

		nets := make([]Network, 0, len(format.Prefixes))
		for net := range format.Prefixes {
			nets = append(nets, net)
		}
		sort.Slice(nets, func(i, j int) bool { return nets[i] < nets[j] })
		for _, net := range nets {
			if _, ok := c.params[net]; !ok {
				str := fmt.Sprintf("format %s uses unknown network %v",
					format.Name, net)
				return nil, makeError(ErrInvalidConfig, str)
			}
			err := c.addPrefix(format.Name, net, format.Prefixes[net])
			if err != nil {
				return nil, err
			}
		}
	}

	return c, nil
}

// Params returns the parameters of the default network.
func (c *Converter) Params() *Params {
	return c.defaultParams
}

// parseLegacy decodes a Base58Check address and resolves its version byte,
// trying the default network first.
func (c *Converter) parseLegacy(addr string) (*Address, error) {
	hash, version, err := base58.CheckDecode(addr)
	if err != nil {
		return nil, err
	}

	for _, params := range c.legacyOrder {
		kind, err := LegacyVersionToKind(params, version)
		if err != nil {
			continue
		}
		return &Address{
			Format: FormatLegacy,
			Net:    params.Net,
			Kind:   kind,
			Hash:   hash,
		}, nil
	}

	str := fmt.Sprintf("legacy version byte 0x%02x is not used by any "+
		"known network", version)
	return nil, makeError(ErrUnsupportedVersion, str)
}

// parseCash decodes a CashAddr address.  An address without a prefix is tried
// against every registered prefix, default network first, and the error for
// the default network is returned when none matches.
func (c *Converter) parseCash(addr string) (*Address, error) {
	if strings.IndexByte(addr, cashaddr.Separator) >= 0 {
		prefix, kind, hash, err := cashaddr.Decode(addr, "")
		if err != nil {
			return nil, err
		}
		return c.cashAddress(prefix, kind, hash)
	}

	var firstErr error
	for _, prefix := range c.prefixOrder {
		_, kind, hash, err := cashaddr.Decode(addr, prefix)
		if err == nil {
			return c.cashAddress(prefix, kind, hash)
		}
		if firstErr == nil {
			firstErr = err
		}

		// Only the checksum depends on the prefix.
		if !errors.Is(err, cashaddr.ErrChecksumMismatch) {
			break
		}
	}
	return nil, firstErr
}

// cashAddress resolves a decoded CashAddr prefix to its format and network.
func (c *Converter) cashAddress(prefix string, kind cashaddr.AddressKind,
	hash []byte) (*Address, error) {

	info, ok := c.prefixes[prefix]
	if !ok {
		str := fmt.Sprintf("unknown CashAddr prefix %q", prefix)
		return nil, makeError(ErrUnknownPrefix, str)
	}
	return &Address{
		Format: info.format,
		Net:    info.net,
		Kind:   kind,
		Hash:   hash,
	}, nil
}

// Parse decodes an address in any registered format.
//
// An address containing a separator is decoded as CashAddr only.  Otherwise
// it is decoded as a legacy address, falling back to CashAddr without a
// prefix.  When both fail the legacy error is returned, unless the string
// holds characters outside the Base58 alphabet and is not mixed case.
func (c *Converter) Parse(addr string) (*Address, error) {
	if strings.IndexByte(addr, cashaddr.Separator) >= 0 {
		return c.parseCash(addr)
	}

	a, err := c.parseLegacy(addr)
	if err == nil {
		return a, nil
	}
	a, cashErr := c.parseCash(addr)
	if cashErr == nil {
		return a, nil
	}

	// Report the CashAddr error for strings that cannot be Base58 but are
	// cased like CashAddr.
	if errors.Is(err, base58.ErrInvalidCharacter) &&
		!errors.Is(cashErr, cashaddr.ErrMixedCase) {

		return nil, cashErr
	}
	return nil, err
}

// Option is a functional option that modifies a CashAddr conversion.
type Option func(*convertOptions)

// convertOptions houses the target of a CashAddr conversion.
type convertOptions struct {
	format string
	net    *Network
}

// WithFormat selects the registered format the address is converted to.  The
// default is FormatCashAddr.
func WithFormat(name string) Option {
	return func(o *convertOptions) {
		o.format = name
	}
}

// WithNetwork selects the network the address is converted to.  The default
// is the network of the input address.
func WithNetwork(net Network) Option {
	return func(o *convertOptions) {
		o.net = &net
	}
}

// encodeCash encodes a hash with the prefix of a format on a network.
func (c *Converter) encodeCash(format string, net Network,
	kind cashaddr.AddressKind, hash []byte) (string, error) {

	if _, ok := c.formats[format]; !ok {
		str := fmt.Sprintf("unknown CashAddr format %q", format)
		return "", makeError(ErrUnknownFormat, str)
	}
	prefix, ok := c.cashPrefixes[prefixInfo{format: format, net: net}]
	if !ok {
		str := fmt.Sprintf("format %s has no prefix on %v", format, net)
		return "", makeError(ErrUnknownFormat, str)
	}
	return cashaddr.Encode(prefix, kind, hash)
}

// ToCashAddrWithOptions converts a legacy or CashAddr address to the
// CashAddr format and network selected by opts.  The result is lowercase and
// always carries its prefix.
func (c *Converter) ToCashAddrWithOptions(addr string, opts ...Option) (string, error) {
	o := convertOptions{format: FormatCashAddr}
	for _, opt := range opts {
		opt(&o)
	}

	a, err := c.Parse(addr)
	if err != nil {
		return "", err
	}
	net := a.Net
	if o.net != nil {
		net = *o.net
	}

	cash, err := c.encodeCash(o.format, net, a.Kind, a.Hash)
	if err != nil {
		return "", err
	}
	log.Tracef("Converted %s address %s to %s", a.Format, addr, cash)
	return cash, nil
}

// ToCashAddr converts a legacy address to the CashAddr format of its network.
// A CashAddr address is returned in canonical form.
func (c *Converter) ToCashAddr(addr string) (string, error) {
	return c.ToCashAddrWithOptions(addr)
}

// ToLegacyAddr converts a CashAddr address in any registered format to a
// legacy address.  A CashAddr address without a prefix is decoded with the
// default network prefix first.  A valid legacy address is returned as is,
// and any other input that fails to decode returns the CashAddr error.
func (c *Converter) ToLegacyAddr(addr string) (string, error) {
	a, err := c.parseCash(addr)
	if err != nil {
		if c.IsLegacyAddr(addr) {
			return addr, nil
		}
		return "", err
	}

	if len(a.Hash) != ripemd160.Size {
		str := fmt.Sprintf("%d byte hash has no legacy encoding",
			len(a.Hash))
		return "", makeError(ErrUnsupportedPayloadLength, str)
	}
	version, err := KindToLegacyVersion(c.params[a.Net], a.Kind)
	if err != nil {
		return "", err
	}

	legacy := base58.CheckEncode(a.Hash, version)
	log.Tracef("Converted %s address %s to %s", a.Format, addr, legacy)
	return legacy, nil
}

// DetectAddrFormat returns the name of the format addr is written in.
func (c *Converter) DetectAddrFormat(addr string) (string, error) {
	a, err := c.Parse(addr)
	if err != nil {
		return "", err
	}
	return a.Format, nil
}

// DetectAddrNetwork returns the network addr belongs to.
func (c *Converter) DetectAddrNetwork(addr string) (Network, error) {
	a, err := c.Parse(addr)
	if err != nil {
		return 0, err
	}
	return a.Net, nil
}

// DetectAddrType returns the kind of script addr pays to.
func (c *Converter) DetectAddrType(addr string) (cashaddr.AddressKind, error) {
	a, err := c.Parse(addr)
	if err != nil {
		return 0, err
	}
	return a.Kind, nil
}

// IsCashAddr returns whether addr is a valid address in any registered
// CashAddr style format.
func (c *Converter) IsCashAddr(addr string) bool {
	_, err := c.parseCash(addr)
	return err == nil
}

// IsLegacyAddr returns whether addr is a valid legacy address.
func (c *Converter) IsLegacyAddr(addr string) bool {
	_, err := c.parseLegacy(addr)
	return err == nil
}

// isNet returns whether addr is a valid address on net.
func (c *Converter) isNet(addr string, net Network) bool {
	got, err := c.DetectAddrNetwork(addr)
	return err == nil && got == net
}

// IsMainnetAddr returns whether addr is a valid mainnet address.
func (c *Converter) IsMainnetAddr(addr string) bool {
	return c.isNet(addr, MainNet)
}

// IsTestnetAddr returns whether addr is a valid testnet address.
func (c *Converter) IsTestnetAddr(addr string) bool {
	return c.isNet(addr, TestNet)
}

// IsRegtestAddr returns whether addr is a valid regtest address.
func (c *Converter) IsRegtestAddr(addr string) bool {
	return c.isNet(addr, RegTest)
}

// IsP2PKHAddr returns whether addr is a valid pay-to-pubkey-hash address.
func (c *Converter) IsP2PKHAddr(addr string) bool {
	kind, err := c.DetectAddrType(addr)
	return err == nil && kind == cashaddr.PubKeyHash
}

// IsP2SHAddr returns whether addr is a valid pay-to-script-hash address.
func (c *Converter) IsP2SHAddr(addr string) bool {
	kind, err := c.DetectAddrType(addr)
	return err == nil && kind == cashaddr.ScriptHash
}

// defaultConverter converts with the built-in network parameters.
var defaultConverter = func() *Converter {
	c, err := New(nil)
	if err != nil {
		panic("invalid built-in network parameters: " + err.Error())
	}
	return c
}()

// ToCashAddr converts a legacy address to the CashAddr format of its network
// using the built-in network parameters.
func ToCashAddr(addr string) (string, error) {
	return defaultConverter.ToCashAddr(addr)
}

// ToLegacyAddr converts a CashAddr address to a legacy address using the
// built-in network parameters.  Addresses without a prefix default to
// mainnet.
func ToLegacyAddr(addr string) (string, error) {
	return defaultConverter.ToLegacyAddr(addr)
}

// ToCashAddrWithOptions converts an address to the CashAddr network selected
// by opts using the built-in network parameters.
func ToCashAddrWithOptions(addr string, opts ...Option) (string, error) {
	return defaultConverter.ToCashAddrWithOptions(addr, opts...)
}
