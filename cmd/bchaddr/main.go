// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/bchaddr/addrconv"
	applog "github.com/btcsuite/bchaddr/internal/log"
)

// log is the logger of the bchaddr utility itself.
var log = applog.BchaLog

// errConversionFailed is returned when at least one address could not be
// converted.
var errConversionFailed = errors.New("one or more addresses failed to convert")

// batchConverter converts a stream of addresses in the direction and to the
// format and network selected by the configuration.
type batchConverter struct {
	conv     *addrconv.Converter
	toLegacy bool
	opts     []addrconv.Option
	filter   *seenFilter
}

// newBatchConverter returns a batchConverter for the passed configuration.
func newBatchConverter(cfg *config) (*batchConverter, error) {
	convCfg := addrconv.Config{Params: cfg.params}
	if cfg.SLP {
		convCfg.Formats = append(convCfg.Formats, addrconv.SLPFormat)
	}
	conv, err := addrconv.New(&convCfg)
	if err != nil {
		return nil, err
	}

	b := &batchConverter{
		conv:     conv,
		toLegacy: cfg.Legacy,
	}
	if cfg.Format != "" {
		b.opts = append(b.opts, addrconv.WithFormat(cfg.Format))
	}
	if cfg.TestNet3 || cfg.RegressionTest {
		b.opts = append(b.opts, addrconv.WithNetwork(cfg.params.Net))
	}
	if cfg.Unique {
		b.filter = newSeenFilter(cfg.UniqueCache)
	}
	return b, nil
}

// convert converts a single address.
func (b *batchConverter) convert(addr string) (string, error) {
	if b.toLegacy {
		return b.conv.ToLegacyAddr(addr)
	}
	return b.conv.ToCashAddrWithOptions(addr, b.opts...)
}

// run converts every address read from next, writing converted addresses to
// stdout and failures to stderr.  It returns the number of converted and
// failed addresses.
func (b *batchConverter) run(next func() (string, bool), stdout,
	stderr io.Writer) (uint64, uint64) {

	var converted, failed uint64
	for {
		addr, ok := next()
		if !ok {
			break
		}
		addr = strings.TrimSpace(addr)
		if addr == "" {
			continue
		}
		if b.filter != nil && b.filter.Seen(addr) {
			continue
		}

		result, err := b.convert(addr)
		if err != nil {
			log.Debugf("Failed to convert %s: %v", addr, err)
			fmt.Fprintf(stderr, "%s: %v\n", addr, err)
			failed++
			continue
		}
		fmt.Fprintln(stdout, result)
		converted++
	}
	return converted, failed
}

// argsSource returns an address source over the passed arguments.
func argsSource(args []string) func() (string, bool) {
	return func() (string, bool) {
		if len(args) == 0 {
			return "", false
		}
		addr := args[0]
		args = args[1:]
		return addr, true
	}
}

// scannerSource returns an address source that yields one line at a time
// from r.  A read error is logged and ends the source.
func scannerSource(r io.Reader) func() (string, bool) {
	scanner := bufio.NewScanner(r)
	return func() (string, bool) {
		if scanner.Scan() {
			return scanner.Text(), true
		}
		if err := scanner.Err(); err != nil {
			log.Errorf("Failed to read input: %v", err)
		}
		return "", false
	}
}

// convertAll converts the addresses in args, or the lines of stdin when there
// are no arguments, and returns errConversionFailed when any of them failed.
func convertAll(cfg *config, args []string, stdin io.Reader, stdout,
	stderr io.Writer) error {

	b, err := newBatchConverter(cfg)
	if err != nil {
		return err
	}

	next := argsSource(args)
	if len(args) == 0 {
		next = scannerSource(stdin)
	}
	converted, failed := b.run(next, stdout, stderr)

	log.Debugf("Converted %d %s, %d failed", converted,
		applog.PickNoun(converted, "address", "addresses"), failed)
	if failed > 0 {
		return errConversionFailed
	}
	return nil
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	// Load configuration and parse command line.
	cfg, args, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	// Write logs to a rotated file as well when requested.
	if cfg.LogDir != "" {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := applog.InitLogRotator(logFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		defer applog.CloseLogRotator()
	}

	return convertAll(cfg, args, os.Stdin, os.Stdout, os.Stderr)
}

func main() {
	if err := realMain(); err != nil {
		if errors.Is(err, errShowedInfo) {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
