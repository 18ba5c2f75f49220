// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/btcsuite/bchaddr/addrconv"
	applog "github.com/btcsuite/bchaddr/internal/log"
	"github.com/btcsuite/bchaddr/internal/version"
	"github.com/btcsuite/btcd/btcutil"
	flags "github.com/jessevdk/go-flags"
)

const (
	appName            = "bchaddr"
	defaultLogLevel    = "info"
	defaultLogFilename = "bchaddr.log"
	defaultUniqueCache = 10000
)

var (
	bchaddrHomeDir = btcutil.AppDataDir(appName, false)
)

// config defines the configuration options for bchaddr.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Cash           bool   `short:"c" long:"cash" description:"Convert addresses to CashAddr; this is the default and only conflicts with --legacy"`
	Legacy         bool   `short:"l" long:"legacy" description:"Convert addresses to the legacy format"`
	Format         string `long:"format" description:"Name of the CashAddr style format to convert to, such as SLPAddr"`
	SLP            bool   `long:"slp" description:"Register the SLPAddr format with the simpleledger and slptest prefixes"`
	TestNet3       bool   `long:"testnet" description:"Convert to the test network"`
	RegressionTest bool   `long:"regtest" description:"Convert to the regression test network"`
	Unique         bool   `short:"u" long:"unique" description:"Skip input addresses that were already seen"`
	UniqueCache    uint   `long:"uniquecache" description:"Number of recent input addresses remembered by --unique"`
	DebugLevel     string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	LogDir         string `long:"logdir" description:"Directory to write a rotated log file to"`
	ShowVersion    bool   `short:"V" long:"version" description:"Display version information and exit"`

	// params is the network selected by the network flags.
	params *addrconv.Params
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(bchaddrHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		// Validate debug log level.
		if !applog.ValidLogLevel(debugLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, debugLevel)
		}

		// Change the logging level for all subsystems.
		applog.SetLogLevels(debugLevel)
		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	supported := applog.SupportedSubsystems()
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			str := "the specified debug level contains an invalid " +
				"subsystem/level pair [%v]"
			return fmt.Errorf(str, logLevelPair)
		}

		// Extract the specified subsystem and log level.
		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		// Validate subsystem.
		var known bool
		for _, id := range supported {
			if id == subsysID {
				known = true
				break
			}
		}
		if !known {
			str := "the specified subsystem [%v] is invalid -- " +
				"supported subsystems %v"
			return fmt.Errorf(str, subsysID, supported)
		}

		// Validate log level.
		if !applog.ValidLogLevel(logLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, logLevel)
		}

		applog.SetLogLevel(subsysID, logLevel)
	}

	return nil
}

// errShowedInfo is returned by loadConfig when the requested information was
// printed and the program should exit successfully.
var errShowedInfo = errors.New("information shown")

// loadConfig initializes and parses the config using command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Parse CLI options and overwrite/add any specified options
//  3. Validate the combination of options
//
// The remaining arguments are the addresses to convert.
func loadConfig(args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		DebugLevel:  defaultLogLevel,
		UniqueCache: defaultUniqueCache,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] [address...]"
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if !errors.As(err, &e) || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		fmt.Printf("%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS,
			runtime.GOARCH)
		return nil, nil, errShowedInfo
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", applog.SupportedSubsystems())
		return nil, nil, errShowedInfo
	}

	funcName := "loadConfig"
	usageErr := func(err error) (*config, []string, error) {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "Use bchaddr -h to show usage")
		return nil, nil, err
	}

	// The conversion direction is either CashAddr or legacy.
	if cfg.Cash && cfg.Legacy {
		str := "%s: the --cash and --legacy options can't be used " +
			"together -- choose one"
		return usageErr(fmt.Errorf(str, funcName))
	}
	if cfg.Legacy && cfg.Format != "" {
		str := "%s: the --format option only applies to CashAddr " +
			"conversion"
		return usageErr(fmt.Errorf(str, funcName))
	}

	// Selecting the SLP format registers it.
	if cfg.Format == addrconv.SLPFormat.Name {
		cfg.SLP = true
	}

	// Multiple networks can't be selected simultaneously.
	numNets := 0
	cfg.params = &addrconv.MainNetParams
	if cfg.TestNet3 {
		numNets++
		cfg.params = &addrconv.TestNet3Params
	}
	if cfg.RegressionTest {
		numNets++
		cfg.params = &addrconv.RegressionNetParams
	}
	if numNets > 1 {
		str := "%s: the testnet and regtest params can't be used " +
			"together -- choose one of the two"
		return usageErr(fmt.Errorf(str, funcName))
	}

	if cfg.Unique && cfg.UniqueCache == 0 {
		str := "%s: the --uniquecache option must be positive"
		return usageErr(fmt.Errorf(str, funcName))
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return usageErr(fmt.Errorf("%s: %w", funcName, err))
	}

	if cfg.LogDir != "" {
		cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
	}

	return &cfg, remainingArgs, nil
}
