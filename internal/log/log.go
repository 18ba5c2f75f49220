// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/btcsuite/bchaddr/addrconv"
	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"
)

// logWriter implements an io.Writer that outputs to the console writer and,
// once InitLogRotator has been called, to the log rotator.
type logWriter struct {
	mtx     sync.Mutex
	console io.Writer
	rotator *rotator.Rotator
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	w.console.Write(p)
	if w.rotator != nil {
		w.rotator.Write(p)
	}
	return len(p), nil
}

// Loggers per subsystem.  A single backend logger is created and all subsystem
// loggers created from it will write to the backend.  When adding new
// subsystems, add the subsystem logger variable here and to the
// subsystemLoggers map.
var (
	// writer receives the output of the backend.  Log lines go to standard
	// error so they never mix with converted addresses.
	writer = &logWriter{console: os.Stderr}

	// backendLog is the logging backend used to create all subsystem loggers.
	backendLog = btclog.NewBackend(writer)

	AcnvLog = backendLog.Logger("ACNV")
	BchaLog = backendLog.Logger("BCHA")
)

// Initialize package-global logger variables.
func init() {
	addrconv.UseLogger(AcnvLog)
}

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]btclog.Logger{
	"ACNV": AcnvLog,
	"BCHA": BchaLog,
}

// InitLogRotator initializes the logging rotator to write logs to logFile and
// create roll files in the same directory.  It must be called before logging
// to a file is expected and the rotator must be closed with CloseLogRotator.
func InitLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	err := os.MkdirAll(logDir, 0700)
	if err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}

	writer.mtx.Lock()
	writer.rotator = r
	writer.mtx.Unlock()
	return nil
}

// CloseLogRotator flushes and closes the log rotator when one is in use.
func CloseLogRotator() {
	writer.mtx.Lock()
	defer writer.mtx.Unlock()

	if writer.rotator != nil {
		writer.rotator.Close()
		writer.rotator = nil
	}
}

// SetConsoleWriter replaces the console output of all subsystem loggers.
func SetConsoleWriter(w io.Writer) {
	writer.mtx.Lock()
	writer.console = w
	writer.mtx.Unlock()
}

// SupportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func SupportedSubsystems() []string {
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}
	sort.Strings(subsystems)
	return subsystems
}

// SetLogLevel sets the logging level for provided subsystem.  Invalid
// subsystems are ignored.
func SetLogLevel(subsystemID string, logLevel string) {
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return
	}

	// Defaults to info if the log level is invalid.
	level, _ := btclog.LevelFromString(logLevel)
	logger.SetLevel(level)
}

// SetLogLevels sets the log level for all subsystem loggers to the passed
// level.
func SetLogLevels(logLevel string) {
	for subsystemID := range subsystemLoggers {
		SetLogLevel(subsystemID, logLevel)
	}
}

// ValidLogLevel returns whether or not logLevel is a valid debug log level.
func ValidLogLevel(logLevel string) bool {
	_, ok := btclog.LevelFromString(logLevel)
	return ok
}

// PickNoun returns the singular or plural form of a noun depending
// on the count n.
func PickNoun(n uint64, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
