// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version houses the version information of the bchaddr utility.
package version

import (
	"fmt"
	"strings"
)

const (
	// preReleaseAlphabet defines the characters allowed in the pre-release
	// portion of a semantic version string.
	preReleaseAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

	// buildAlphabet defines the characters allowed in the build metadata
	// portion of a semantic version string.
	buildAlphabet = preReleaseAlphabet + "."
)

// These constants define the application version and follow the semantic
// versioning 2.0.0 spec (http://semver.org/).
const (
	Major uint = 0
	Minor uint = 1
	Patch uint = 0
)

var (
	// PreRelease may be overridden during the build process with:
	// '-ldflags "-X github.com/btcsuite/bchaddr/internal/version.PreRelease=foo"'
	PreRelease = "beta"

	// BuildMetadata may be overridden during the build process with:
	// '-ldflags "-X github.com/btcsuite/bchaddr/internal/version.BuildMetadata=foo"'
	BuildMetadata = ""
)

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec.  Characters that are not allowed in the
// pre-release or build metadata are dropped.
func String() string {
	version := fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
	if preRelease := keepOnly(PreRelease, preReleaseAlphabet); preRelease != "" {
		version += "-" + preRelease
	}
	if build := keepOnly(BuildMetadata, buildAlphabet); build != "" {
		version += "+" + build
	}
	return version
}

// keepOnly returns str without the characters that are not in alphabet.
func keepOnly(str, alphabet string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(alphabet, r) {
			return r
		}
		return -1
	}, str)
}
