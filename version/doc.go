// Package version reports the build version of errkit binaries.
//
// Version, commit and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/errkit/version.Version=1.0.0" ./cmd/errkit
package version
