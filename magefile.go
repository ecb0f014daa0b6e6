//go:build mage

package main

import (
	"fmt"
	"time"

	"github.com/magefile/mage/sh"
)

const (
	modulePath = "github.com/dkoosis/lcat"
	binPath    = "./bin/lcat"
)

// Default target - build the binary
var Default = Build

// Build builds the lcat binary with version metadata.
func Build() error {
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binPath, "./cmd/lcat")
}

// Install installs lcat into GOBIN with version metadata.
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/lcat")
}

// Test runs the test suite with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet across the module.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("bin")
}

func ldflags() string {
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty", "--match=v*")
	if err != nil {
		version = "dev"
	}
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		commit = "unknown"
	}
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf("-s -w -X '%s/internal/version.Version=%s' -X '%s/internal/version.CommitHash=%s' -X '%s/internal/version.BuildDate=%s'",
		modulePath, version, modulePath, commit, modulePath, date)
}
