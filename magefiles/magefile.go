//go:build mage

// Package main contains Mage build targets for the portfolio site.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "portfolio"
	cmdPkg  = "./cmd/portfolio"
)

var Default = Build

// ldflags stamps the version and build time into the binary.
func ldflags() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return fmt.Sprintf("-s -w -X main.version=%s -X main.buildTime=%s",
		version, time.Now().UTC().Format(time.RFC3339))
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-ldflags", ldflags(), "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Vet runs go vet over every package.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Test runs the test suite with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "-count=1", "./...")
}

// Check runs vet and the tests.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Run builds the binary and starts the web server.
func Run() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "serve")
}

// CheckLinks builds the binary and verifies every external link in the content.
func CheckLinks() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "check-links")
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}
