//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the faculty project using Mage.
//
// Usage:
//
//	mage build        Compile faculty binary to bin/
//	mage test:all     Run all tests
//	mage test:cover   Run tests with a coverage profile
//	mage lint         Run golangci-lint
//	mage vet          Run go vet
//	mage clean        Remove build artifacts
//	mage install      Install faculty to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "faculty"
	binaryDir  = "bin"
	cmdDir     = "./cmd/faculty"
	versionVar = "github.com/mesh-intelligence/faculty/internal/cli.Version"
)

// ldflags stamps FACULTY_VERSION into the binary when set.
func ldflags() string {
	if v := os.Getenv("FACULTY_VERSION"); v != "" {
		return "-X " + versionVar + "=" + v
	}
	return ""
}

// Build compiles the faculty binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-ldflags", ldflags(), "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
