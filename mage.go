//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	jetOutput              = "internal/storage/sqlite/gen"
	sqliteRecordsLocation  = "records.sqlite"
	binary                 = "./bin/groupelo"
	groupeloConfigLocation = "configs/groupelo.toml"
)

const (
	toolsDir     = "tools/"
	toolsModfile = toolsDir + "go.mod"
	toolsBinDir  = toolsDir + "bin/"
	lintTool     = toolsBinDir + "golangci-lint"
	jetTool      = toolsBinDir + "jet"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds the groupelo binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-o", binary, "./cmd/groupelo")
}

// Test runs unit and CLI tests
func Test() error {
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "test", "./...")
}

// GenJet regenerates the record store models from a freshly migrated database
func GenJet() error {
	mg.Deps(Build, buildJetTool)
	_, err := sh.Exec(map[string]string{
		"GROUPELO_STORAGE__SQLITE_FILE": sqliteRecordsLocation,
	}, nil, os.Stderr, binary, "-config", groupeloConfigLocation, "-import", os.DevNull)
	if err != nil {
		return err
	}
	return sh.Run(jetTool, "-source", "sqlite", "-dsn", sqliteRecordsLocation, "-path", jetOutput)
}

func buildJetTool() error {
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-modfile", toolsModfile, "-o", jetTool, "github.com/go-jet/jet/v2/cmd/jet")
}

func Lint() error {
	mg.Deps(buildLintTool)
	return sh.Run(lintTool, "run", "./...")
}

func buildLintTool() error {
	return sh.Run(
		"go", "build",
		"-modfile", toolsModfile,
		"-o", lintTool,
		"github.com/golangci/golangci-lint/cmd/golangci-lint",
	)
}
