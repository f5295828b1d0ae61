//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	serverBin  = "./bin/server"
	elocalcBin = "./bin/elocalc"
	configPath = "configs/server.toml"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds server and elocalc binaries
func Build() error {
	mg.Deps(goModDownload)
	if err := sh.Run("go", "build", "-o", serverBin, "./cmd"); err != nil {
		return err
	}
	return sh.Run("go", "build", "-o", elocalcBin, "./cmd/elocalc")
}

// Run starts server
func Run() error {
	mg.Deps(Build)
	return sh.Run(serverBin, "-config", configPath)
}

// Test runs unit tests
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}
