//go:build mage

package main

import (
	"os/exec"

	"github.com/magefile/mage/sh"
)

// run go test in the root
func goTest(path string, args ...string) error {
	testArgs := append([]string{"test", "-failfast", "-count=1"}, args...)
	return sh.RunV(goCmdForTests(), append(testArgs, path)...)
}

// run a tool pinned in the magefiles module
func goTool(args ...string) error {
	return sh.RunV("go", append([]string{"-C", "magefiles", "run"}, args...)...)
}

// check if a binary exists
func hasBinary(binaryName string) bool {
	_, err := exec.LookPath(binaryName)
	return err == nil
}

// use `richgo` for running tests if it's available
func goCmdForTests() string {
	if hasBinary("richgo") {
		return "richgo"
	}
	return "go"
}
