//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Lint mg.Namespace

// All Run all linters
func (l Lint) All() error {
	mg.Deps(Gen{}.Check)
	mg.Deps(l.Gofumpt, l.Vet, l.Vulncheck)
	return nil
}

// Gofumpt Run gofumpt
func (Lint) Gofumpt() error {
	fmt.Println("formatting go")
	return goTool("mvdan.cc/gofumpt", "-l", "-w", "..")
}

// Vet Run go vet
func (Lint) Vet() error {
	fmt.Println("running go vet")
	return sh.RunV("go", "vet", "./...")
}

// Vulncheck Run vulncheck
func (Lint) Vulncheck() error {
	fmt.Println("running vulncheck")
	return goTool("golang.org/x/vuln/cmd/govulncheck", "-C", "..", "./...")
}
