//go:build mage

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Gen mg.Namespace

const generatedProducts = "pkg/cartesian/zz_generated.product.go"

// Go Run go codegen
func (Gen) Go() error {
	fmt.Println("generating go")
	return sh.RunV("go", "generate", "./...")
}

// Check Fail if the committed products differ from the generator output
func (Gen) Check() error {
	committed, err := os.ReadFile(generatedProducts)
	if err != nil {
		return err
	}

	generated, err := sh.Output("go", "run", "./cmd/cartesian", "gen", "--log-level", "warn")
	if err != nil {
		return err
	}

	if !bytes.Equal(bytes.TrimSpace(committed), bytes.TrimSpace([]byte(generated))) {
		return fmt.Errorf("%s is out of date, run `mage generate`", generatedProducts)
	}
	return nil
}
