//go:build mage

package main

var Aliases = map[string]any{
	"test":     Test.Unit,
	"generate": Gen.Go,
	"lint":     Lint.All,
}
