package productgen

import (
	"fmt"
	"go/token"
)

const (
	// DefaultPackage is the package the generated file declares by default.
	DefaultPackage = "cartesian"

	// DefaultMaxArity is the largest arity generated by default. Type
	// parameters are named A through Z, so it is also the upper bound.
	DefaultMaxArity = 26

	// firstProductArity is the smallest generated ProductN; Product2 and
	// Pairs are written by hand as the base case.
	firstProductArity = 3

	// firstTupleArity is the smallest generated TupleN.
	firstTupleArity = 2
)

// Config controls what Generate renders.
//
//go:generate go run github.com/ecordell/optgen -output zz_generated.options.go . Config
type Config struct {
	// Package is the package clause of the generated file.
	Package string `debugmap:"visible" default:"cartesian"`

	// MaxArity is the largest N for which TupleN and ProductN are generated.
	MaxArity int `debugmap:"visible" default:"26"`
}

// DefaultConfig returns the configuration used for the committed
// zz_generated.product.go.
func DefaultConfig() Config {
	return *NewConfigWithOptionsAndDefaults()
}

// ConfigError is returned by Validate and Generate for an unusable Config.
type ConfigError struct {
	Field  string
	Reason string
}

func (err *ConfigError) Error() string {
	return fmt.Sprintf("invalid generator config: %s %s", err.Field, err.Reason)
}

// Validate reports whether the config can be rendered.
func (c Config) Validate() error {
	if !token.IsIdentifier(c.Package) {
		return &ConfigError{Field: "package", Reason: fmt.Sprintf("%q is not a valid identifier", c.Package)}
	}

	if c.MaxArity < firstProductArity || c.MaxArity > DefaultMaxArity {
		return &ConfigError{
			Field:  "max arity",
			Reason: fmt.Sprintf("must be between %d and %d, got %d", firstProductArity, DefaultMaxArity, c.MaxArity),
		}
	}

	return nil
}
