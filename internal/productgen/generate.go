// Package productgen renders the fixed-arity tuple and product functions of
// package cartesian. Go has no variadic type parameters, so every arity above
// two is spelled out in generated source.
package productgen

import (
	"bytes"
	"fmt"

	"mvdan.cc/gofumpt/format"
)

// Generate renders and formats the generated source for cfg.
func Generate(cfg Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	data, err := newTemplateData(cfg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := productTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render products: %w", err)
	}

	formatted, err := format.Source(buf.Bytes(), format.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return formatted, nil
}
