package productgen

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/authzed/cartesian/internal/bugs"
)

const productSource = `// Code generated by cartesian gen. DO NOT EDIT.

package {{ .Package }}

import (
	"fmt"
	"iter"
)
{{- range .Arities }}

// Tuple{{ .N }} holds one value from each of {{ .N }} sequences, in argument order.
type Tuple{{ .N }}[{{ typeParams .Types }}] struct {
{{- range $i, $t := .Types }}
	V{{ inc $i }} {{ $t }}
{{- end }}
}

// Unpack returns the values of the tuple in order.
func (t Tuple{{ .N }}[{{ list .Types }}]) Unpack() ({{ list .Types }}) {
	return {{ fields "t" .N }}
}

// String formats the tuple as a parenthesized, comma separated list.
func (t Tuple{{ .N }}[{{ list .Types }}]) String() string {
	return fmt.Sprintf("({{ verbs .N }})", {{ fields "t" .N }})
}
{{- if .Prepend }}

// Prepend{{ .N }} returns a Tuple{{ .Next }} holding head followed by the values of tail.
func Prepend{{ .N }}[Head, {{ typeParams .Types }}](head Head, tail Tuple{{ .N }}[{{ list .Types }}]) Tuple{{ .Next }}[Head, {{ list .Types }}] {
	return Tuple{{ .Next }}[Head, {{ list .Types }}]{V1: head, {{ shifted "tail" .N }}}
}
{{- end }}
{{- if .Product }}

// Product{{ .N }} returns the Cartesian product of {{ .N }} sequences. The first
// sequence varies the slowest and the last the fastest; every sequence but the
// first is ranged over again each time the level before it advances.
func Product{{ .N }}[{{ typeParams .Types }}]({{ seqParams . }}) iter.Seq[Tuple{{ .N }}[{{ list .Types }}]] {
	tail := {{ tailCall . }}
	return func(yield func(Tuple{{ .N }}[{{ list .Types }}]) bool) {
		for head, rest := range Product2({{ index .Params 0 }}, tail) {
			if !yield(Prepend{{ .Prev }}(head, rest)) {
				return
			}
		}
	}
}
{{- end }}
{{- end }}
`

var productTemplate = template.Must(template.New("product").Funcs(template.FuncMap{
	"inc":        func(i int) int { return i + 1 },
	"list":       func(xs []string) string { return strings.Join(xs, ", ") },
	"typeParams": func(xs []string) string { return strings.Join(xs, ", ") + " any" },
	"fields":     fields,
	"verbs":      func(n int) string { return strings.TrimSuffix(strings.Repeat("%v, ", n), ", ") },
	"shifted":    shifted,
	"seqParams":  seqParams,
	"tailCall":   tailCall,
}).Parse(productSource))

// arity is the template input for everything declared for a single N.
type arity struct {
	N      int
	Types  []string
	Params []string

	// Prepend is set when PrependN is emitted; its result is a TupleN+1,
	// which must also be generated.
	Prepend bool

	// Product is set when ProductN is emitted.
	Product bool
}

func (a arity) Next() int { return a.N + 1 }

func (a arity) Prev() int { return a.N - 1 }

type templateData struct {
	Package string
	Arities []arity
}

func newTemplateData(cfg Config) (templateData, error) {
	data := templateData{Package: cfg.Package}
	for n := firstTupleArity; n <= cfg.MaxArity; n++ {
		types, err := letters(n, 'A')
		if err != nil {
			return templateData{}, err
		}
		params, err := letters(n, 'a')
		if err != nil {
			return templateData{}, err
		}

		data.Arities = append(data.Arities, arity{
			N:       n,
			Types:   types,
			Params:  params,
			Prepend: n < cfg.MaxArity,
			Product: n >= firstProductArity,
		})
	}
	return data, nil
}

// letters returns the first n letters of the alphabet starting at first.
func letters(n int, first rune) ([]string, error) {
	if n > DefaultMaxArity {
		return nil, bugs.MustBugf("cannot name %d type parameters with single letters", n)
	}

	names := make([]string, n)
	for i := range names {
		names[i] = string(first + rune(i))
	}
	return names, nil
}

// fields renders "recv.V1, recv.V2, ..." for n fields.
func fields(recv string, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("%s.V%d", recv, i+1)
	}
	return strings.Join(parts, ", ")
}

// shifted renders the keyed fields of a tuple one wider than recv, with recv's
// fields moved one position right.
func shifted(recv string, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("V%d: %s.V%d", i+2, recv, i+1)
	}
	return strings.Join(parts, ", ")
}

func seqParams(a arity) string {
	parts := make([]string, a.N)
	for i := range parts {
		parts[i] = fmt.Sprintf("%s iter.Seq[%s]", a.Params[i], a.Types[i])
	}
	return strings.Join(parts, ", ")
}

// tailCall renders the product of every sequence but the first, which is the
// inner level of ProductN.
func tailCall(a arity) string {
	rest := strings.Join(a.Params[1:], ", ")
	if a.N == firstProductArity {
		return fmt.Sprintf("Pairs(%s)", rest)
	}
	return fmt.Sprintf("Product%d(%s)", a.N-1, rest)
}
