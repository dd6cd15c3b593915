package cmd

import (
	"fmt"
	"io"
	"iter"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/jzelinskie/stringz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/authzed/cartesian/internal/logging"
	"github.com/authzed/cartesian/pkg/cartesian"
)

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// ExpandConfig is the configuration for the expand command.
//
//go:generate go run github.com/ecordell/optgen -output zz_generated.options.go . ExpandConfig
type ExpandConfig struct {
	// Limit stops the expansion after this many tuples; zero means no limit.
	Limit uint `debugmap:"visible"`

	// Distinct skips tuples in which any value appears more than once.
	Distinct bool `debugmap:"visible"`

	// Count prints only the number of tuples instead of the tuples.
	Count bool `debugmap:"visible"`

	// Output is one of OutputText, OutputJSON or OutputYAML.
	Output string `debugmap:"visible" default:"text"`

	// Separator joins the values of a tuple in text output.
	Separator string `debugmap:"visible" default:" "`
}

func RegisterExpandFlags(cmd *cobra.Command, config *ExpandConfig) {
	cmd.Flags().UintVar(&config.Limit, "limit", 0, "stop after this many tuples (0 for no limit)")
	cmd.Flags().BoolVar(&config.Distinct, "distinct", false, "skip tuples that contain a repeated value")
	cmd.Flags().BoolVar(&config.Count, "count", false, "print the number of tuples instead of the tuples")
	cmd.Flags().StringVar(&config.Output, "output", OutputText, `output format ("text", "json", "yaml")`)
	cmd.Flags().StringVar(&config.Separator, "separator", " ", "separator between values in text output")
}

func NewExpandCommand(programName string, config *ExpandConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "expand SEQUENCE SEQUENCE [SEQUENCE...]",
		Short: "print the cartesian product of sequences",
		Long: "Prints the cartesian product of two or more sequences, one tuple per line.\n\n" +
			"A sequence is a half-open integer range (0..3), an inclusive range (0..=3)\n" +
			"or a comma separated list of values (a,b,c). An argument containing a comma\n" +
			"is always a list, so a,0..3 is the two values \"a\" and \"0..3\".",
		Example: fmt.Sprintf("  %[1]s expand 0..2 0..2\n  %[1]s expand --output json x,y 1..=3", programName),
		PreRunE: DefaultPreRunE(programName),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Expand(cmd.OutOrStdout(), args)
		},
	}
}

// Expand writes the product of the sequences described by args to w.
func (c *ExpandConfig) Expand(w io.Writer, args []string) error {
	out, err := newTupleWriter(c.Output, w, c.Separator)
	if err != nil {
		return err
	}

	seqs, err := ParseSequences(args)
	if err != nil {
		return err
	}

	product, err := cartesian.Product(seqs...)
	if err != nil {
		return fmt.Errorf("cannot expand %d sequence(s): %w", len(args), err)
	}

	for i, seq := range seqs {
		if isEmpty(seq) {
			logging.Warn().Int("position", i).Str("sequence", args[i]).Msg("sequence is empty, the product has no tuples")
		}
	}

	logging.Debug().Fields(c.DebugMap()).Int("sequences", len(seqs)).Msg("expanding product")

	var count uint
	for tuple := range product {
		if c.Distinct && len(stringz.Dedup(tuple)) != len(tuple) {
			continue
		}

		count++
		if !c.Count {
			if err := out.Write(tuple); err != nil {
				return fmt.Errorf("failed to write tuple %d: %w", count, err)
			}
		}

		if c.Limit > 0 && count >= c.Limit {
			logging.Debug().Uint("limit", c.Limit).Msg("limit reached")
			break
		}
	}

	logging.Debug().Uint("tuples", count).Msg("expanded product")

	if c.Count {
		_, err := fmt.Fprintln(w, count)
		return err
	}
	return out.Flush()
}

func isEmpty(seq iter.Seq[string]) bool {
	for range seq {
		return false
	}
	return true
}

type tupleWriter interface {
	Write(tuple []string) error
	Flush() error
}

func newTupleWriter(format string, w io.Writer, separator string) (tupleWriter, error) {
	switch format {
	case OutputText:
		return &textWriter{w: w, separator: separator}, nil
	case OutputJSON:
		return &jsonWriter{enc: jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)}, nil
	case OutputYAML:
		return &yamlWriter{w: w, tuples: [][]string{}}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

type textWriter struct {
	w         io.Writer
	separator string
}

func (tw *textWriter) Write(tuple []string) error {
	_, err := fmt.Fprintln(tw.w, strings.Join(tuple, tw.separator))
	return err
}

func (tw *textWriter) Flush() error { return nil }

// jsonWriter writes every tuple as a JSON array on its own line.
type jsonWriter struct {
	enc *jsoniter.Encoder
}

func (jw *jsonWriter) Write(tuple []string) error { return jw.enc.Encode(tuple) }

func (jw *jsonWriter) Flush() error { return nil }

// yamlWriter buffers every tuple and writes a single YAML document on Flush.
type yamlWriter struct {
	w      io.Writer
	tuples [][]string
}

func (yw *yamlWriter) Write(tuple []string) error {
	yw.tuples = append(yw.tuples, tuple)
	return nil
}

func (yw *yamlWriter) Flush() error {
	enc := yaml.NewEncoder(yw.w)
	enc.SetIndent(2)
	if err := enc.Encode(yw.tuples); err != nil {
		return err
	}
	return enc.Close()
}
