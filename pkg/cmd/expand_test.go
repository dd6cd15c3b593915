package cmd

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/authzed/cartesian/internal/logging"
	"github.com/authzed/cartesian/pkg/cartesian"
)

func defaultExpandConfig() ExpandConfig {
	return *NewExpandConfigWithOptionsAndDefaults()
}

func TestExpandText(t *testing.T) {
	testCases := []struct {
		name     string
		options  []ExpandConfigOption
		args     []string
		expected string
	}{
		{
			name:     "ranges",
			args:     []string{"0..2", "0..2"},
			expected: "0 0\n0 1\n1 0\n1 1\n",
		},
		{
			name:     "empty second sequence",
			args:     []string{"0..3", "0..0"},
			expected: "",
		},
		{
			name:     "lists and inclusive ranges",
			args:     []string{"x,y", "1..=2"},
			expected: "x 1\nx 2\ny 1\ny 2\n",
		},
		{
			name:     "three sequences",
			args:     []string{"0..2", "0..2", "0..2"},
			expected: "0 0 0\n0 0 1\n0 1 0\n0 1 1\n1 0 0\n1 0 1\n1 1 0\n1 1 1\n",
		},
		{
			name:     "limit stops every level",
			options:  []ExpandConfigOption{WithLimit(3)},
			args:     []string{"0..2", "0..2", "0..2"},
			expected: "0 0 0\n0 0 1\n0 1 0\n",
		},
		{
			name:     "limit above total",
			options:  []ExpandConfigOption{WithLimit(100)},
			args:     []string{"0..2", "a"},
			expected: "0 a\n1 a\n",
		},
		{
			name:     "distinct skips repeated values",
			options:  []ExpandConfigOption{WithDistinct(true)},
			args:     []string{"0..3", "0..3"},
			expected: "0 1\n0 2\n1 0\n1 2\n2 0\n2 1\n",
		},
		{
			name: "distinct with limit counts only printed tuples",
			options:  []ExpandConfigOption{WithDistinct(true), WithLimit(2)},
			args:     []string{"0..3", "0..3"},
			expected: "0 1\n0 2\n",
		},
		{
			name:     "separator",
			options:  []ExpandConfigOption{WithSeparator(",")},
			args:     []string{"a,b", "c"},
			expected: "a,c\nb,c\n",
		},
		{
			name:     "count",
			options:  []ExpandConfigOption{WithCount(true)},
			args:     []string{"0..10", "0..10", "0..=4"},
			expected: "500\n",
		},
		{
			name: "count with distinct",
			options:  []ExpandConfigOption{WithCount(true), WithDistinct(true)},
			args:     []string{"0..3", "0..3"},
			expected: "6\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := NewExpandConfigWithOptionsAndDefaults(tc.options...)

			var buf bytes.Buffer
			require.NoError(t, config.Expand(&buf, tc.args))
			require.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestExpandConfigDefaultsMatchFlags(t *testing.T) {
	config := defaultExpandConfig()

	cmd := NewExpandCommand("cartesian", &ExpandConfig{})
	var flagConfig ExpandConfig
	RegisterExpandFlags(cmd, &flagConfig)

	require.Equal(t, flagConfig, config)
	require.Equal(t, OutputText, config.Output)
	require.Equal(t, " ", config.Separator)
	require.Contains(t, config.DebugMap(), "Output")
}

func TestExpandWarnsOnEmptySequence(t *testing.T) {
	originalLogger := logging.Logger
	t.Cleanup(func() {
		logging.SetGlobalLogger(originalLogger)
	})

	var logs bytes.Buffer
	logging.SetGlobalLogger(zerolog.New(&logs).Level(zerolog.DebugLevel))

	config := defaultExpandConfig()
	var buf bytes.Buffer
	require.NoError(t, config.Expand(&buf, []string{"0..3", "2..2"}))
	require.Empty(t, buf.String())
	require.Contains(t, logs.String(), `"level":"warn"`)
	require.Contains(t, logs.String(), `"sequence":"2..2"`)
	require.Contains(t, logs.String(), `"position":1`)
	require.Contains(t, logs.String(), `"Output":`)

	logs.Reset()
	require.NoError(t, config.Expand(&buf, []string{"0..3", "a"}))
	require.NotContains(t, logs.String(), `"level":"warn"`)
}

func TestExpandJSON(t *testing.T) {
	config := defaultExpandConfig()
	config.Output = OutputJSON

	var buf bytes.Buffer
	require.NoError(t, config.Expand(&buf, []string{"a,b", "0..2"}))

	var rows [][]string
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var row []string
		require.NoError(t, jsoniter.Unmarshal(scanner.Bytes(), &row))
		rows = append(rows, row)
	}
	require.NoError(t, scanner.Err())
	require.Equal(t, [][]string{{"a", "0"}, {"a", "1"}, {"b", "0"}, {"b", "1"}}, rows)
}

func TestExpandYAML(t *testing.T) {
	config := defaultExpandConfig()
	config.Output = OutputYAML

	var buf bytes.Buffer
	require.NoError(t, config.Expand(&buf, []string{"a,b", "0..2"}))

	var rows [][]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rows))
	require.Equal(t, [][]string{{"a", "0"}, {"a", "1"}, {"b", "0"}, {"b", "1"}}, rows)

	buf.Reset()
	require.NoError(t, config.Expand(&buf, []string{"a,b", ""}))
	require.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestExpandErrors(t *testing.T) {
	t.Run("too few sequences", func(t *testing.T) {
		for _, args := range [][]string{nil, {"0..3"}} {
			config := defaultExpandConfig()

			var buf bytes.Buffer
			err := config.Expand(&buf, args)
			require.ErrorIs(t, err, cartesian.ErrTooFewSequences)
			require.Empty(t, buf.String())
		}
	})

	t.Run("invalid sequence", func(t *testing.T) {
		config := defaultExpandConfig()

		var buf bytes.Buffer
		require.ErrorContains(t, config.Expand(&buf, []string{"0..2", "0..z"}), "invalid range")
		require.Empty(t, buf.String())
	})

	t.Run("unknown output", func(t *testing.T) {
		config := defaultExpandConfig()
		config.Output = "xml"

		var buf bytes.Buffer
		require.ErrorContains(t, config.Expand(&buf, []string{"0..2", "0..2"}), `unknown output format "xml"`)
	})
}
