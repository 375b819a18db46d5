package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ualgebra/algebra"
)

// algebraFile is the YAML shape of an input algebra: a name, the
// universe size and one flat row-major table per operation.
type algebraFile struct {
	Name       string `yaml:"name"`
	Size       int    `yaml:"size"`
	Operations []struct {
		Name  string `yaml:"name"`
		Arity int    `yaml:"arity"`
		Table []int  `yaml:"table"`
	} `yaml:"operations"`
}

// loadAlgebra decodes and validates an algebra description. Table
// validation is delegated to the algebra constructors.
func loadAlgebra(path string) (*algebra.Algebra, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read algebra file: %w", err)
	}
	var file algebraFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	specs := make([]algebra.OpSpec, 0, len(file.Operations))
	for _, op := range file.Operations {
		specs = append(specs, algebra.OpSpec{Name: op.Name, Arity: op.Arity, Table: op.Table})
	}

	a, err := algebra.FromTables(file.Name, file.Size, specs)
	if err != nil {
		return nil, fmt.Errorf("invalid algebra in %s: %w", path, err)
	}

	return a, nil
}

// parsePairs turns "a:b" strings into element pairs.
func parsePairs(raw []string) ([][2]int, error) {
	pairs := make([][2]int, 0, len(raw))
	for _, s := range raw {
		lhs, rhs, ok := strings.Cut(s, ":")
		if !ok {
			return nil, fmt.Errorf("pair %q: want the form a:b", s)
		}
		x, err := strconv.Atoi(strings.TrimSpace(lhs))
		if err != nil {
			return nil, fmt.Errorf("pair %q: %w", s, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(rhs))
		if err != nil {
			return nil, fmt.Errorf("pair %q: %w", s, err)
		}
		pairs = append(pairs, [2]int{x, y})
	}

	return pairs, nil
}

// writeYAML emits a normalized report document.
func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

// pairLists widens fixed pairs for YAML sequence output.
func pairLists(pairs [][2]int) [][]int {
	out := make([][]int, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, []int{p[0], p[1]})
	}

	return out
}
