package main

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) []byte {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())

	return out.Bytes()
}

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()

	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestGolden_SubZ4(t *testing.T) {
	out := runCommand(t, "sub", "testdata/z4.yaml", "--gens", "1")
	newGoldie(t).Assert(t, "sub_z4", out)
}

// A limit below the universe size collapses to the whole universe with
// the capped marker set.
func TestGolden_SubZ4Capped(t *testing.T) {
	out := runCommand(t, "sub", "testdata/z4.yaml", "--gens", "1", "--limit", "2")
	newGoldie(t).Assert(t, "sub_z4_capped", out)
}

func TestGolden_ConZ4(t *testing.T) {
	out := runCommand(t, "con", "testdata/z4.yaml", "--pairs", "0:2")
	newGoldie(t).Assert(t, "con_z4", out)
}

func TestGolden_TctB2(t *testing.T) {
	out := runCommand(t, "tct", "testdata/b2.yaml")
	newGoldie(t).Assert(t, "tct_b2", out)
}

func TestGolden_TctZ4(t *testing.T) {
	out := runCommand(t, "tct", "testdata/z4.yaml")
	newGoldie(t).Assert(t, "tct_z4", out)
}
