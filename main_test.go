package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoore914/kotwords-minimal/layout"
)

const samplePuzzle = `{
	"title": "CLI Test",
	"creator": "Tester",
	"grid": [
		[{"solution": "A"}, {"solution": "B"}],
		[{"solution": "C"}, {"solution": "D"}]
	],
	"acrossClues": {"title": "Across", "clues": [
		{"number": "1", "text": {"raw": "Top"}},
		{"number": "3", "text": {"raw": "Bottom"}}
	]},
	"downClues": {"title": "Down", "clues": [
		{"number": "1", "text": {"raw": "Left"}},
		{"number": "2", "text": {"raw": "Right"}}
	]}
}`

func TestRootCommandRendersPDF(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "puzzle.json")
	output := filepath.Join(dir, "out", "puzzle.pdf")
	debug := filepath.Join(dir, "layout.json")
	require.NoError(t, os.WriteFile(input, []byte(samplePuzzle), 0o644))

	cmd := newRootCommand()
	cmd.SetArgs([]string{"--in", input, "--out", output, "--debug", debug})
	require.NoError(t, cmd.Execute())

	pdfData, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdfData[:4]))

	debugData, err := os.ReadFile(debug)
	require.NoError(t, err)
	var ops []layout.Op
	require.NoError(t, json.Unmarshal(debugData, &ops))
	assert.NotEmpty(t, ops)
}

func TestRootCommandMissingInput(t *testing.T) {
	dir := t.TempDir()
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--in", filepath.Join(dir, "missing.json"), "--out", filepath.Join(dir, "out.pdf")})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	assert.Error(t, cmd.Execute())
}
