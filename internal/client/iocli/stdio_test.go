package iocli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestStdioPrintDoesNotPanic(t *testing.T) {
	stdio := NewStdio()
	assert.NotPanics(t, func() {
		stdio.Println("hello")
		stdio.Printf("%s %d\n", "hello", 42)
	})
}

func TestStdioReadInput(t *testing.T) {
	// Replace stdin with a pipe carrying one line
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	origStdin := os.Stdin
	os.Stdin = r
	t.Cleanup(func() { os.Stdin = origStdin })

	_, err = w.WriteString("  some input  \n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	stdio := NewStdio()
	input, err := stdio.ReadInput("prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "some input", input)
}
