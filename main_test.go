package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"magnetic-radius", "magnetic-strength", "center-threshold", "sharpness", "trait", "audio"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestRootCmd_RejectsInvalidConfig(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--magnetic-strength=-1"})
	cmd.SetOut(new(nopWriter))
	cmd.SetErr(new(nopWriter))

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "magnetic strength")
}

type nopWriter struct{}

func (*nopWriter) Write(p []byte) (int, error) { return len(p), nil }
