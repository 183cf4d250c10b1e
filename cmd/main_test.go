package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   int
		stderr string
	}{
		{name: "success", err: nil, want: 0},
		{name: "interrupted", err: exitCode(130), want: 130},
		{name: "wrapped exit code", err: fmt.Errorf("serve: %w", exitCode(143)), want: 143},
		{name: "failure", err: errors.New("load config: bad"), want: 1, stderr: "Error: load config: bad\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.Equal(t, tt.want, status(tt.err, &buf))
			assert.Equal(t, tt.stderr, buf.String())
		})
	}
}

func TestRootCommandLeavesErrorsToMain(t *testing.T) {
	// cobra would otherwise print "Error: exit status 130" on an interrupt.
	assert.True(t, rootCmd.SilenceErrors)
	assert.True(t, rootCmd.SilenceUsage)
}
