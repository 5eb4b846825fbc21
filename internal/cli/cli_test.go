package cli

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/gridsolve/internal/app"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
		want *app.Config
	}{
		{
			name: "input only uses defaults",
			args: []string{"input.txt"},
			want: &app.Config{InputPath: "input.txt", LogFormat: "text", LogLevel: "info"},
		},
		{
			name: "day and part",
			args: []string{"-day", "4", "-part", "2", "input.txt"},
			want: &app.Config{InputPath: "input.txt", Day: 4, Part: 2, LogFormat: "text", LogLevel: "info"},
		},
		{
			name: "long config flag",
			args: []string{"-config", "runs/"},
			want: &app.Config{ManifestPath: "runs/", LogFormat: "text", LogLevel: "info"},
		},
		{
			name: "short config flag with input",
			args: []string{"-c", "run.hcl", "input.txt"},
			want: &app.Config{InputPath: "input.txt", ManifestPath: "run.hcl", LogFormat: "text", LogLevel: "info"},
		},
		{
			name: "long config wins over shorthand",
			args: []string{"-config", "a.hcl", "-c", "b.hcl"},
			want: &app.Config{ManifestPath: "a.hcl", LogFormat: "text", LogLevel: "info"},
		},
		{
			name: "log settings are case insensitive",
			args: []string{"-log-format", "JSON", "-log-level", "Debug", "input.txt"},
			want: &app.Config{InputPath: "input.txt", LogFormat: "json", LogLevel: "debug"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			got, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			// --- Assert ---
			require.NoError(t, err)
			assert.False(t, shouldExit)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_ShouldExit(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{"-h"}, {}, {"-day", "4"}} {
		out := &bytes.Buffer{}

		cfg, shouldExit, err := Parse(args, out)

		require.NoError(t, err, "args %v", args)
		assert.True(t, shouldExit, "args %v", args)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"unknown flag", []string{"-nope"}, "flag provided but not defined: -nope"},
		{"non numeric day", []string{"-day", "four", "in.txt"}, "invalid value"},
		{"bad log format", []string{"-log-format", "xml", "in.txt"}, "invalid log-format"},
		{"bad log level", []string{"-log-level", "trace", "in.txt"}, "invalid log-level"},
		{"part out of range", []string{"-part", "3", "in.txt"}, "part must be 0, 1 or 2"},
		{"negative day", []string{"-day", "-1", "in.txt"}, "day must not be negative"},
		{"two inputs", []string{"a.txt", "b.txt"}, "expected at most one INPUT_PATH"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := Parse(tc.args, &bytes.Buffer{})

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
