package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/anthonyraymond/urlescape/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func runWith(args []string, stdin string) (int, string, string) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	code := run(args, strings.NewReader(stdin), stdout, stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		stdin    string
		wantCode int
		wantOut  string
	}{
		{name: "ShouldEscapeArgsStrictByDefault", args: []string{"a b", "ä(x)"}, wantCode: exitOk, wantOut: "a%20b\n%C3%A4(x)\n"},
		{name: "ShouldEscapeArgsLikeUrlEncode", args: []string{"-mode", "likeUrlEncode", "a b", "ä(x)"}, wantCode: exitOk, wantOut: "a+b\n%C3%A4%28x%29\n"},
		{name: "ShouldDecodeArgs", args: []string{"-mode", "form", "-decode", "a+b%21"}, wantCode: exitOk, wantOut: "a b!\n"},
		{name: "ShouldEscapeStdin", args: []string{}, stdin: "line one\nÜ", wantCode: exitOk, wantOut: "line%20one%0A%C3%9C"},
		{name: "ShouldDecodeStdin", args: []string{"-decode"}, stdin: "line%20one%0A%C3%9C", wantCode: exitOk, wantOut: "line one\nÜ"},
		{name: "ShouldFailOnMalformedEscape", args: []string{"-decode", "50%"}, wantCode: exitFailure, wantOut: ""},
		{name: "ShouldFailOnUnknownMode", args: []string{"-mode", "noop", "x"}, wantCode: exitUsageError, wantOut: ""},
		{name: "ShouldFailOnUnknownFlag", args: []string{"-nope"}, wantCode: exitUsageError, wantOut: ""},
		{name: "ShouldFailOnMissingConfigFile", args: []string{"-config", "/does/not/exist.yml", "x"}, wantCode: exitFailure, wantOut: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, _ := runWith(tt.args, tt.stdin)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantOut, out)
		})
	}
}

func TestRun_ShouldUseModeFromConfigFile(t *testing.T) {
	path := testutils.WriteFile(t, "config.yml", "escape:\n  mode: likeUrlEncode\n")
	code, out, _ := runWith([]string{"-config", path, "it's"}, "")
	assert.Equal(t, exitOk, code)
	assert.Equal(t, "it%27s\n", out)
}

func TestRun_ShouldLetFlagOverrideConfigFile(t *testing.T) {
	path := testutils.WriteFile(t, "config.yml", "escape:\n  mode: likeUrlEncode\n")
	code, out, _ := runWith([]string{"-config", path, "-mode", "strict", "it's"}, "")
	assert.Equal(t, exitOk, code)
	assert.Equal(t, "it's\n", out)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRun_ShouldFailWhenOutputCannotBeWritten(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
	}{
		{name: "Args", args: []string{"a b"}},
		{name: "DecodedArgs", args: []string{"-decode", "a%20b"}},
		{name: "Stdin", args: []string{}, stdin: "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stderr := &bytes.Buffer{}
			code := run(tt.args, strings.NewReader(tt.stdin), failingWriter{}, stderr)
			assert.Equal(t, exitFailure, code)
			assert.Contains(t, stderr.String(), "failed to write output")
			assert.Contains(t, stderr.String(), "disk full")
		})
	}
}

func TestRun_ShouldReportErrorsOnStderr(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "UnknownMode", args: []string{"-mode", "noop", "x"}, wantErr: "invalid -mode flag: 'noop': urlescape: unknown escape mode"},
		{name: "MalformedEscape", args: []string{"-decode", "50%"}, wantErr: "argument #1: '%' at offset 2: urlescape: malformed percent escape"},
		{name: "UnknownFlag", args: []string{"-nope"}, wantErr: "flag provided but not defined: -nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, errOut := runWith(tt.args, "")
			assert.Contains(t, errOut, tt.wantErr)
		})
	}
}
