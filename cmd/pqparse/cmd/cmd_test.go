/*
 * pqparse
 *
 * Copyright 2026 The pqparse authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package cmd

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

/*
captureStdout runs fn with os.Stdout redirected into a pipe and returns
everything fn wrote to it, mirroring krotik-ecal's pattern of redirecting
output into a buffer for CLI assertions (format_test.go redirects
flag.CommandLine's output the same way).
*/
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("could not create pipe: %v", err)
	}

	original := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = original }()

	fn()

	w.Close()
	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func runRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	if stdin != "" {
		r, w, err := os.Pipe()
		if err != nil {
			t.Fatalf("could not create stdin pipe: %v", err)
		}
		w.WriteString(stdin)
		w.Close()

		originalStdin := os.Stdin
		os.Stdin = r
		defer func() { os.Stdin = originalStdin }()
	}

	var runErr error
	out := captureStdout(t, func() {
		rootCmd.SetArgs(args)
		runErr = rootCmd.Execute()
	})
	return out, runErr
}

func TestLexCommand_TokenizesInlineSource(t *testing.T) {
	out, err := runRoot(t, "1 + 2", "lex")
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	if !strings.Contains(out, "NumericLiteral") {
		t.Fatalf("expected output to mention the literal token, got %q", out)
	}
}

func TestParseCommand_ReprintsNormalizedSource(t *testing.T) {
	out, err := runRoot(t, "1+2", "parse")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if strings.TrimSpace(out) != "1 + 2" {
		t.Fatalf("got %q, want %q", out, "1 + 2")
	}
}

func TestInspectCommand_ReportsScope(t *testing.T) {
	out, err := runRoot(t, "let x = 1 in x", "inspect", "--line", "0", "--column", "13")
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if !strings.Contains(out, "x") {
		t.Fatalf("expected scope output to mention x, got %q", out)
	}
}

func TestVersionCommand_PrintsVersion(t *testing.T) {
	out, err := runRoot(t, "", "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "pqparse version") {
		t.Fatalf("expected version banner, got %q", out)
	}
}
