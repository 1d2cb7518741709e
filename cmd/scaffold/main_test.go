package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "scaffold ") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestEvalCommand(t *testing.T) {
	out, err := execute(t, "eval", "-e", "6 * 7")
	if err != nil {
		t.Fatal(err)
	}
	if out != "42\n" {
		t.Errorf("output = %q", out)
	}
}

func TestLexCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.arith")
	if err := os.WriteFile(path, []byte("8-1"), 0644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "lex", path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "1:1\t8\n1:2\t-\n1:3\t1\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestCheckCommandRejectsZeroJobs(t *testing.T) {
	if _, err := execute(t, "check", "--jobs", "0", t.TempDir()); err == nil {
		t.Errorf("expected error for --jobs 0")
	}
}
