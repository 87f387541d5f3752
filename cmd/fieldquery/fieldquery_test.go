package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testLayout = "../../layout/testdata/level.toml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSide(t *testing.T) {
	out, err := run(t, "side", "12", "1", "--layout", testLayout)
	if err != nil {
		t.Fatal(err)
	}
	want := "courtyard\tinside\nplaza\toutside\nspawn\tinside\nexit\toutside\n"
	if d := cmp.Diff(want, out); d != "" {
		t.Error(d)
	}

	out, err = run(t, "side", "13.1", "1", "--field", "spawn", "--layout", testLayout)
	if err != nil {
		t.Fatal(err)
	}
	if out != "spawn\tborder\n" {
		t.Errorf("got %q", out)
	}
}

func TestSideErrors(t *testing.T) {
	if _, err := run(t, "side", "twelve", "1", "--layout", testLayout); err == nil {
		t.Error("accepted a malformed coordinate")
	}
	if _, err := run(t, "side", "1", "1", "--field", "cellar", "--layout", testLayout); err == nil {
		t.Error("accepted an unknown field")
	}
	if _, err := run(t, "side", "1", "1", "--layout", "testdata/missing.toml"); err == nil {
		t.Error("accepted a missing layout")
	}
	if _, err := run(t, "side", "1", "1", "--layout", testLayout, "--log-level", "loud"); err == nil {
		t.Error("accepted an unknown log level")
	}
}

func TestLayoutFromEnvironment(t *testing.T) {
	t.Setenv(layoutEnv, testLayout)
	out, err := run(t, "side", "16.5", "1.5", "--field", "plaza")
	if err != nil {
		t.Fatal(err)
	}
	if out != "plaza\tinside\n" {
		t.Errorf("got %q", out)
	}
}

func TestClosest(t *testing.T) {
	out, err := run(t, "closest", "12", "1", "--field", "spawn", "--layout", testLayout)
	if err != nil {
		t.Fatal(err)
	}
	if out != "spawn\t12\t0.5\t0.5\n" {
		t.Errorf("got %q", out)
	}

	out, err = run(t, "closest", "12", "0", "--field", "spawn", "--outer", "--layout", testLayout)
	if err != nil {
		t.Fatal(err)
	}
	if out != "spawn\t12\t0.25\t0.25\n" {
		t.Errorf("got %q", out)
	}
}

func TestGrid(t *testing.T) {
	out, err := run(t, "grid", "--field", "plaza", "--layout", testLayout)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 16+2 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	ring := strings.Repeat("O", 16)
	if lines[0] != ring || lines[15] != ring {
		t.Errorf("margin rows are not outside:\n%s", out)
	}
	if !strings.Contains(out, "I") || !strings.Contains(out, "?") {
		t.Errorf("grid has no inside or boundary cells:\n%s", out)
	}
	if !strings.HasPrefix(lines[17], "inside ") {
		t.Errorf("got summary %q", lines[17])
	}

	if _, err := run(t, "grid", "--field", "courtyard", "--layout", testLayout); err == nil {
		t.Error("printed a grid for a plain polygon")
	}
}

func TestGridEmptyFieldName(t *testing.T) {
	for _, l := range []string{testLayout, "testdata/empty.toml"} {
		_, err := run(t, "grid", "--field", "", "--layout", l)
		if !errors.Is(err, errNoFieldName) {
			t.Errorf("%s: got %v, want %v", l, err, errNoFieldName)
		}
	}
	if _, err := run(t, "grid", "--field", "plaza", "--layout", "testdata/empty.toml"); err == nil {
		t.Error("found a field in an empty layout")
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--layout", "testdata/missing.toml")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "Version:") {
		t.Errorf("got %q", out)
	}
}
