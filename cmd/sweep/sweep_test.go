package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const salesCSV = "region,units,price,note\n" +
	"north,10,2.5,ok\n" +
	"south,,3,\n" +
	"north,10,2.5,ok\n" +
	"east,4,,late\n"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestConvertCleansAndProjects(t *testing.T) {
	input := writeInput(t, "Sales.CSV", salesCSV)
	outDir := filepath.Join(t.TempDir(), "exports")

	out, err := run(t, "convert", input, "--to", "csv", "--dedupe", "--fill-missing", "--columns", "region,units", "--out", outDir)
	if err != nil {
		t.Fatalf("convert err = %v\n%s", err, out)
	}
	if !strings.Contains(out, "removed 1 duplicate rows of 4") || !strings.Contains(out, "filled 2 missing cells") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	got, err := os.ReadFile(filepath.Join(outDir, "Sales.csv"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if want := "region,units\nnorth,10\nsouth,7\neast,4\n"; string(got) != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestConvertToExcel(t *testing.T) {
	input := writeInput(t, "sales.csv", salesCSV)
	outDir := t.TempDir()

	if out, err := run(t, "convert", input, "--to", "excel", "--out", outDir); err != nil {
		t.Fatalf("convert err = %v\n%s", err, out)
	}

	out, err := run(t, "preview", filepath.Join(outDir, "sales.xlsx"), "--rows", "1")
	if err != nil {
		t.Fatalf("preview err = %v\n%s", err, out)
	}
	if !strings.Contains(out, "4 rows x 4 columns") {
		t.Fatalf("unexpected preview:\n%s", out)
	}
}

func TestPreview(t *testing.T) {
	input := writeInput(t, "sales.csv", salesCSV)

	out, err := run(t, "preview", input, "--rows", "2")
	if err != nil {
		t.Fatalf("preview err = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "4 rows x 4 columns") {
		t.Fatalf("unexpected summary line: %q", lines[0])
	}
	if fields := strings.Fields(lines[2]); strings.Join(fields, " ") != "text numeric numeric text" {
		t.Fatalf("unexpected kinds line: %q", lines[2])
	}
	if fields := strings.Fields(lines[4]); strings.Join(fields, " ") != "south 3" {
		t.Fatalf("unexpected second row: %q", lines[4])
	}
}

func TestCommandErrors(t *testing.T) {
	input := writeInput(t, "sales.csv", salesCSV)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unsupported input", args: []string{"preview", writeInput(t, "notes.txt", "x")}, want: "unsupported file format"},
		{name: "unknown target", args: []string{"convert", input, "--to", "json"}, want: "--to"},
		{name: "missing target", args: []string{"convert", input}, want: "to"},
		{name: "unknown column", args: []string{"convert", input, "--to", "csv", "--columns", "nope", "--out", t.TempDir()}, want: "unknown column"},
		{name: "bad rows", args: []string{"preview", input, "--rows", "0"}, want: "--rows"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want it to mention %q", err, tc.want)
			}
		})
	}
}
