package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/replicantgen/internal/testutil/testlog"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("REPLICANTGEN_LOG_LEVEL", "disabled")
	var out, errOut bytes.Buffer
	code := run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestToneBurstClientEndToEnd(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()

	code, out, errOut := runCLI(t, "toneburst-client", dir, "--type", "whalesong", "--sequence", "AB", "--count", "3")
	if code != 0 {
		t.Fatalf("exit=%d stderr=%q", code, errOut)
	}
	path := filepath.Join(dir, "whalesongClientConfig.json")
	if !strings.HasPrefix(out, path+"\t") {
		t.Fatalf("unexpected stdout: %q", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var raw map[string]map[string][]struct {
		Sequence []byte `json:"sequence"`
		Length   int    `json:"length"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("expected a single variant key, got %v", raw)
	}
	for _, key := range []string{"addSequences", "removeSequences"} {
		list := raw["whalesong"][key]
		if len(list) != 1 || string(list[0].Sequence) != "AB" || list[0].Length != 3 {
			t.Fatalf("unexpected %s: %+v", key, list)
		}
	}
}

func TestToneBurstClientShortFlagsAndFilename(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()

	code, _, errOut := runCLI(t, "toneburst-client", "-t", "whalesong", "-s", "AB", "-c", "3", "-f", "edge.json", dir)
	if code != 0 {
		t.Fatalf("exit=%d stderr=%q", code, errOut)
	}
	if names := listDir(t, dir); len(names) != 1 || names[0] != "edge.json" {
		t.Fatalf("unexpected files: %v", names)
	}
}

func TestToneBurstClientRepeatRunsAreByteIdentical(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	args := []string{"toneburst-client", dir, "--type", "whalesong", "--sequence", "AB", "--count", "3"}

	var outputs [][]byte
	for i := 0; i < 2; i++ {
		if code, _, errOut := runCLI(t, args...); code != 0 {
			t.Fatalf("run %d: exit=%d stderr=%q", i, code, errOut)
		}
		data, err := os.ReadFile(filepath.Join(dir, "whalesongClientConfig.json"))
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		outputs = append(outputs, data)
	}
	if !bytes.Equal(outputs[0], outputs[1]) {
		t.Fatalf("repeat runs differ")
	}
	if names := listDir(t, dir); len(names) != 1 {
		t.Fatalf("expected one file, found %v", names)
	}
}

func TestToneBurstClientFailuresWriteNothing(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"path is file", []string{file, "--type", "whalesong", "--sequence", "AB", "--count", "3"}, "not a directory"},
		{"count too large", []string{dir, "--type", "whalesong", "--sequence", "AB", "--count", "70000"}, "70000"},
		{"count zero", []string{dir, "--type", "whalesong", "--sequence", "AB", "--count", "0"}, "count out of range"},
		{"unknown type", []string{dir, "--type", "unknown", "--sequence", "AB", "--count", "3"}, "unknown"},
		{"empty type", []string{dir, "--sequence", "AB", "--count", "3"}, "type is required"},
		{"empty sequence", []string{dir, "--type", "whalesong", "--count", "3"}, "sequence is empty"},
	}
	for _, tc := range cases {
		code, _, errOut := runCLI(t, append([]string{"toneburst-client"}, tc.args...)...)
		if code != 1 {
			t.Fatalf("%s: exit=%d stderr=%q", tc.name, code, errOut)
		}
		if !strings.Contains(errOut, tc.want) {
			t.Fatalf("%s: stderr %q missing %q", tc.name, errOut, tc.want)
		}
	}
	if names := listDir(t, dir); len(names) != 1 || names[0] != "not-a-dir" {
		t.Fatalf("failed runs wrote files: %v", names)
	}
}

func TestUsageErrors(t *testing.T) {
	testlog.Start(t)
	if code, _, _ := runCLI(t); code != 2 {
		t.Fatalf("expected exit 2 without args, got %d", code)
	}
	if code, _, errOut := runCLI(t, "polish-client"); code != 2 || !strings.Contains(errOut, "unknown command") {
		t.Fatalf("unexpected result for unknown command: %d %q", code, errOut)
	}
	if code, _, _ := runCLI(t, "toneburst-client", "a", "b"); code != 2 {
		t.Fatalf("expected exit 2 for extra positional args, got %d", code)
	}
	if code, _, _ := runCLI(t, "toneburst-client", "--count", "many"); code != 2 {
		t.Fatalf("expected exit 2 for malformed flag, got %d", code)
	}
	if code, out, _ := runCLI(t, "help"); code != 0 || !strings.Contains(out, "toneburst-client") {
		t.Fatalf("unexpected help output: %d %q", code, out)
	}
}

func TestReplicantClient(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()

	if code, _, errOut := runCLI(t, "replicant-client", dir); code != 0 {
		t.Fatalf("exit=%d stderr=%q", code, errOut)
	}
	missing := filepath.Join(dir, "polish.json")
	code, _, errOut := runCLI(t, "replicant-client", dir, "--polish", missing)
	if code != 1 || !strings.Contains(errOut, missing) {
		t.Fatalf("unexpected result: %d %q", code, errOut)
	}
	if names := listDir(t, dir); len(names) != 0 {
		t.Fatalf("replicant-client wrote files: %v", names)
	}
}

func TestBatchFromTemplate(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	manifest := filepath.Join(dir, "manifest.toml")

	if code, _, errOut := runCLI(t, "template", "--kind", "manifest", "--output", manifest); code != 0 {
		t.Fatalf("template: exit=%d stderr=%q", code, errOut)
	}
	if code, _, _ := runCLI(t, "batch", manifest); code != 1 {
		t.Fatalf("expected missing output dir to fail without --mkdir")
	}
	code, out, errOut := runCLI(t, "batch", "--mkdir", manifest)
	if code != 0 {
		t.Fatalf("batch: exit=%d stderr=%q", code, errOut)
	}
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 2 {
		t.Fatalf("expected two written configs, got %q", out)
	}
	names := listDir(t, filepath.Join(dir, "configs"))
	if len(names) != 2 {
		t.Fatalf("unexpected batch output: %v", names)
	}
}

func TestBatchValidatesEveryEntryFirst(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	manifest := filepath.Join(dir, "m.yaml")
	body := `toneburst:
  - type: whalesong
    sequence: AB
    count: 3
  - type: whalesong
    sequence: AB
    count: 70000
    filename: second.json
`
	if err := os.WriteFile(manifest, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	code, _, errOut := runCLI(t, "batch", manifest)
	if code != 1 || !strings.Contains(errOut, "toneburst[1]") {
		t.Fatalf("unexpected result: %d %q", code, errOut)
	}
	if names := listDir(t, dir); len(names) != 1 {
		t.Fatalf("batch wrote files despite invalid entry: %v", names)
	}
}

func TestVariants(t *testing.T) {
	testlog.Start(t)
	code, out, _ := runCLI(t, "variants")
	if code != 0 || !strings.HasPrefix(out, "whalesong\t") {
		t.Fatalf("unexpected variants output: %d %q", code, out)
	}
}
