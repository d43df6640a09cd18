package main

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want models.Mode
	}{
		{in: "1", want: models.ModeComparison},
		{in: " comparison ", want: models.ModeComparison},
		{in: "COMPARISON", want: models.ModeComparison},
		{in: "2", want: models.ModeDirect},
		{in: "", want: models.ModeDirect},
		{in: "x", want: models.ModeDirect},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseMode(tt.in); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want []int
	}{
		{name: "empty selects all", in: "", n: 3, want: []int{0, 1, 2}},
		{name: "all keyword", in: "ALL", n: 2, want: []int{0, 1}},
		{name: "list", in: "1, 3", n: 3, want: []int{0, 2}},
		{name: "out of range dropped", in: "0,2,9", n: 3, want: []int{1}},
		{name: "garbage selects all", in: "1,x", n: 2, want: []int{0, 1}},
		{name: "nothing in range", in: "7", n: 2, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseSelection(tt.in, tt.n); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{in: "", want: 10},
		{in: "3", want: 3},
		{in: "0", want: 10},
		{in: "-2", want: 10},
		{in: "many", want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseCount(tt.in); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", n, err)
		}
	}
}

func TestListDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b.docx", "a.PDF", "notes.txt", "image.png")
	if err := os.Mkdir(filepath.Join(dir, "sub.pdf"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	files, err := listDocuments(dir)
	if err != nil {
		t.Fatalf("listDocuments: %v", err)
	}

	want := []string{"a.PDF", "b.docx", "notes.txt"}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("expected %v, got %v", want, files)
	}
}

func TestResolvePlan_CreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	var out bytes.Buffer

	_, ok, err := resolvePlan(runOptions{}, dir, newPrompter(strings.NewReader("\n"), &out))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected nothing to run")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected directory to be created: %v", err)
	}
	if !strings.Contains(out.String(), "not found") {
		t.Errorf("expected creation notice, got %q", out.String())
	}
}

func TestResolvePlan_Interactive(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "A.pdf", "B.pdf", "C.docx")

	input := strings.Join([]string{dir, "1", "1,3", "4"}, "\n") + "\n"
	var out bytes.Buffer

	p, ok, err := resolvePlan(runOptions{}, "unused", newPrompter(strings.NewReader(input), &out))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a plan, output:\n%s", out.String())
	}

	if p.mode != models.ModeComparison {
		t.Errorf("expected comparison, got %s", p.mode)
	}
	want := []string{filepath.Join(dir, "A.pdf"), filepath.Join(dir, "C.docx")}
	if !reflect.DeepEqual(p.paths, want) {
		t.Errorf("expected %v, got %v", want, p.paths)
	}
	if p.count != 4 {
		t.Errorf("expected count 4, got %d", p.count)
	}
	if !strings.Contains(out.String(), "2. B.pdf") {
		t.Errorf("expected numbered listing, got:\n%s", out.String())
	}
}

func TestResolvePlan_FlagsSkipPrompts(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "A.pdf", "B.pdf")

	opts := runOptions{
		dir: dir, dirSet: true,
		mode: "direct", modeSet: true,
		files: "2", filesSet: true,
		count: 0, countSet: true,
	}

	// No input: any prompt would read an empty reply and change the result.
	p, ok, err := resolvePlan(opts, "unused", newPrompter(strings.NewReader(""), &bytes.Buffer{}))
	if err != nil || !ok {
		t.Fatalf("expected a plan, got ok=%v err=%v", ok, err)
	}
	if p.mode != models.ModeDirect {
		t.Errorf("expected direct, got %s", p.mode)
	}
	if !reflect.DeepEqual(p.paths, []string{filepath.Join(dir, "B.pdf")}) {
		t.Errorf("unexpected paths %v", p.paths)
	}
	if p.count != defaultCount {
		t.Errorf("expected default count, got %d", p.count)
	}
}

func TestResolvePlan_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	opts := runOptions{dir: dir, dirSet: true}
	_, ok, err := resolvePlan(opts, "unused", newPrompter(strings.NewReader(""), &out))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected nothing to run")
	}
	if !strings.Contains(out.String(), "No PDF/DOCX/TXT files found") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestBuildRootCmd(t *testing.T) {
	root := buildRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"run", "serve", "mcp"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Errorf("expected subcommand %q, got %v", want, names)
		}
	}

	run, _, err := root.Find([]string{"run"})
	if err != nil {
		t.Fatalf("find run: %v", err)
	}
	for _, flag := range []string{"dir", "mode", "files", "count", "verify-storage"} {
		if run.Flags().Lookup(flag) == nil {
			t.Errorf("expected flag --%s", flag)
		}
	}
}
