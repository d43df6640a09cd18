package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/reader"
)

const defaultCount = 10

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask prints question and returns the trimmed reply. EOF reads as an empty reply.
func (p *prompter) ask(question string) string {
	fmt.Fprint(p.out, question)
	line, _ := p.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// listDocuments returns the supported files directly inside dir, sorted by name.
func listDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !reader.Supported(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)
	return files, nil
}

// ensureDir reports whether dir exists, creating it when it does not.
func ensureDir(dir string) (bool, error) {
	if _, err := os.Stat(dir); err == nil {
		return true, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return false, nil
}

// parseMode maps "1"/"comparison" to comparison; anything else is direct.
func parseMode(s string) models.Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", string(models.ModeComparison):
		return models.ModeComparison
	default:
		return models.ModeDirect
	}
}

// parseSelection turns "1,3" into zero-based indices below n. Empty input or
// "all" selects everything, as does input that is not a number list.
// Out-of-range numbers are dropped.
func parseSelection(s string, n int) []int {
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}

	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return all
	}

	var picked []int
	for _, part := range strings.Split(s, ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return all
		}
		if idx >= 1 && idx <= n {
			picked = append(picked, idx-1)
		}
	}
	return picked
}

// parseCount returns a positive question count, defaultCount otherwise.
func parseCount(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultCount
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return defaultCount
	}
	return n
}

func selectPaths(dir string, files []string, indices []int) []string {
	paths := make([]string, 0, len(indices))
	for _, i := range indices {
		paths = append(paths, filepath.Join(dir, files[i]))
	}
	return paths
}
