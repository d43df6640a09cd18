package executor

import (
	"strings"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
)

// absent reports whether a metadata value carries no information.
func absent(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "n/a", "na", "unknown":
		return true
	}
	return false
}

// SingleLocation formats page and section as "Page 3 / Intro".
func SingleLocation(m models.Metadata) string {
	return location(m, " / ")
}

// ComparisonLocation formats page and section as "Page 12, Intro".
func ComparisonLocation(m models.Metadata) string {
	return location(m, ", ")
}

func location(m models.Metadata, sep string) string {
	page := strings.TrimSpace(m.Page)
	section := strings.TrimSpace(m.Section)

	var parts []string
	if !absent(page) {
		parts = append(parts, "Page "+page)
	}
	if !absent(section) {
		parts = append(parts, section)
	}
	return strings.Join(parts, sep)
}
