package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
)

func newTable(headers []string, w io.Writer) *tablewriter.Table {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		Behavior: tw.Behavior{TrimSpace: tw.Off},
	}
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader(headers),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}

// Render writes the summary as a markdown table: one row per verdict,
// then the total and the accuracy.
func Render(w io.Writer, s Summary) error {
	table := newTable([]string{"Verdict", "Count"}, w)

	for _, v := range models.Verdicts {
		if err := table.Append([]string{string(v), strconv.Itoa(s.Counts[v])}); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}
	if err := table.Append([]string{"Total", strconv.Itoa(s.Total)}); err != nil {
		return fmt.Errorf("failed to append row: %w", err)
	}
	if err := table.Append([]string{"Accuracy", fmt.Sprintf("%.1f%%", s.Accuracy*100)}); err != nil {
		return fmt.Errorf("failed to append row: %w", err)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	return nil
}
