package report

import (
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
	"github.com/rs/zerolog"
)

// Summary is the verdict tally of one run.
type Summary struct {
	Total    int
	Counts   map[models.Verdict]int
	Accuracy float64
}

type Aggregator struct {
	logger *zerolog.Logger
}

func NewAggregator(logger *zerolog.Logger) *Aggregator {
	return &Aggregator{logger: logger}
}

// Aggregate counts verdicts. Accuracy is Fully Correct over all records,
// zero for an empty run.
func (a *Aggregator) Aggregate(records []models.ResultRecord) Summary {
	summary := Summary{
		Total:  len(records),
		Counts: make(map[models.Verdict]int, len(models.Verdicts)),
	}

	for _, r := range records {
		summary.Counts[r.Status]++
	}

	if summary.Total > 0 {
		summary.Accuracy = float64(summary.Counts[models.VerdictFullyCorrect]) / float64(summary.Total)
	}

	a.logger.
		Info().
		Int("total", summary.Total).
		Int("fully_correct", summary.Counts[models.VerdictFullyCorrect]).
		Float64("accuracy", summary.Accuracy).
		Msg("aggregation complete")
	return summary
}
