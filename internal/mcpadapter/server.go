package mcpadapter

import "github.com/modelcontextprotocol/go-sdk/mcp"

const (
	ToolGenerate           = "generate_test_cases"
	ToolGenerateComparison = "generate_comparison_test_cases"
	ToolEvaluate           = "evaluate_answer"
)

// NewServer builds an MCP server exposing generation and grading as tools.
func NewServer(gen QuestionGenerator, eval AnswerEvaluator) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "rag-evaluator",
			Version: "1.0.0",
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolGenerate,
		Description: "Generate question and expected-answer pairs grounded in one document",
	}, NewGenerateHandler(gen))

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolGenerateComparison,
		Description: "Generate questions that require comparing two or more documents",
	}, NewGenerateComparisonHandler(gen))

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolEvaluate,
		Description: "Grade an answer against the expected answer",
	}, NewEvaluateHandler(eval))

	return server
}
