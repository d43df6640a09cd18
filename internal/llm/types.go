package llm

type LLMRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
	// JSONMode asks the backend to constrain its output to a JSON document.
	JSONMode bool
}

type LLMResponse struct {
	Content    string
	StopReason string
}

// DefaultTemperature is sent with every generation and evaluation request.
const DefaultTemperature = 0.2
