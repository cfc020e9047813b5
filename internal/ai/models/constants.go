package models

const (
	// === Groq Models ===
	ModelGroqLlama3_8b    = "llama3-8b-8192"
	ModelGroqLlama3_1_8b  = "llama-3.1-8b-instant"
	ModelGroqLlama3_3_70b = "llama-3.3-70b-versatile"
	ModelGroqGptOss120b   = "openai/gpt-oss-120b"
	ModelGroqGptOss20b    = "openai/gpt-oss-20b"

	// === Cerebras Models ===
	ModelCerebrasGptOss120b   = "gpt-oss-120b"
	ModelCerebrasLlama3_3_70b = "llama-3.3-70b"
	ModelCerebrasLlama3_1_8b  = "llama3.1-8b"
)

const (
	// TaskAnalysisModel writes the critical analysis report.
	TaskAnalysisModel = ModelGroqLlama3_8b

	// TaskAnalysisFallbackModel is used when Groq fails and a Cerebras key is configured.
	TaskAnalysisFallbackModel = ModelCerebrasLlama3_1_8b
)

// OpenAI-compatible API roots. Clients append /chat/completions.
const (
	GroqBaseURL     = "https://api.groq.com/openai/v1"
	CerebrasBaseURL = "https://api.cerebras.ai/v1"
)
