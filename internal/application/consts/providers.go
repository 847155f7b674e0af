package consts

// Provider identifies which LLM backend parses resumes.
type Provider string

const (
	ProviderGroq      Provider = "groq"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGemini    Provider = "gemini"
)

var Providers = []Provider{ProviderGroq, ProviderOpenAI, ProviderAnthropic, ProviderGemini}

const (
	DefaultProvider = ProviderGroq
	DefaultModel    = "llama-3.3-70b-versatile"
)

// Estimated job levels, junior to principal.
const (
	LevelIntern = "Intern"
	LevelAMTS   = "AMTS"
	LevelMTS    = "MTS"
	LevelSMTS   = "SMTS"
	LevelLMTS   = "LMTS"
	LevelPMTS   = "PMTS"
)

const (
	// MinResumeTextLen is the minimum extracted text length worth sending to a model.
	// Shorter documents are almost always image-based scans.
	MinResumeTextLen = 50

	// PromptTextLimit caps how much resume text goes into the prompt.
	PromptTextLimit = 8000
)
