package ai

// Provider identifies which outbound AI backend the process uses.
type Provider string

const (
	ProviderGroq   Provider = "groq"
	ProviderOpenAI Provider = "openai"
	ProviderNone   Provider = "none"
)

// SelectProvider picks the backend once at startup, by credential priority:
// Groq (free tier) first, OpenAI (paid) second, none otherwise. The absence
// of any provider is a valid terminal state, not an error; callers must
// degrade to the static fallback message.
func SelectProvider(groqKey, openaiKey string) Provider {
	if groqKey != "" {
		return ProviderGroq
	}
	if openaiKey != "" {
		return ProviderOpenAI
	}
	return ProviderNone
}
