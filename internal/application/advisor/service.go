package advisor

import (
	"context"
	"log"

	"github.com/archadvisor/archadvisor/internal/domain/ai"
)

// FallbackMessage is returned whenever no provider produced text. It is a
// designed UX response, not an error: callers persist it and reply 200.
const FallbackMessage = `⚠️ Service IA non configuré.

Pour activer les recommandations IA, configurez une des options suivantes:

**Option 1 - Groq (GRATUIT):**
1. Créez un compte sur https://console.groq.com
2. Créez une API key
3. Ajoutez GROQ_API_KEY dans vos variables d'environnement

**Option 2 - OpenAI:**
1. Créez une API key sur https://platform.openai.com
2. Configurez OPENAI_API_KEY

Consultez le fichier GUIDE_CLES_API.md pour plus de détails.`

// Config is the provider decision computed once at startup. It is immutable
// for the lifetime of the process; credentials are not re-evaluated per
// request.
type Config struct {
	Provider ai.Provider
	Groq     ai.Client // nil when no Groq credential
	OpenAI   ai.Client // nil when no OpenAI credential
}

// Service drives the recommendation pipeline: resolved prompt in, provider
// text or the fixed fallback out. It never returns an error.
type Service struct {
	cfg Config
}

func New(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// Enabled reports whether any provider was selected at startup.
func (s *Service) Enabled() bool {
	return s.cfg.Provider != ai.ProviderNone
}

// Recommend runs the fallback chain: Groq when selected, then OpenAI as the
// selected provider or as a second chance after a Groq failure, then the
// static message. One attempt per provider, no retries.
func (s *Service) Recommend(ctx context.Context, prompt, contextText string) string {
	full := prompt
	if contextText != "" {
		full = contextText + "\n\n" + prompt
	}

	if s.cfg.Provider == ai.ProviderGroq && s.cfg.Groq != nil {
		text, err := s.cfg.Groq.Complete(ctx, full)
		if err == nil {
			return text
		}
		log.Printf("advisor: groq error: %v", err)
	}

	if s.cfg.OpenAI != nil {
		text, err := s.cfg.OpenAI.Complete(ctx, full)
		if err == nil {
			return text
		}
		log.Printf("advisor: openai error: %v", err)
	}

	return FallbackMessage
}
