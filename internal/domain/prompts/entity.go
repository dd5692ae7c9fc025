package prompts

// PromptID identifier type
type PromptID string

// PromptConfig is a persisted custom prompt that overrides the builtin
// template for its analysis type while IsActive is true.
type PromptConfig struct {
	ID             PromptID `json:"id" bson:"id"`
	AnalysisType   string   `json:"analysis_type" bson:"analysis_type"`
	Name           string   `json:"name" bson:"name"`
	PromptTemplate string   `json:"prompt_template" bson:"prompt_template"`
	Language       string   `json:"language" bson:"language"` // fr, en, both
	IsActive       bool     `json:"is_active" bson:"is_active"`
	CreatedAt      string   `json:"created_at" bson:"created_at"`
	UpdatedAt      string   `json:"updated_at" bson:"updated_at"`
}
