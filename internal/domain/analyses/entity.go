package analyses

// AnalysisID identifier type
type AnalysisID string

// Analysis types understood by the builtin prompt set. Unknown values are
// never rejected; they resolve to the recommendation prompt downstream.
const (
	TypeCloudChoice    = "cloud_choice"
	TypeTechComparison = "tech_comparison"
	TypeCostEstimation = "cost_estimation"
	TypeRiskAnalysis   = "risk_analysis"
	TypeRecommendation = "recommendation"
	TypeScoring        = "scoring"
)

// Analysis is a persisted architecture-advisory result. Records are created
// on request and never mutated afterwards.
type Analysis struct {
	ID               AnalysisID     `json:"id" bson:"id"`
	ProjectID        string         `json:"project_id" bson:"project_id"`
	AnalysisType     string         `json:"analysis_type" bson:"analysis_type"`
	InputData        map[string]any `json:"input_data" bson:"input_data"`
	Result           map[string]any `json:"result" bson:"result"`
	AIRecommendation string         `json:"ai_recommendation,omitempty" bson:"ai_recommendation,omitempty"`
	CreatedAt        string         `json:"created_at" bson:"created_at"`
}
