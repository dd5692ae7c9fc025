package catalog

// CloudProvider is one entry of the static cloud comparison matrix.
type CloudProvider struct {
	Name         string   `json:"name"`
	Logo         string   `json:"logo"`
	Strengths    []string `json:"strengths"`
	Weaknesses   []string `json:"weaknesses"`
	BestFor      []string `json:"best_for"`
	PricingModel string   `json:"pricing_model"`
	Regions      int      `json:"regions"`
	Services     int      `json:"services"`
}

// CloudComparison is the payload of GET /api/cloud-comparison.
type CloudComparison struct {
	Providers          []CloudProvider `json:"providers"`
	ComparisonCriteria []string        `json:"comparison_criteria"`
}

// Clouds returns the static provider comparison data.
func Clouds() CloudComparison {
	return CloudComparison{
		Providers: []CloudProvider{
			{
				Name:         "AWS",
				Logo:         "aws",
				Strengths:    []string{"Leader du marché", "Services matures", "Grande communauté"},
				Weaknesses:   []string{"Tarification complexe", "Courbe d'apprentissage"},
				BestFor:      []string{"Startups", "Enterprise", "Big Data"},
				PricingModel: "Pay-as-you-go",
				Regions:      31,
				Services:     200,
			},
			{
				Name:         "Azure",
				Logo:         "azure",
				Strengths:    []string{"Intégration Microsoft", "Hybride excellent", "Enterprise ready"},
				Weaknesses:   []string{"Documentation parfois confuse", "Portail complexe"},
				BestFor:      []string{"Entreprises Microsoft", "Hybride", "Secteur public"},
				PricingModel: "Pay-as-you-go + Reserved",
				Regions:      60,
				Services:     150,
			},
			{
				Name:         "GCP",
				Logo:         "gcp",
				Strengths:    []string{"ML/AI leader", "Kubernetes natif", "Réseau performant"},
				Weaknesses:   []string{"Moins de services", "Support limité"},
				BestFor:      []string{"Data Analytics", "ML/AI", "Containerisation"},
				PricingModel: "Pay-as-you-go + Committed",
				Regions:      35,
				Services:     100,
			},
		},
		ComparisonCriteria: []string{
			"compute", "storage", "database", "networking",
			"security", "ml_ai", "serverless", "pricing",
		},
	}
}
