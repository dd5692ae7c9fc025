package catalog

// Template describes one reference architecture pattern.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Complexity  string `json:"complexity"`
}

// Templates returns the static architecture template catalog.
func Templates() []Template {
	return []Template{
		{
			ID:          "microservices",
			Name:        "Architecture Microservices",
			Description: "Pattern microservices avec API Gateway, Service Mesh, et Event-Driven",
			Category:    "application",
			Complexity:  "high",
		},
		{
			ID:          "serverless",
			Name:        "Architecture Serverless",
			Description: "Functions as a Service avec event triggers",
			Category:    "application",
			Complexity:  "medium",
		},
		{
			ID:          "data-lake",
			Name:        "Data Lake Architecture",
			Description: "Architecture de données pour analytics et ML",
			Category:    "data",
			Complexity:  "high",
		},
		{
			ID:          "hybrid-cloud",
			Name:        "Hybrid Cloud",
			Description: "Architecture hybride On-Prem + Cloud",
			Category:    "infrastructure",
			Complexity:  "high",
		},
		{
			ID:          "zero-trust",
			Name:        "Zero Trust Security",
			Description: "Architecture de sécurité Zero Trust",
			Category:    "security",
			Complexity:  "high",
		},
		{
			ID:          "event-driven",
			Name:        "Event-Driven Architecture",
			Description: "Architecture basée sur les événements avec message brokers",
			Category:    "application",
			Complexity:  "medium",
		},
	}
}
