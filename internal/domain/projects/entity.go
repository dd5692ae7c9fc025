package projects

// ProjectID identifier type
type ProjectID string

// Aggregate Root: Project
type Project struct {
	ID                    ProjectID `json:"id" bson:"id"`
	Name                  string    `json:"name" bson:"name"`
	Description           string    `json:"description" bson:"description"`
	ClientName            string    `json:"client_name,omitempty" bson:"client_name,omitempty"`
	Industry              string    `json:"industry,omitempty" bson:"industry,omitempty"`
	BudgetRange           string    `json:"budget_range,omitempty" bson:"budget_range,omitempty"`
	Timeline              string    `json:"timeline,omitempty" bson:"timeline,omitempty"`
	CurrentInfrastructure string    `json:"current_infrastructure,omitempty" bson:"current_infrastructure,omitempty"`
	Requirements          []string  `json:"requirements" bson:"requirements"`
	Status                string    `json:"status" bson:"status"`
	CreatedAt             string    `json:"created_at" bson:"created_at"`
	UpdatedAt             string    `json:"updated_at" bson:"updated_at"`
}
