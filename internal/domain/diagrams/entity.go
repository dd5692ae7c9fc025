package diagrams

// DiagramID identifier type
type DiagramID string

// Diagram is a persisted textual diagram description (Mermaid source).
type Diagram struct {
	ID           DiagramID `json:"id" bson:"id"`
	ProjectID    string    `json:"project_id" bson:"project_id"`
	DiagramType  string    `json:"diagram_type" bson:"diagram_type"`
	Title        string    `json:"title" bson:"title"`
	Description  string    `json:"description" bson:"description"`
	MermaidCode  string    `json:"mermaid_code" bson:"mermaid_code"`
	PlantUMLCode string    `json:"plantuml_code,omitempty" bson:"plantuml_code,omitempty"`
	CreatedAt    string    `json:"created_at" bson:"created_at"`
}
