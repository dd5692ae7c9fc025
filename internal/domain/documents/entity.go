package documents

// DocumentID identifier type
type DocumentID string

// Document is a persisted architecture document: either a static section
// outline for a methodology, or AI-generated long-form content.
type Document struct {
	ID           DocumentID `json:"id" bson:"id"`
	ProjectID    string     `json:"project_id" bson:"project_id"`
	TemplateType string     `json:"template_type" bson:"template_type"`
	Title        string     `json:"title" bson:"title"`
	Content      any        `json:"content" bson:"content"`
	CreatedAt    string     `json:"created_at" bson:"created_at"`
}
