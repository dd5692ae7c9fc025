package prompt

import (
	"fmt"
	"strings"
)

// DiagramPrompt builds the generation request for the AI diagram endpoint.
func DiagramPrompt(title, description, diagramType string) string {
	return fmt.Sprintf(`Générez un diagramme Mermaid pour:
    Titre: %s
    Description: %s
    Type: %s

    Retournez UNIQUEMENT le code Mermaid valide, sans explications.`, title, description, diagramType)
}

// DocumentPrompt builds the long-form generation request for the AI
// document endpoint from the stored project fields.
func DocumentPrompt(templateType, name, description, industry, infrastructure string, requirements []string) string {
	if industry == "" {
		industry = "Non spécifié"
	}
	if infrastructure == "" {
		infrastructure = "Non spécifié"
	}
	return fmt.Sprintf(`Générez un document d'architecture complet de type %s pour le projet suivant:

    Nom: %s
    Description: %s
    Industrie: %s
    Infrastructure actuelle: %s
    Exigences: [%s]

    Générez le contenu pour chaque section du template %s.
    Format: Markdown structuré avec titres, sous-titres, listes et tableaux.`,
		templateType, name, description, industry, infrastructure,
		strings.Join(requirements, ", "), strings.ToUpper(templateType))
}
