package documents

// Section is one entry of a methodology outline.
type Section struct {
	Title   string `json:"title" bson:"title"`
	Content string `json:"content" bson:"content"`
}

// Outline is a static document template for a methodology.
type Outline struct {
	Title    string             `json:"title" bson:"title"`
	Sections map[string]Section `json:"sections" bson:"sections"`
}

var outlines = map[string]Outline{
	"togaf": {
		Title: "Document d'Architecture TOGAF",
		Sections: map[string]Section{
			"vision":      {Title: "1. Vision d'Architecture", Content: "Définition de la vision et des objectifs stratégiques"},
			"business":    {Title: "2. Architecture Métier", Content: "Processus métier et capacités organisationnelles"},
			"data":        {Title: "3. Architecture de Données", Content: "Modèle de données et flux d'information"},
			"application": {Title: "4. Architecture Applicative", Content: "Applications et interfaces"},
			"technology":  {Title: "5. Architecture Technique", Content: "Infrastructure et plateformes"},
			"migration":   {Title: "6. Plan de Migration", Content: "Roadmap et phases d'implémentation"},
			"governance":  {Title: "7. Gouvernance", Content: "Principes et standards"},
		},
	},
	"archimate": {
		Title: "Document ArchiMate",
		Sections: map[string]Section{
			"motivation":     {Title: "1. Couche Motivation", Content: "Stakeholders, drivers, goals, requirements"},
			"strategy":       {Title: "2. Couche Stratégie", Content: "Ressources, capacités, cours d'action"},
			"business":       {Title: "3. Couche Métier", Content: "Processus, fonctions, services métier"},
			"application":    {Title: "4. Couche Application", Content: "Composants, services, interfaces applicatifs"},
			"technology":     {Title: "5. Couche Technologie", Content: "Nœuds, dispositifs, réseaux"},
			"implementation": {Title: "6. Implémentation & Migration", Content: "Work packages, livrables, plateaux"},
		},
	},
	"custom": {
		Title: "Document d'Architecture Personnalisé",
		Sections: map[string]Section{
			"overview":     {Title: "1. Vue d'Ensemble", Content: "Contexte et objectifs du projet"},
			"requirements": {Title: "2. Exigences", Content: "Fonctionnelles et non-fonctionnelles"},
			"architecture": {Title: "3. Architecture Proposée", Content: "Design et composants"},
			"security":     {Title: "4. Sécurité", Content: "Contrôles et conformité"},
			"deployment":   {Title: "5. Déploiement", Content: "Infrastructure et CI/CD"},
			"operations":   {Title: "6. Opérations", Content: "Monitoring et maintenance"},
		},
	},
}

// OutlineFor returns the static outline for a template type, defaulting to
// the custom methodology for unrecognized types.
func OutlineFor(templateType string) Outline {
	if o, ok := outlines[templateType]; ok {
		return o
	}
	return outlines["custom"]
}
