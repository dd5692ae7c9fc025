package prompt

import (
	"encoding/json"
	"strings"
)

// Placeholder filled with the serialized input data of a request.
const Placeholder = "{input_data}"

// Builtin prompt templates per analysis type. The recommendation template
// doubles as the default for unrecognized types.
var builtins = map[string]string{
	"cloud_choice": `Analysez les besoins suivants et recommandez le meilleur choix d'infrastructure:
        - Cloud Public (AWS, Azure, GCP)
        - On-Premise
        - Hybride

        Données du projet: {input_data}

        Fournissez:
        1. Recommandation principale avec justification
        2. Avantages et inconvénients
        3. Facteurs de décision clés
        4. Estimation de coûts approximative
        5. Risques à considérer`,

	"tech_comparison": `Comparez les options technologiques suivantes pour ce projet:

        Données: {input_data}

        Fournissez une analyse comparative incluant:
        1. Tableau comparatif (fonctionnalités, coûts, scalabilité, support)
        2. Recommandation avec score pondéré
        3. Use cases optimaux pour chaque option
        4. Courbe d'apprentissage et ressources requises
        5. Roadmap de migration si applicable`,

	"cost_estimation": `Estimez les coûts d'architecture pour:

        Données: {input_data}

        Fournissez:
        1. Coûts initiaux (setup, licences, infrastructure)
        2. Coûts récurrents mensuels/annuels
        3. Coûts cachés potentiels
        4. TCO sur 3 ans
        5. Optimisations possibles
        6. Comparaison avec alternatives`,

	"risk_analysis": `Analysez les risques de sécurité et techniques pour:

        Données: {input_data}

        Fournissez:
        1. Matrice des risques (probabilité x impact)
        2. Risques de sécurité (OWASP Top 10, conformité)
        3. Risques techniques (scalabilité, disponibilité)
        4. Risques business (vendor lock-in, coûts)
        5. Plan de mitigation pour chaque risque majeur
        6. Recommandations de conformité (PCI-DSS, GDPR, SOC2)`,

	"recommendation": `Générez une recommandation d'architecture complète pour:

        Données: {input_data}

        Fournissez:
        1. Architecture recommandée (haute disponibilité, scalable)
        2. Stack technologique détaillée
        3. Patterns d'architecture (microservices, event-driven, etc.)
        4. Diagramme conceptuel (description textuelle)
        5. Phases d'implémentation
        6. KPIs de succès`,

	"scoring": `Évaluez l'architecture suivante et attribuez un score sur 100 pour chaque catégorie:

        Description de l'architecture: {input_data}

        Catégories à évaluer (avec leur pondération):
        - Scalabilité (20%): Capacité à supporter la croissance
        - Sécurité (25%): Protection des données et conformité
        - Coût-efficacité (15%): Optimisation des ressources
        - Performance (20%): Temps de réponse et throughput
        - Maintenabilité (10%): Facilité de maintenance et évolution
        - Fiabilité (10%): Disponibilité et tolérance aux pannes

        Pour chaque catégorie, fournissez:
        1. Score /100
        2. Points forts
        3. Points à améliorer
        4. Recommandations concrètes

        Terminez par un score global pondéré et une conclusion.`,
}

// Builtin resolves the builtin template for an analysis type. Unrecognized
// types fall back to the recommendation template; the lookup never fails.
func Builtin(analysisType string) string {
	if t, ok := builtins[analysisType]; ok {
		return t
	}
	return builtins["recommendation"]
}

// Substitute fills the input-data placeholder with a deterministic JSON
// rendering of the request payload (encoding/json sorts map keys). A
// template without the placeholder is returned unchanged; that is a
// documented quirk of custom prompts, not an error.
func Substitute(template string, inputData map[string]any) string {
	b, err := json.Marshal(inputData)
	if err != nil {
		// map[string]any from a decoded JSON body always marshals;
		// keep the template rather than fail the request.
		return template
	}
	return strings.ReplaceAll(template, Placeholder, string(b))
}

// TypeInfo describes one builtin analysis type for the prompts listing.
type TypeInfo struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DefaultTypes lists the builtin analysis types exposed by GET /api/ai-prompts.
func DefaultTypes() []TypeInfo {
	return []TypeInfo{
		{Type: "cloud_choice", Name: "Choix Cloud", Description: "Analyse Cloud/On-Prem/Hybride"},
		{Type: "tech_comparison", Name: "Comparaison Tech", Description: "Comparaison de technologies"},
		{Type: "cost_estimation", Name: "Estimation Coûts", Description: "Analyse TCO et coûts"},
		{Type: "risk_analysis", Name: "Analyse Risques", Description: "Risques sécurité et business"},
		{Type: "recommendation", Name: "Recommandation", Description: "Recommandation d'architecture complète"},
		{Type: "scoring", Name: "Scoring Architecture", Description: "Évaluation et notation d'architecture"},
	}
}
