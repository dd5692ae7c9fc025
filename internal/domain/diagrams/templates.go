package diagrams

import (
	"fmt"
	"strings"
)

// Static Mermaid skeletons keyed by diagram type. Unknown types resolve to
// the flowchart skeleton; the lookup never fails.
var templates = map[string]string{
	"flowchart": `flowchart TD
    A[Début] --> B{Validation}
    B -->|Valide| C[Traitement]
    B -->|Invalide| D[Erreur]
    C --> E[Stockage]
    E --> F[Notification]
    F --> G[Fin]
    D --> G`,
	"sequence": `sequenceDiagram
    participant U as Utilisateur
    participant W as Web App
    participant A as API Gateway
    participant S as Service
    participant D as Database
    U->>W: Requête
    W->>A: API Call
    A->>S: Process
    S->>D: Query
    D-->>S: Response
    S-->>A: Result
    A-->>W: JSON
    W-->>U: UI Update`,
	"class": `classDiagram
    class User {
        +String id
        +String email
        +login()
    }
    class Project {
        +String id
        +String name
        +analyze()
    }
    User --> Project`,
	"state": `stateDiagram-v2
    [*] --> Draft
    Draft --> Review
    Review --> Approved
    Review --> Rejected
    Approved --> Published
    Published --> [*]`,
	"er": `erDiagram
    USER ||--o{ PROJECT : creates
    PROJECT ||--|{ ANALYSIS : contains
    USER {
        string id
        string email
    }
    PROJECT {
        string id
        string name
    }`,
	"journey": `journey
    title User Journey
    section Discovery
      Visit Site: 5: User
      Create Account: 3: User
    section Usage
      Create Project: 4: User
      Analyze: 5: User`,
	"gantt": `gantt
    title Project Timeline
    dateFormat YYYY-MM-DD
    section Phase 1
    Task 1: a1, 2024-01-01, 30d
    Task 2: after a1, 20d`,
	"pie": `pie showData
    title Distribution
    "Category A": 45
    "Category B": 30
    "Category C": 25`,
	"mindmap": `mindmap
    root((Main Topic))
        Branch 1
            Sub 1
            Sub 2
        Branch 2
            Sub 3`,
	"timeline": `timeline
    title Timeline
    section 2024
        Q1: Task 1
        Q2: Task 2`,
	"c4_context": `C4Context
    title {title}
    Person(user, "User", "System user")
    System(system, "{title}", "{description}")
    System_Ext(ext, "External", "External services")
    Rel(user, system, "Uses")
    Rel(system, ext, "Integrates")`,
	"c4_container": `C4Container
    title {title}
    Container(web, "Web App", "React", "UI")
    Container(api, "API", "Go", "Backend")
    ContainerDb(db, "Database", "MongoDB", "Storage")
    Rel(web, api, "HTTPS")
    Rel(api, db, "Reads/Writes")`,
	"c4_component": `C4Component
    title {title}
    Component(auth, "Auth", "Authentication")
    Component(logic, "Business", "Logic")
    Component(data, "Data", "Access")
    Rel(auth, logic, "Authorizes")
    Rel(logic, data, "Uses")`,
	"aws": `flowchart TB
    subgraph AWS
        CF[CloudFront] --> ALB[Load Balancer]
        ALB --> ECS[ECS Cluster]
        ECS --> RDS[(RDS)]
        ECS --> S3[(S3)]
    end
    Users --> CF`,
	"azure": `flowchart TB
    subgraph Azure
        CDN[Azure CDN] --> AG[App Gateway]
        AG --> AKS[AKS Cluster]
        AKS --> SQL[(Azure SQL)]
        AKS --> Blob[(Blob Storage)]
    end
    Users --> CDN`,
	"gcp": `flowchart TB
    subgraph GCP
        CDN[Cloud CDN] --> LB[Load Balancer]
        LB --> GKE[GKE Cluster]
        GKE --> SQL[(Cloud SQL)]
        GKE --> GCS[(Cloud Storage)]
    end
    Users --> CDN`,
	"microservices": `flowchart TB
    Gateway[API Gateway] --> Auth[Auth Service]
    Gateway --> Svc1[Service 1]
    Gateway --> Svc2[Service 2]
    Svc1 --> DB1[(Database)]
    Svc2 --> DB2[(Database)]
    Svc1 --> Queue[Message Queue]
    Queue --> Svc2`,
	"network": `flowchart TB
    Internet --> FW[Firewall]
    FW --> LB[Load Balancer]
    LB --> Web[Web Servers]
    Web --> App[App Servers]
    App --> DB[(Database)]`,
	"deployment": `flowchart LR
    Code[Source] --> Build[CI Build]
    Build --> Test[Tests]
    Test --> Registry[Container Registry]
    Registry --> Deploy[CD Deploy]
    Deploy --> Env[Environment]`,
}

// validOpeners is the set of Mermaid grammar openers accepted from AI output.
// Anything else gets replaced with the two-node fallback so the store never
// holds text a renderer cannot parse.
var validOpeners = []string{
	"flowchart", "sequenceDiagram", "classDiagram", "stateDiagram",
	"erDiagram", "journey", "gantt", "pie", "mindmap", "timeline",
	"C4Context", "C4Container", "C4Component", "graph",
}

// Template returns the static skeleton for a diagram type, defaulting to
// the flowchart skeleton for unrecognized types.
func Template(diagramType string) string {
	if t, ok := templates[diagramType]; ok {
		return t
	}
	return templates["flowchart"]
}

// Fill interpolates {title} and {description} placeholders. Skeletons
// without placeholders come back unchanged.
func Fill(template, title, description string) string {
	out := strings.ReplaceAll(template, "{title}", title)
	return strings.ReplaceAll(out, "{description}", description)
}

// HasValidOpener reports whether code starts with a known Mermaid grammar.
func HasValidOpener(code string) bool {
	trimmed := strings.TrimSpace(code)
	for _, opener := range validOpeners {
		if strings.HasPrefix(trimmed, opener) {
			return true
		}
	}
	return false
}

// StripFences removes a Markdown code-fence wrapper from AI output.
func StripFences(code string) string {
	if idx := strings.Index(code, "```mermaid"); idx >= 0 {
		rest := code[idx+len("```mermaid"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	}
	if idx := strings.Index(code, "```"); idx >= 0 {
		rest := code[idx+3:]
		if end := strings.Index(rest, "```"); end >= 0 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	}
	return code
}

// Fallback is the minimal two-node diagram used when AI output fails the
// opener check.
func Fallback(title string) string {
	return fmt.Sprintf(`flowchart TD
    A[%s] --> B{Process}
    B --> C[Résultat]`, title)
}

// DefaultTemplate returns the canned diagram persisted by the AI endpoint
// when no provider is configured.
func DefaultTemplate(diagramType, title, description string) string {
	switch diagramType {
	case "sequence":
		return `sequenceDiagram
    participant U as Utilisateur
    participant S as Système
    participant D as Database
    U->>S: Requête
    S->>D: Query
    D-->>S: Données
    S-->>U: Réponse`
	case "c4_context":
		return fmt.Sprintf(`C4Context
    title %s
    Person(user, "Utilisateur")
    System(sys, "%s", "%s")
    Rel(user, sys, "Utilise")`, title, title, description)
	default:
		return fmt.Sprintf(`flowchart TD
    A[%s] --> B{Validation}
    B -->|OK| C[Traitement]
    B -->|Erreur| D[Gestion Erreur]
    C --> E[(Stockage)]
    E --> F[Résultat]
    D --> F`, title)
	}
}
