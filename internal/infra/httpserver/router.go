package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	appanalyses "github.com/archadvisor/archadvisor/internal/application/analyses"
	appdiagrams "github.com/archadvisor/archadvisor/internal/application/diagrams"
	appdocuments "github.com/archadvisor/archadvisor/internal/application/documents"
	appprojects "github.com/archadvisor/archadvisor/internal/application/projects"
	appprompts "github.com/archadvisor/archadvisor/internal/application/prompts"
	"github.com/archadvisor/archadvisor/internal/domain/catalog"
	docdomain "github.com/archadvisor/archadvisor/internal/domain/documents"
	projdomain "github.com/archadvisor/archadvisor/internal/domain/projects"
	promptdomain "github.com/archadvisor/archadvisor/internal/domain/prompts"
	"github.com/archadvisor/archadvisor/internal/middleware"
)

type Router struct {
	projects  *appprojects.Service
	analyses  *appanalyses.Service
	diagrams  *appdiagrams.Service
	documents *appdocuments.Service
	prompts   *appprompts.Service
	health    http.HandlerFunc
}

func NewRouter(
	projects *appprojects.Service,
	analyses *appanalyses.Service,
	diagrams *appdiagrams.Service,
	documents *appdocuments.Service,
	prompts *appprompts.Service,
	checkers map[string]middleware.HealthChecker,
) http.Handler {
	r := &Router{
		projects:  projects,
		analyses:  analyses,
		diagrams:  diagrams,
		documents: documents,
		prompts:   prompts,
		health:    middleware.HealthHandler(checkers),
	}

	mux := chi.NewRouter()
	mux.Use(middleware.Logging)

	mux.Route("/api", func(rt chi.Router) {
		rt.Get("/", r.wrap(r.handleRoot))
		rt.Get("/health", r.health.ServeHTTP)

		rt.Post("/projects", r.wrap(r.handleCreateProject))
		rt.Get("/projects", r.wrap(r.handleListProjects))
		rt.Get("/projects/{id}", r.wrap(r.handleGetProject))
		rt.Put("/projects/{id}", r.wrap(r.handleUpdateProject))
		rt.Delete("/projects/{id}", r.wrap(r.handleDeleteProject))

		rt.Post("/analyze", r.wrap(r.handleAnalyze))
		rt.Get("/analyses/{project_id}", r.wrap(r.handleListAnalyses))

		rt.Post("/diagrams", r.wrap(r.handleGenerateDiagram))
		rt.Post("/diagrams/ai-generate", r.wrap(r.handleAIGenerateDiagram))
		rt.Get("/diagrams/{project_id}", r.wrap(r.handleListDiagrams))

		rt.Post("/documents", r.wrap(r.handleGenerateDocument))
		rt.Post("/documents/ai-generate", r.wrap(r.handleAIGenerateDocument))
		rt.Post("/documents/export/{id}", r.wrap(r.handleExportDocument))
		rt.Get("/documents/{project_id}", r.wrap(r.handleListDocuments))

		rt.Get("/templates", r.wrap(r.handleTemplates))
		rt.Get("/cloud-comparison", r.wrap(r.handleCloudComparison))
		rt.Get("/stats", r.wrap(r.handleStats))

		rt.Get("/ai-prompts", r.wrap(r.handleListPrompts))
		rt.Post("/ai-prompts", r.wrap(r.handleCreatePrompt))
		rt.Put("/ai-prompts/{id}", r.wrap(r.handleUpdatePrompt))
		rt.Delete("/ai-prompts/{id}", r.wrap(r.handleDeletePrompt))
		rt.Post("/ai-prompts/{id}/toggle", r.wrap(r.handleTogglePrompt))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap translates handler errors: missing-by-id lookups surface as 404,
// everything else as a generic 500. AI failures never reach here; the
// pipeline degrades to fallback text upstream.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			if isNotFound(err) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, projdomain.ErrNotFound) ||
		errors.Is(err, docdomain.ErrNotFound) ||
		errors.Is(err, promptdomain.ErrNotFound)
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(v)
}

// GET /api/
func (r *Router) handleRoot(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, map[string]string{
		"message": "ArchAdvisor API - Votre assistant architecte de solutions TI",
	})
}

// POST /api/projects
func (r *Router) handleCreateProject(w http.ResponseWriter, req *http.Request) error {
	var cmd appprojects.UpsertCommand
	if err := json.NewDecoder(req.Body).Decode(&cmd); err != nil {
		return err
	}
	p, err := r.projects.Create(req.Context(), cmd)
	if err != nil {
		return err
	}
	return writeJSON(w, p)
}

// GET /api/projects
func (r *Router) handleListProjects(w http.ResponseWriter, req *http.Request) error {
	list, err := r.projects.List(req.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, list)
}

// GET /api/projects/{id}
func (r *Router) handleGetProject(w http.ResponseWriter, req *http.Request) error {
	p, err := r.projects.Get(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		return err
	}
	return writeJSON(w, p)
}

// PUT /api/projects/{id}
func (r *Router) handleUpdateProject(w http.ResponseWriter, req *http.Request) error {
	var cmd appprojects.UpsertCommand
	if err := json.NewDecoder(req.Body).Decode(&cmd); err != nil {
		return err
	}
	p, err := r.projects.Update(req.Context(), chi.URLParam(req, "id"), cmd)
	if err != nil {
		return err
	}
	return writeJSON(w, p)
}

// DELETE /api/projects/{id}
func (r *Router) handleDeleteProject(w http.ResponseWriter, req *http.Request) error {
	if err := r.projects.Delete(req.Context(), chi.URLParam(req, "id")); err != nil {
		return err
	}
	return writeJSON(w, map[string]string{"message": "Project deleted successfully"})
}

// POST /api/analyze
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	var cmd appanalyses.AnalyzeCommand
	if err := json.NewDecoder(req.Body).Decode(&cmd); err != nil {
		return err
	}
	a, err := r.analyses.Analyze(req.Context(), cmd)
	if err != nil {
		return err
	}
	return writeJSON(w, a)
}

// GET /api/analyses/{project_id}
func (r *Router) handleListAnalyses(w http.ResponseWriter, req *http.Request) error {
	list, err := r.analyses.ListByProject(req.Context(), chi.URLParam(req, "project_id"))
	if err != nil {
		return err
	}
	return writeJSON(w, list)
}

// POST /api/diagrams
func (r *Router) handleGenerateDiagram(w http.ResponseWriter, req *http.Request) error {
	var cmd appdiagrams.GenerateCommand
	if err := json.NewDecoder(req.Body).Decode(&cmd); err != nil {
		return err
	}
	d, err := r.diagrams.Generate(req.Context(), cmd)
	if err != nil {
		return err
	}
	return writeJSON(w, d)
}

// POST /api/diagrams/ai-generate
func (r *Router) handleAIGenerateDiagram(w http.ResponseWriter, req *http.Request) error {
	var cmd appdiagrams.GenerateCommand
	if err := json.NewDecoder(req.Body).Decode(&cmd); err != nil {
		return err
	}
	d, err := r.diagrams.GenerateWithAI(req.Context(), cmd)
	if err != nil {
		return err
	}
	return writeJSON(w, d)
}

// GET /api/diagrams/{project_id}
func (r *Router) handleListDiagrams(w http.ResponseWriter, req *http.Request) error {
	list, err := r.diagrams.ListByProject(req.Context(), chi.URLParam(req, "project_id"))
	if err != nil {
		return err
	}
	return writeJSON(w, list)
}

// POST /api/documents
func (r *Router) handleGenerateDocument(w http.ResponseWriter, req *http.Request) error {
	var cmd appdocuments.GenerateCommand
	if err := json.NewDecoder(req.Body).Decode(&cmd); err != nil {
		return err
	}
	d, err := r.documents.Generate(req.Context(), cmd)
	if err != nil {
		return err
	}
	return writeJSON(w, d)
}

// POST /api/documents/ai-generate
func (r *Router) handleAIGenerateDocument(w http.ResponseWriter, req *http.Request) error {
	var cmd appdocuments.GenerateCommand
	if err := json.NewDecoder(req.Body).Decode(&cmd); err != nil {
		return err
	}
	d, err := r.documents.GenerateWithAI(req.Context(), cmd)
	if err != nil {
		return err
	}
	return writeJSON(w, d)
}

// POST /api/documents/export/{id}
func (r *Router) handleExportDocument(w http.ResponseWriter, req *http.Request) error {
	url, err := r.documents.Export(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		return err
	}
	return writeJSON(w, map[string]string{"artifact_url": url})
}

// GET /api/documents/{project_id}
func (r *Router) handleListDocuments(w http.ResponseWriter, req *http.Request) error {
	list, err := r.documents.ListByProject(req.Context(), chi.URLParam(req, "project_id"))
	if err != nil {
		return err
	}
	return writeJSON(w, list)
}

// GET /api/templates
func (r *Router) handleTemplates(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, map[string]any{"templates": catalog.Templates()})
}

// GET /api/cloud-comparison
func (r *Router) handleCloudComparison(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, catalog.Clouds())
}

// GET /api/stats
func (r *Router) handleStats(w http.ResponseWriter, req *http.Request) error {
	ctx := req.Context()
	projectsCount, err := r.projects.Count(ctx)
	if err != nil {
		return err
	}
	analysesCount, err := r.analyses.Count(ctx)
	if err != nil {
		return err
	}
	diagramsCount, err := r.diagrams.Count(ctx)
	if err != nil {
		return err
	}
	documentsCount, err := r.documents.Count(ctx)
	if err != nil {
		return err
	}
	return writeJSON(w, map[string]any{
		"total_projects":  projectsCount,
		"total_analyses":  analysesCount,
		"total_diagrams":  diagramsCount,
		"total_documents": documentsCount,
		"recent_activity": map[string]any{
			"projects_this_week": projectsCount,
			"analyses_this_week": analysesCount,
		},
	})
}

// GET /api/ai-prompts
func (r *Router) handleListPrompts(w http.ResponseWriter, req *http.Request) error {
	list, err := r.prompts.List(req.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, map[string]any{
		"custom_prompts": list,
		"default_types":  r.prompts.DefaultTypes(),
	})
}

// POST /api/ai-prompts
func (r *Router) handleCreatePrompt(w http.ResponseWriter, req *http.Request) error {
	var cmd appprompts.UpsertCommand
	if err := json.NewDecoder(req.Body).Decode(&cmd); err != nil {
		return err
	}
	p, err := r.prompts.Create(req.Context(), cmd)
	if err != nil {
		return err
	}
	return writeJSON(w, p)
}

// PUT /api/ai-prompts/{id}
func (r *Router) handleUpdatePrompt(w http.ResponseWriter, req *http.Request) error {
	var cmd appprompts.UpsertCommand
	if err := json.NewDecoder(req.Body).Decode(&cmd); err != nil {
		return err
	}
	p, err := r.prompts.Update(req.Context(), chi.URLParam(req, "id"), cmd)
	if err != nil {
		return err
	}
	return writeJSON(w, p)
}

// DELETE /api/ai-prompts/{id}
func (r *Router) handleDeletePrompt(w http.ResponseWriter, req *http.Request) error {
	if err := r.prompts.Delete(req.Context(), chi.URLParam(req, "id")); err != nil {
		return err
	}
	return writeJSON(w, map[string]string{"message": "Prompt deleted successfully"})
}

// POST /api/ai-prompts/{id}/toggle
func (r *Router) handleTogglePrompt(w http.ResponseWriter, req *http.Request) error {
	active, err := r.prompts.Toggle(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		return err
	}
	return writeJSON(w, map[string]bool{"is_active": active})
}
