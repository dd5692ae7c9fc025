package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/archadvisor/archadvisor/internal/application"
	appanalyses "github.com/archadvisor/archadvisor/internal/application/analyses"
	"github.com/archadvisor/archadvisor/internal/application/advisor"
	appdiagrams "github.com/archadvisor/archadvisor/internal/application/diagrams"
	appdocuments "github.com/archadvisor/archadvisor/internal/application/documents"
	appprojects "github.com/archadvisor/archadvisor/internal/application/projects"
	appprompts "github.com/archadvisor/archadvisor/internal/application/prompts"
	"github.com/archadvisor/archadvisor/internal/config"
	domanalyses "github.com/archadvisor/archadvisor/internal/domain/analyses"
	"github.com/archadvisor/archadvisor/internal/domain/ai"
	domdiagrams "github.com/archadvisor/archadvisor/internal/domain/diagrams"
	domdocuments "github.com/archadvisor/archadvisor/internal/domain/documents"
	domprojects "github.com/archadvisor/archadvisor/internal/domain/projects"
	domprompts "github.com/archadvisor/archadvisor/internal/domain/prompts"
	"github.com/archadvisor/archadvisor/internal/infra/ai/groq"
	aiopenai "github.com/archadvisor/archadvisor/internal/infra/ai/openai"
	mongodb "github.com/archadvisor/archadvisor/internal/infra/db/mongo"
	"github.com/archadvisor/archadvisor/internal/infra/db/postgres"
	"github.com/archadvisor/archadvisor/internal/infra/httpserver"
	minioStore "github.com/archadvisor/archadvisor/internal/infra/storage"
	"github.com/archadvisor/archadvisor/internal/middleware"
)

type repositories struct {
	projects  domprojects.Repository
	analyses  domanalyses.Repository
	diagrams  domdiagrams.Repository
	documents domdocuments.Repository
	prompts   domprompts.Repository
}

func main() {
	// .env first, then config.yaml; env always wins
	_ = godotenv.Load()

	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// connect document store
	repos, checkers, closeStore, err := connectStore(ctx, cfg)
	if err != nil {
		log.Fatalf("store connect error: %v", err)
	}
	defer closeStore()

	// provider decision, made exactly once for the process lifetime
	provider := ai.SelectProvider(cfg.AI.GroqAPIKey, cfg.AI.OpenAIAPIKey)
	advisorCfg := advisor.Config{Provider: provider}
	if cfg.AI.GroqAPIKey != "" {
		advisorCfg.Groq = groq.NewClient(cfg.AI.GroqAPIKey, cfg.AI.GroqModel)
	}
	if cfg.AI.OpenAIAPIKey != "" {
		advisorCfg.OpenAI = aiopenai.NewClient(cfg.AI.OpenAIAPIKey, cfg.AI.OpenAIModel)
	}
	advisorSvc := advisor.New(advisorCfg)
	log.Printf("AI provider configured: %s", provider)

	// optional object store for document exports
	var artifacts domdocuments.ArtifactStore
	if cfg.Minio.Endpoint != "" {
		store, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			log.Fatalf("minio init error: %v", err)
		}
		artifacts = store
	}

	clock := application.SystemClock{}
	promptsSvc := &appprompts.Service{Repo: repos.prompts, Clock: clock}
	projectsSvc := &appprojects.Service{Repo: repos.projects, Clock: clock}
	analysesSvc := &appanalyses.Service{Repo: repos.analyses, Prompts: promptsSvc, Advisor: advisorSvc, Clock: clock}
	diagramsSvc := &appdiagrams.Service{Repo: repos.diagrams, Advisor: advisorSvc, Clock: clock}
	documentsSvc := &appdocuments.Service{
		Repo:      repos.documents,
		Projects:  repos.projects,
		Advisor:   advisorSvc,
		Artifacts: artifacts,
		Clock:     clock,
	}

	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	mux.Mount("/", httpserver.NewRouter(projectsSvc, analysesSvc, diagramsSvc, documentsSvc, promptsSvc, checkers))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

// connectStore wires the configured document-store backend behind the
// repository ports.
func connectStore(ctx context.Context, cfg *config.Config) (repositories, map[string]middleware.HealthChecker, func(), error) {
	switch cfg.Store.Driver {
	case "postgres":
		db, err := postgres.Connect(ctx, cfg.Store.PostgresDSN)
		if err != nil {
			return repositories{}, nil, nil, err
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return repositories{}, nil, nil, err
		}
		repos := repositories{
			projects:  postgres.NewProjectRepository(db),
			analyses:  postgres.NewAnalysisRepository(db),
			diagrams:  postgres.NewDiagramRepository(db),
			documents: postgres.NewDocumentRepository(db),
			prompts:   postgres.NewPromptRepository(db),
		}
		checkers := map[string]middleware.HealthChecker{"postgres": &postgres.Checker{DB: db}}
		return repos, checkers, func() { db.Close() }, nil

	default:
		client, err := mongodb.Connect(ctx, cfg.Store.MongoURI)
		if err != nil {
			return repositories{}, nil, nil, err
		}
		db := client.Database(cfg.Store.Database)
		repos := repositories{
			projects:  mongodb.NewProjectRepository(db),
			analyses:  mongodb.NewAnalysisRepository(db),
			diagrams:  mongodb.NewDiagramRepository(db),
			documents: mongodb.NewDocumentRepository(db),
			prompts:   mongodb.NewPromptRepository(db),
		}
		checkers := map[string]middleware.HealthChecker{"mongo": &mongodb.Checker{Client: client}}
		closeFn := func() {
			ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(ctx2)
		}
		return repos, checkers, closeFn, nil
	}
}
