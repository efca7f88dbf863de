package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"nextskill-backend/internal/nlp"
	"nextskill-backend/internal/resumes"
	"nextskill-backend/internal/services/health"
	"nextskill-backend/internal/shared/config"
	"nextskill-backend/internal/shared/server"
	"nextskill-backend/internal/shared/storage/db"
	"nextskill-backend/internal/shared/storage/object"
	localstore "nextskill-backend/internal/shared/storage/object/local"
	s3store "nextskill-backend/internal/shared/storage/object/s3"
)

const appVersion = "1.0.0"

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Engine *nlp.Engine

	ResumesRepo    resumes.Repo
	ResumesService *resumes.Service
	ResumesHandler *resumes.Handler
	Health         *health.Service
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	engine, err := BuildEngine(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Engine: engine,
	}

	if app.DB != nil {
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
	} else {
		app.ResumesRepo = resumes.NewMemoryRepo()
	}
	app.ResumesService = &resumes.Service{
		Store:  app.Store,
		Repo:   app.ResumesRepo,
		Engine: app.Engine,
	}
	app.ResumesHandler = resumes.NewHandler(app.ResumesService)
	app.Health = health.NewService(appVersion, app.Engine.Mode)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        app.Config,
		ResumeHandler: app.ResumesHandler,
		Health:        app.Health,
	})

	return app, nil
}

// BuildEngine constructs the parsing engine from configuration. A model load
// failure is a startup error rather than a silent heuristic fallback.
func BuildEngine(cfg config.Config) (*nlp.Engine, error) {
	var tagger nlp.Tagger
	if cfg.NLPHeuristicOnly {
		tagger = nlp.HeuristicTagger{}
	} else {
		proseTagger, err := nlp.NewProseTagger(cfg.NLPModelDir)
		if err != nil {
			return nil, fmt.Errorf("load nlp model: %w", err)
		}
		tagger = proseTagger
	}
	return nlp.NewEngine(tagger, nlp.Options{
		ConfidenceThreshold: cfg.ConfidenceThreshold,
		SkillDetection:      cfg.EnableSkills,
		NameExtraction:      cfg.EnableName,
		ContactExtraction:   cfg.EnableContact,
	}), nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
