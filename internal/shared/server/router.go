package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"jobfit-backend/internal/comparisons"
	"jobfit-backend/internal/llm"
	"jobfit-backend/internal/llm/gemini"
	"jobfit-backend/internal/llm/openai"
	"jobfit-backend/internal/resumes"
	"jobfit-backend/internal/shared/config"
	"jobfit-backend/internal/shared/metrics"
	"jobfit-backend/internal/shared/server/middleware"
	"jobfit-backend/internal/shared/server/respond"
	"jobfit-backend/internal/shared/storage/db"
	"jobfit-backend/internal/shared/storage/object"
	localstore "jobfit-backend/internal/shared/storage/object/local"
	s3store "jobfit-backend/internal/shared/storage/object/s3"
	"jobfit-backend/internal/uploads"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Identity(),
	)

	// Dependencies
	store := newObjectStore(cfg)
	sqlDB := connectDatabase(cfg)
	client := newLLMClient(cfg)

	var comparisonRepo comparisons.Repository
	if sqlDB != nil {
		comparisonRepo = comparisons.NewPGRepository(sqlDB)
	} else {
		comparisonRepo = comparisons.NewMemoryRepository()
	}
	comparisonSvc := comparisons.NewService(comparisonRepo, client, store, cfg.LLMProvider, cfg.LLMModel)

	// One shared bucket pool: HTTP-level rules throttle abusive clients,
	// the AI rule bounds model spend per user (exceeding it degrades to
	// the fallback scorer instead of rejecting the request).
	limiter := middleware.NewRateLimiter(nil)
	comparisonHandler := comparisons.NewHandler(comparisonSvc, limiter, middleware.RateLimitRule{
		Rate:  1.0 / 6.0, // 10 model calls per minute per user
		Burst: 5,
	})

	var resumeRepo resumes.Repository
	if sqlDB != nil {
		resumeRepo = resumes.NewPGRepository(sqlDB)
	} else {
		resumeRepo = resumes.NewMemoryRepository()
	}
	resumeSvc := resumes.NewService(resumeRepo, client)
	resumeHandler := resumes.NewHandler(resumeSvc)

	uploadHandler := uploads.NewHandler(store)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT": {Rate: 5, Burst: 20},
		},
		Limiter: limiter,
	}))
	comparisonHandler.Register(api)
	resumeHandler.Register(api)
	uploadHandler.Register(api)

	return r
}

func newObjectStore(cfg config.Config) object.Store {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			log.Printf("failed to init s3 store, falling back to local: %v", err)
		} else {
			return store
		}
	}
	store, err := localstore.New(cfg.LocalStoreDir)
	if err != nil {
		log.Printf("failed to init local store, uploads disabled: %v", err)
		return nil
	}
	return store
}

func connectDatabase(cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		return nil
	}
	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	conn, err := db.Connect(context.Background(), cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database, falling back to memory: %v", err)
		return nil
	}
	if err := db.RunMigrations(context.Background(), conn); err != nil {
		log.Printf("failed to run migrations, falling back to memory: %v", err)
		conn.Close()
		return nil
	}
	return conn
}

func newLLMClient(cfg config.Config) llm.Client {
	switch cfg.LLMProvider {
	case "gemini":
		client, err := gemini.NewClient(context.Background(), os.Getenv("GEMINI_API_KEY"), cfg.LLMModel)
		if err != nil {
			log.Printf("gemini client unavailable, comparisons will use fallback scoring: %v", err)
			return nil
		}
		return client
	default:
		client, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), cfg.LLMModel)
		if err != nil {
			log.Printf("openai client unavailable, comparisons will use fallback scoring: %v", err)
			return nil
		}
		return client
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
