package fx

import (
	"context"
	"log"

	"github.com/javed1310/Darwix-AI-Hackathon/internal/ai"
	"github.com/javed1310/Darwix-AI-Hackathon/internal/config"
	"github.com/javed1310/Darwix-AI-Hackathon/internal/core"
	"github.com/javed1310/Darwix-AI-Hackathon/internal/scraper"
	"github.com/javed1310/Darwix-AI-Hackathon/internal/store"
	"go.uber.org/fx"
)

// ============================================================================
// FX MODULES - Group related providers together
// ============================================================================

// ConfigModule supplies the configuration loaded and validated by main.
// Nothing downstream reads the environment again.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
	)
}

// ScraperModule provides article fetching and extraction
var ScraperModule = fx.Module("scraper",
	fx.Provide(
		scraper.NewScraper,
		NewFetcher,
	),
)

// AIModule provides the chat-completion provider and the report generator
var AIModule = fx.Module("ai",
	fx.Provide(
		NewAnalysisProvider,
		NewAnalyzer,
		NewGenerator,
	),
)

// StoreModule provides the optional report archive
var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
		NewReportArchive,
	),
)

// CoreModule provides the pipeline
var CoreModule = fx.Module("core",
	fx.Provide(core.NewSkeptic),
)

// Modules returns every module the CLI needs.
func Modules(cfg config.Config) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		ScraperModule,
		AIModule,
		StoreModule,
		CoreModule,
	)
}

// ============================================================================
// PROVIDER FUNCTIONS - Constructors that FX will call automatically
// ============================================================================

// NewFetcher exposes the scraper through the interface the pipeline consumes
func NewFetcher(s *scraper.Scraper) core.Fetcher {
	log.Printf("[FX] Scraper initialized")
	return s
}

// NewAnalysisProvider creates the provider used for the report.
// Groq is always primary; Cerebras is added as a fallback when its key is set.
func NewAnalysisProvider(cfg config.Config) ai.Provider {
	groq := ai.NewLLMProvider("groq", cfg.GroqAPIKey, cfg.Model, cfg.GroqBaseURL)
	if cfg.CerebrasAPIKey == "" {
		log.Printf("[FX] AnalysisProvider initialized (Groq, model %s)", cfg.Model)
		return groq
	}

	cerebras := ai.NewLLMProvider("cerebras", cfg.CerebrasAPIKey, cfg.CerebrasModel, "")
	log.Printf("[FX] AnalysisProvider initialized (MultiProvider: Groq + Cerebras)")
	return ai.NewMultiProvider(groq, cerebras)
}

// NewAnalyzer creates the report generator
func NewAnalyzer(provider ai.Provider, cfg config.Config) *core.Analyzer {
	a := core.NewAnalyzer(provider, cfg.MaxContentChars)
	log.Printf("[FX] Analyzer initialized (max content chars: %d)", cfg.MaxContentChars)
	return a
}

// NewGenerator exposes the analyzer through the interface the pipeline consumes
func NewGenerator(a *core.Analyzer) core.Generator {
	return a
}

// StoreParams groups dependencies for the report store
type StoreParams struct {
	fx.In
	Lifecycle fx.Lifecycle
	Config    config.Config
}

// NewStore connects to Postgres when DATABASE_URL is set.
// Returns a nil store when disabled or unreachable; archiving is never fatal.
func NewStore(p StoreParams) store.Store {
	if p.Config.DatabaseURL == "" {
		log.Printf("[FX] Store disabled (no DATABASE_URL)")
		return nil
	}

	st, err := store.NewPostgresStore(context.Background(), p.Config.DatabaseURL)
	if err != nil {
		log.Printf("[FX] Store disabled: %v", err)
		return nil
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := st.EnsureSchema(ctx); err != nil {
				log.Printf("[FX] Store schema check failed: %v", err)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			st.Close()
			log.Printf("[FX] Store closed")
			return nil
		},
	})

	log.Printf("[FX] Store initialized (Postgres)")
	return st
}

// NewReportArchive exposes the store through the interface the pipeline consumes.
// A nil store yields a nil archive.
func NewReportArchive(st store.Store) core.ReportArchive {
	if st == nil {
		return nil
	}
	log.Printf("[FX] ReportArchive initialized")
	return st
}
