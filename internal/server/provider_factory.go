package server

import (
	"log/slog"
	"strings"

	"lastgame-service/internal/config"
	"lastgame-service/internal/metrics"
	"lastgame-service/internal/providers"
	"lastgame-service/internal/providers/fixture"
	"lastgame-service/internal/providers/statsapi"
)

// providerFactory assembles the provider with shared wrappers
// (instrumentation + rate limit).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := selectProvider(cfg, f.logger)
	instrumented := providers.NewInstrumentedProvider(base, f.metrics, providerName(cfg.Provider))
	// One shared limiter in front of everything touching the upstream, so
	// interactive lookups and the refresh loop draw from the same budget.
	return providers.NewRateLimitedProvider(instrumented, cfg.StatsAPI.MinInterval, f.logger)
}

// withRetries adds the retry wrapper for background use. Interactive
// queries stay on the unwrapped provider.
func (f providerFactory) withRetries(p providers.DataProvider) providers.DataProvider {
	return providers.NewRetryingProvider(p, f.logger, 0, 0)
}

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "statsapi":
		return statsapi.NewClient(statsapi.Config{
			BaseURL: cfg.StatsAPI.BaseURL,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}

func providerName(raw string) string {
	if raw == "" {
		return "fixture"
	}
	return strings.ToLower(raw)
}
