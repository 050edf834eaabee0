package app

import (
	"net/http"

	"github.com/heartmarshall/edusphere-backend/internal/service/decision"
	"github.com/heartmarshall/edusphere-backend/internal/transport/middleware"
	"github.com/heartmarshall/edusphere-backend/internal/transport/rest"
)

// Handler builds the HTTP routing tree with its middleware.
func (a *App) Handler() http.Handler {
	health := rest.NewHealthHandler(a.rules, BuildVersion(), a.rules.SeedVersion())
	analysisH := rest.NewAnalysisHandler(a.AnalysisService, a.cfg.Rules.MaxTextLength, a.log)
	rulesH := rest.NewRuleHandler(a.RuleService, a.log)
	decisionH := rest.NewDecisionHandler(decision.Decide, a.log)

	// Analysis and writes are rate limited; probes and reads are not.
	var limited []middleware.Middleware
	if a.limiter != nil {
		limited = append(limited, a.limiter.Middleware)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", health.Info)
	mux.HandleFunc("GET /sante", health.Health)
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /live", health.Live)

	mux.Handle("GET /analyser", middleware.Wrap(analysisH.AnalyzeQuery, limited...))
	mux.Handle("POST /analyser", middleware.Wrap(analysisH.Analyze, limited...))

	mux.HandleFunc("GET /rules", rulesH.List)
	mux.Handle("POST /rules", middleware.Wrap(rulesH.Create, limited...))

	mux.Handle("POST /decision", middleware.Wrap(decisionH.Decide, limited...))

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(a.log),
		middleware.Recovery(a.log),
		middleware.CORS(a.cfg.CORS),
	)(mux)
}
