package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/ideabank-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ideabank-backend/internal/adapter/postgres/assignment"
	"github.com/heartmarshall/ideabank-backend/internal/adapter/postgres/category"
	"github.com/heartmarshall/ideabank-backend/internal/adapter/postgres/comment"
	idearepo "github.com/heartmarshall/ideabank-backend/internal/adapter/postgres/idea"
	"github.com/heartmarshall/ideabank-backend/internal/adapter/postgres/member"
	projectrepo "github.com/heartmarshall/ideabank-backend/internal/adapter/postgres/project"
	voterepo "github.com/heartmarshall/ideabank-backend/internal/adapter/postgres/vote"
	"github.com/heartmarshall/ideabank-backend/internal/auth"
	"github.com/heartmarshall/ideabank-backend/internal/config"
	"github.com/heartmarshall/ideabank-backend/internal/dataloader"
	"github.com/heartmarshall/ideabank-backend/internal/metrics"
	"github.com/heartmarshall/ideabank-backend/internal/service/directory"
	ideasvc "github.com/heartmarshall/ideabank-backend/internal/service/idea"
	projectsvc "github.com/heartmarshall/ideabank-backend/internal/service/project"
	"github.com/heartmarshall/ideabank-backend/internal/service/staff"
	"github.com/heartmarshall/ideabank-backend/internal/service/thread"
	votesvc "github.com/heartmarshall/ideabank-backend/internal/service/vote"
	"github.com/heartmarshall/ideabank-backend/internal/transport/middleware"
	"github.com/heartmarshall/ideabank-backend/internal/transport/rest"
)

// NewHTTPHandler wires repositories, services and transport into the full
// HTTP handler. The returned cleanup stops background workers.
func NewHTTPHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger, m *metrics.Metrics) (http.Handler, func()) {
	txm := postgres.NewTxManager(pool)

	// Repositories.
	memberRepo := member.New(pool)
	categoryRepo := category.New(pool)
	ideaRepo := idearepo.New(pool)
	commentRepo := comment.New(pool)
	voteRepo := voterepo.New(pool)
	projectRepo := projectrepo.New(pool)
	assignmentRepo := assignment.New(pool)

	// Identity gateway.
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Services.
	loaders := dataloader.NewProvider(&dataloader.Repos{
		Category: categoryRepo,
		Member:   memberRepo,
		Vote:     voteRepo,
		Comment:  commentRepo,
	})

	threadService := thread.NewService(logger, commentRepo, ideaRepo, memberRepo, cfg.Thread.MaxDepth)
	threadService.SetMetrics(m)

	projectService := projectsvc.NewService(logger, projectRepo, ideaRepo, memberRepo, txm)
	projectService.SetMetrics(m)

	ideaService := ideasvc.NewService(logger, ideaRepo, memberRepo, loaders, threadService, projectService)
	ideaService.SetMetrics(m)

	voteService := votesvc.NewService(logger, voteRepo, memberRepo)
	voteService.SetMetrics(m)

	staffService := staff.NewService(logger, memberRepo, projectRepo, assignmentRepo)
	staffService.SetMetrics(m)

	directoryService := directory.NewService(logger, categoryRepo)

	// Routes.
	mux := http.NewServeMux()
	rest.Register(mux, rest.Handlers{
		Idea:      rest.NewIdeaHandler(ideaService, logger),
		Comment:   rest.NewCommentHandler(threadService, logger),
		Vote:      rest.NewVoteHandler(voteService, logger),
		Project:   rest.NewProjectHandler(projectService, logger),
		Staff:     rest.NewStaffHandler(staffService, logger),
		Directory: rest.NewDirectoryHandler(directoryService, logger),
		Health:    rest.NewHealthHandler(pool, postgres.NewSchemaInspector(pool), BuildVersion()),
	}, middleware.Auth(jwtMgr))
	mux.Handle("GET /metrics", promhttp.Handler())

	// Middleware chain, outermost first.
	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}

	cleanup := func() {}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(time.Minute)
		mws = append(mws, limiter.Limit(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst))
		cleanup = limiter.Stop
	}

	mws = append(mws, loaders.Middleware(), middleware.Metrics(m))

	return middleware.Chain(mws...)(mux), cleanup
}
