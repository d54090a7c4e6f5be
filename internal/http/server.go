package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"grampanchayat/internal/config"
	"grampanchayat/internal/domain/portal"
	"grampanchayat/internal/http/announcements"
	"grampanchayat/internal/http/applications"
	"grampanchayat/internal/http/auth"
	"grampanchayat/internal/http/common"
	"grampanchayat/internal/http/grievances"
	"grampanchayat/internal/http/schemes"
	"grampanchayat/internal/http/users"
	"grampanchayat/internal/ratelimit"
	"grampanchayat/internal/repo/postgres"
	"grampanchayat/internal/usecase"
)

type Server struct {
	cfg   config.Config
	r     *gin.Engine
	chain *common.Chain

	users         *users.Handler
	schemes       *schemes.Handler
	announcements *announcements.Handler
	applications  *applications.Handler
	grievances    *grievances.Handler
}

type ServerDeps struct {
	Chain         *common.Chain
	Users         *users.Handler
	Schemes       *schemes.Handler
	Announcements *announcements.Handler
	Applications  *applications.Handler
	Grievances    *grievances.Handler
}

func NewServer(cfg config.Config, store *postgres.Store) (*Server, error) {
	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	userRepo := postgres.NewUserRepo(store.DB)
	schemeRepo := postgres.NewSchemeRepo(store.DB)
	announcementRepo := postgres.NewAnnouncementRepo(store.DB)
	applicationRepo := postgres.NewApplicationRepo(store.DB)
	grievanceRepo := postgres.NewGrievanceRepo(store.DB)

	var limiter ratelimit.Limiter
	if cfg.RedisAddr != "" {
		limiter, err = ratelimit.NewRedisLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
	} else {
		limiter = ratelimit.NewMemoryLimiter(ratelimit.MemoryConfig{})
	}

	userService := usecase.NewUserService(userRepo, limiter, cfg.LoginRateLimit, time.Duration(cfg.LoginRateWindow)*time.Second)
	schemeService := usecase.NewSchemeService(schemeRepo)
	announcementService := usecase.NewAnnouncementService(announcementRepo)
	applicationService := usecase.NewApplicationService(applicationRepo, schemeRepo)
	grievanceService := usecase.NewGrievanceService(grievanceRepo, userRepo)

	guard := auth.NewOwnershipGuard(map[portal.ResourceKind]auth.FetchFunc{
		portal.KindApplication: func(ctx context.Context, id string) (portal.OwnedResource, error) {
			return applicationRepo.FindByID(ctx, id)
		},
		portal.KindGrievance: func(ctx context.Context, id string) (portal.OwnedResource, error) {
			return grievanceRepo.FindByID(ctx, id)
		},
	})
	chain := common.NewChain(auth.NewAuthenticator(tokens, userRepo), auth.NewAuthorizer(), guard)

	return NewServerWithDeps(cfg, ServerDeps{
		Chain:         chain,
		Users:         users.NewHandler(userService, tokens),
		Schemes:       schemes.NewHandler(schemeService),
		Announcements: announcements.NewHandler(announcementService),
		Applications:  applications.NewHandler(applicationService),
		Grievances:    grievances.NewHandler(grievanceService),
	}), nil
}

func NewServerWithDeps(cfg config.Config, deps ServerDeps) *Server {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(common.RequestLogger())

	s := &Server{
		cfg:           cfg,
		r:             r,
		chain:         deps.Chain,
		users:         deps.Users,
		schemes:       deps.Schemes,
		announcements: deps.Announcements,
		applications:  deps.Applications,
		grievances:    deps.Grievances,
	}
	s.routes()
	return s
}

func (s *Server) Run() error {
	addr := s.cfg.HTTPAddr
	if addr == "" {
		addr = ":8080"
	}
	log.Info().Str("addr", addr).Msg("api listening")
	return s.r.Run(addr)
}

// Engine exposes the router for integration tests.
func (s *Server) Engine() *gin.Engine {
	return s.r
}

func (s *Server) routes() {
	s.r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	ch := s.chain

	v1 := s.r.Group("/api/v1")
	{
		v1.POST("/auth/register", s.users.HandleRegister)
		v1.POST("/auth/login", s.users.HandleLogin)
		v1.GET("/auth/me", ch.Authenticated(portal.PermProfileRead), s.users.HandleMe)
		v1.PUT("/auth/me", ch.Authenticated(portal.PermProfileWrite), s.users.HandleUpdateMe)
		v1.PUT("/auth/password", ch.Authenticated(portal.PermProfileWrite), s.users.HandleChangePassword)

		v1.GET("/schemes", ch.Optional(), s.schemes.HandleList)
		v1.GET("/schemes/:id", ch.Optional(), s.schemes.HandleGet)
		v1.POST("/schemes", ch.Authenticated(portal.PermSchemeWrite), s.schemes.HandleCreate)
		v1.PUT("/schemes/:id", ch.Authenticated(portal.PermSchemeWrite), s.schemes.HandleUpdate)
		v1.DELETE("/schemes/:id", ch.Authenticated(portal.PermSchemeDelete), s.schemes.HandleDelete)

		v1.GET("/announcements", ch.Optional(), s.announcements.HandleList)
		v1.GET("/announcements/:id", ch.Optional(), s.announcements.HandleGet)
		v1.POST("/announcements", ch.Authenticated(portal.PermAnnouncementWrite), s.announcements.HandleCreate)
		v1.PUT("/announcements/:id", ch.Authenticated(portal.PermAnnouncementWrite), s.announcements.HandleUpdate)
		v1.DELETE("/announcements/:id", ch.Authenticated(portal.PermAnnouncementDelete), s.announcements.HandleDelete)

		v1.POST("/applications", ch.Verified(portal.PermApplicationSubmit), s.applications.HandleSubmit)
		v1.GET("/applications", ch.Authenticated(portal.PermApplicationRead), s.applications.HandleList)
		v1.GET("/applications/:id", ch.Owned(portal.PermApplicationRead, portal.KindApplication, "id"), s.applications.HandleGet)
		v1.PUT("/applications/:id/status", ch.Authenticated(portal.PermApplicationReview), s.applications.HandleReview)
		v1.DELETE("/applications/:id", ch.Owned(portal.PermApplicationRead, portal.KindApplication, "id"), s.applications.HandleWithdraw)

		v1.POST("/grievances", ch.Authenticated(portal.PermGrievanceSubmit), s.grievances.HandleSubmit)
		v1.GET("/grievances", ch.Authenticated(portal.PermGrievanceRead), s.grievances.HandleList)
		v1.GET("/grievances/:id", ch.Owned(portal.PermGrievanceRead, portal.KindGrievance, "id"), s.grievances.HandleGet)
		v1.PUT("/grievances/:id/status", ch.Authenticated(portal.PermGrievanceResolve), s.grievances.HandleResolve)
		v1.PUT("/grievances/:id/assign", ch.Authenticated(portal.PermGrievanceAssign), s.grievances.HandleAssign)

		v1.GET("/admin/users", ch.Authenticated(portal.PermUserAdmin), s.users.HandleAdminList)
		v1.PUT("/admin/users/:id", ch.Authenticated(portal.PermUserAdmin), s.users.HandleAdminUpdate)
		v1.PUT("/admin/users/:id/verify", ch.Authenticated(portal.PermUserVerify), s.users.HandleVerify)
	}
}
