// Command server runs the Vena backend: a business-management API for
// photography vendors covering clients, projects, finance, and team
// payouts, fronted by per-owner synchronized workspace stores.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	identityapp "github.com/vena/backend/internal/application/identity"
	"github.com/vena/backend/internal/application/notify"
	"github.com/vena/backend/internal/application/portal"
	"github.com/vena/backend/internal/application/syncstore"
	"github.com/vena/backend/internal/domain/crm"
	"github.com/vena/backend/internal/domain/finance"
	"github.com/vena/backend/internal/domain/production"
	"github.com/vena/backend/internal/domain/shared"
	"github.com/vena/backend/internal/domain/team"
	"github.com/vena/backend/internal/infrastructure/auth"
	"github.com/vena/backend/internal/infrastructure/config"
	"github.com/vena/backend/internal/infrastructure/logger"
	"github.com/vena/backend/internal/infrastructure/persistence"
	"github.com/vena/backend/internal/interfaces/http/handler"
	"github.com/vena/backend/internal/interfaces/http/middleware"
	"github.com/vena/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Vena Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database,
		logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level)))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	app := buildApplication(cfg, db, log)
	engine := newEngine(cfg, log)
	mountRoutes(engine, cfg, db, app, log)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}
	run(srv, log)
}

// application bundles the wired services the HTTP layer mounts.
type application struct {
	stores      *syncstore.Manager
	jwtService  *auth.JWTService
	blacklist   auth.TokenBlacklist
	authService *identityapp.AuthService
	relay       *notify.Relay
	portals     *portal.Service
}

func buildApplication(cfg *config.Config, db *persistence.Database, log *zap.Logger) *application {
	userRepo := persistence.NewGormUserRepository(db.DB)
	profileRepo := persistence.NewGormProfileRepository(db.DB)
	gateways := persistence.NewGateways(db.DB, log, persistence.GatewayOptions{
		Timeout:    cfg.Sync.GatewayTimeout,
		MaxRetries: cfg.Sync.GatewayMaxRetries,
		RetryDelay: cfg.Sync.GatewayRetryDelay,
	})

	// Per-owner workspace stores: every authenticated owner gets an in-memory
	// mirror of their collections, loaded once and reconciled on writes.
	stores := syncstore.NewManager(gateways.Bundle(), profileRepo, log)

	jwtService := auth.NewJWTService(cfg.JWT)
	blacklist := newTokenBlacklist(cfg, log)

	// The log mailer writes outbound mail to the log; swap in a real
	// transport via the same interface when SMTP lands.
	var mailer notify.Mailer
	if cfg.Mail.Enabled {
		mailer = notify.NewLogMailer(cfg.Mail.FromName, cfg.Mail.FromAddr, log)
	}

	return &application{
		stores:      stores,
		jwtService:  jwtService,
		blacklist:   blacklist,
		authService: identityapp.NewAuthService(userRepo, profileRepo, jwtService, blacklist, log),
		relay:       notify.NewRelay(stores, mailer, log),
		portals:     portal.NewService(persistence.NewGormPortalRepository(db.DB), profileRepo, log),
	}
}

// newEngine builds the gin engine with the shared middleware stack. Order
// matters: the request id must exist before the logger runs, and CORS has
// to answer preflights before the body limiter rejects them.
func newEngine(cfg *config.Config, log *zap.Logger) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}
	return engine
}

func mountRoutes(engine *gin.Engine, cfg *config.Config, db *persistence.Database, app *application, log *zap.Logger) {
	engine.GET("/health", healthHandler(db))

	navigationHandler := handler.NewNavigationHandler(app.stores)

	// Route resolution is reachable without a session; the optional JWT
	// middleware attaches an identity when a bearer token is present so
	// authenticated redirects work.
	engine.GET("/api/v1/navigation/resolve",
		middleware.OptionalJWTAuthMiddleware(app.jwtService),
		navigationHandler.Resolve)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     app.jwtService,
		TokenBlacklist: app.blacklist,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/auth/register",
			"/api/v1/auth/refresh",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		SkipPathPrefixes: []string{
			"/api/v1/public",
		},
		Logger: log,
	}))

	// Auth routes. Login/register/refresh are on the JWT skip list above.
	authHandler := handler.NewAuthHandler(app.authService, app.stores, log)
	authRoutes := router.NewDomainGroup("auth", "/auth")
	var authGuards []gin.HandlerFunc
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authGuards = append(authGuards, middleware.AuthRateLimit(authLimiter))
		log.Info("Auth rate limiting enabled",
			zap.Int("requests", cfg.HTTP.AuthRateLimitRequests),
			zap.Duration("window", cfg.HTTP.AuthRateLimitWindow))
	}
	authRoutes.POST("/login", append(authGuards, authHandler.Login)...)
	authRoutes.POST("/register", append(authGuards, authHandler.Register)...)
	authRoutes.POST("/refresh", append(authGuards, authHandler.RefreshToken)...)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/me", authHandler.GetCurrentUser)
	authRoutes.POST("/approve/:id", middleware.RequireAdmin(), authHandler.ApproveUser)

	profileHandler := handler.NewProfileHandler(app.stores)
	profileRoutes := router.NewDomainGroup("profile", "/profile")
	profileRoutes.GET("", profileHandler.Get)
	profileRoutes.PUT("", middleware.RequireView(shared.ViewSettings), profileHandler.Update)

	notificationHandler := handler.NewNotificationHandler(app.stores, app.relay)
	notificationRoutes := router.NewDomainGroup("notifications", "/notifications")
	notificationRoutes.GET("", notificationHandler.List)
	notificationRoutes.GET("/unread-count", notificationHandler.UnreadCount)
	notificationRoutes.POST("", notificationHandler.Create)
	notificationRoutes.PATCH("/:id/read", notificationHandler.MarkRead)
	notificationRoutes.POST("/read-all", notificationHandler.MarkAllRead)

	// Resolve is mounted above, outside JWT auth.
	navigationRoutes := router.NewDomainGroup("navigation", "/navigation")
	navigationRoutes.GET("/permissions", navigationHandler.Permissions)

	// Entity collections, each guarded by the view that owns it.
	stores := app.stores
	crmRoutes := router.NewDomainGroup("crm", "")
	registerCollection(crmRoutes, "/clients",
		handler.NewCollectionHandler(stores, func(s *syncstore.Store) *syncstore.Collection[crm.Client] { return s.Clients }),
		middleware.RequireView(shared.ViewClients))
	registerCollection(crmRoutes, "/client-feedback",
		handler.NewCollectionHandler(stores, func(s *syncstore.Store) *syncstore.Collection[crm.ClientFeedback] { return s.Feedback }),
		middleware.RequireView(shared.ViewClients))
	registerCollection(crmRoutes, "/leads",
		handler.NewCollectionHandler(stores, func(s *syncstore.Store) *syncstore.Collection[crm.Lead] { return s.Leads }),
		middleware.RequireView(shared.ViewLeads))
	registerCollection(crmRoutes, "/contracts",
		handler.NewCollectionHandler(stores, func(s *syncstore.Store) *syncstore.Collection[crm.Contract] { return s.Contracts }),
		middleware.RequireView(shared.ViewContracts))

	productionRoutes := router.NewDomainGroup("production", "")
	registerCollection(productionRoutes, "/projects",
		handler.NewCollectionHandler(stores, func(s *syncstore.Store) *syncstore.Collection[production.Project] { return s.Projects }),
		middleware.RequireView(shared.ViewProjects))
	registerCollection(productionRoutes, "/packages",
		handler.NewCollectionHandler(stores, func(s *syncstore.Store) *syncstore.Collection[production.Package] { return s.Packages }),
		middleware.RequireView(shared.ViewPackages))
	registerCollection(productionRoutes, "/add-ons",
		handler.NewCollectionHandler(stores, func(s *syncstore.Store) *syncstore.Collection[production.AddOn] { return s.AddOns }),
		middleware.RequireView(shared.ViewPackages))
	registerCollection(productionRoutes, "/promo-codes",
		handler.NewCollectionHandler(stores, func(s *syncstore.Store) *syncstore.Collection[production.PromoCode] { return s.PromoCodes }),
		middleware.RequireView(shared.ViewPromoCodes))
	registerCollection(productionRoutes, "/sops",
		handler.NewCollectionHandler(stores, func(s *syncstore.Store) *syncstore.Collection[production.SOP] { return s.SOPs }),
		middleware.RequireView(shared.ViewSOP))
	registerCollection(productionRoutes, "/assets",
		handler.NewCollectionHandler(stores, func(s *syncstore.Store) *syncstore.Collection[production.Asset] { return s.Assets }),
		middleware.RequireView(shared.ViewAssets))
	registerCollection(productionRoutes, "/social-media-posts",
		handler.NewCollectionHandler(stores, func(s *syncstore.Store) *syncstore.Collection[production.SocialMediaPost] { return s.SocialPosts }),
		middleware.RequireView(shared.ViewSocialMediaPlanner))

	financeRoutes := router.NewDomainGroup("finance", "")
	registerCollection(financeRoutes, "/transactions",
		handler.NewCollectionHandler(stores, func(s *syncstore.Store) *syncstore.Collection[finance.Transaction] { return s.Transactions }),
		middleware.RequireView(shared.ViewFinance))
	registerCollection(financeRoutes, "/cards",
		handler.NewCollectionHandler(stores, func(s *syncstore.Store) *syncstore.Collection[finance.Card] { return s.Cards }),
		middleware.RequireView(shared.ViewFinance))
	registerCollection(financeRoutes, "/pockets",
		handler.NewCollectionHandler(stores, func(s *syncstore.Store) *syncstore.Collection[finance.FinancialPocket] { return s.Pockets }),
		middleware.RequireView(shared.ViewFinance))

	teamRoutes := router.NewDomainGroup("team", "")
	registerCollection(teamRoutes, "/team-members",
		handler.NewCollectionHandler(stores, func(s *syncstore.Store) *syncstore.Collection[team.Member] { return s.TeamMembers }),
		middleware.RequireView(shared.ViewTeam))
	registerCollection(teamRoutes, "/team-project-payments",
		handler.NewCollectionHandler(stores, func(s *syncstore.Store) *syncstore.Collection[team.ProjectPayment] { return s.ProjectPayments }),
		middleware.RequireView(shared.ViewTeam))
	registerCollection(teamRoutes, "/team-payment-records",
		handler.NewCollectionHandler(stores, func(s *syncstore.Store) *syncstore.Collection[team.PaymentRecord] { return s.PaymentRecords }),
		middleware.RequireView(shared.ViewTeam))
	registerCollection(teamRoutes, "/reward-ledger-entries",
		handler.NewCollectionHandler(stores, func(s *syncstore.Store) *syncstore.Collection[team.RewardLedgerEntry] { return s.RewardEntries }),
		middleware.RequireView(shared.ViewTeam))

	// Public portal routes. The /public prefix is on the JWT skip list
	// above; access is gated by the opaque token in the URL instead. Keying
	// the limiter on the token keeps one guessed-token scan from starving
	// legitimate portal visitors behind the same NAT.
	portalHandler := handler.NewPortalHandler(app.portals)
	publicRoutes := router.NewDomainGroup("public", "/public")
	portalLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
	publicRoutes.Use(middleware.RateLimitByKey(portalLimiter, func(c *gin.Context) string {
		return "portal:" + c.Param("accessId")
	}))
	publicRoutes.GET("/portal/:accessId", portalHandler.ClientPortal)
	publicRoutes.GET("/freelancer-portal/:accessId", portalHandler.FreelancerPortal)

	systemHandler := handler.NewSystemHandler()
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(authRoutes).
		Register(profileRoutes).
		Register(notificationRoutes).
		Register(navigationRoutes).
		Register(crmRoutes).
		Register(productionRoutes).
		Register(financeRoutes).
		Register(teamRoutes).
		Register(publicRoutes).
		Register(systemRoutes)
	r.Setup()
}

// registerCollection mounts the standard CRUD surface for one entity
// collection under prefix
func registerCollection[R any](dg *router.DomainGroup, prefix string, h *handler.CollectionHandler[R], guards ...gin.HandlerFunc) {
	group := dg.Group(strings.TrimPrefix(prefix, "/"), prefix)
	group.Use(guards...)
	group.GET("", h.List)
	group.POST("", h.Create)
	group.POST("/refresh", h.Refresh)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

// newTokenBlacklist picks Redis when configured and reachable, otherwise an
// in-process blacklist. Single-instance deployments lose nothing with the
// in-memory fallback; revocations just don't survive a restart.
func newTokenBlacklist(cfg *config.Config, log *zap.Logger) auth.TokenBlacklist {
	if cfg.Redis.Host == "" {
		return auth.NewInMemoryTokenBlacklist()
	}
	blacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
	if err != nil {
		log.Warn("Redis blacklist unavailable, using in-memory fallback", zap.Error(err))
		return auth.NewInMemoryTokenBlacklist()
	}
	log.Info("Redis token blacklist connected",
		zap.String("host", cfg.Redis.Host),
		zap.Int("port", cfg.Redis.Port),
	)
	return blacklist
}

// run serves until SIGINT or SIGTERM, then drains in-flight requests.
func run(srv *http.Server, log *zap.Logger) {
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited gracefully")
}

func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
