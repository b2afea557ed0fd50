package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"foodshare-api/internal/domain/user"
	"foodshare-api/internal/handler/api"
	"foodshare-api/internal/handler/middleware"
	"foodshare-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Donation *api.DonationHandler
	Match    *api.MatchHandler
	Request  *api.RequestHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	donorOnly := []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleDonor)}
	orgOnly := []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleOrganization)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		donations := apiGroup.Group("/donations")
		donations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(donations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Donation.Create, Mw: donorOnly},
				{Method: http.MethodGet, Path: "/my/all", Handler: h.Donation.ListMine, Mw: donorOnly},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Donation.Update, Mw: donorOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Donation.Delete, Mw: donorOnly},
				{Method: http.MethodGet, Path: "/:id/requests", Handler: h.Donation.ListRequests, Mw: donorOnly},
			})
		}

		match := apiGroup.Group("/match")
		match.Use(authMiddleware.RequireAuth())
		{
			addRoutes(match, []route{
				{Method: http.MethodPost, Path: "/search", Handler: h.Match.Search, Mw: orgOnly},
				{Method: http.MethodPost, Path: "/request", Handler: h.Match.Request, Mw: orgOnly},
				{Method: http.MethodPost, Path: "/approve", Handler: h.Match.Approve, Mw: donorOnly},
				{Method: http.MethodPost, Path: "/complete", Handler: h.Match.Complete, Mw: orgOnly},
			})
		}

		requests := apiGroup.Group("/requests")
		requests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(requests, []route{
				{Method: http.MethodPost, Path: "/cancel", Handler: h.Request.Cancel, Mw: orgOnly},
				{Method: http.MethodGet, Path: "/my-activity", Handler: h.Request.MyActivity, Mw: orgOnly},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
