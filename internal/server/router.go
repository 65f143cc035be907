package server

import (
	"html/template"
	"net/http"
	"path"

	"violation-tracker/internal/config"
	"violation-tracker/internal/database"
	"violation-tracker/internal/handlers"
	"violation-tracker/internal/middleware"
	"violation-tracker/internal/services"
	"violation-tracker/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionCookieName = "violation_session"

// Deps is everything the router wires into handlers and middleware.
type Deps struct {
	Config     *config.Config
	Users      database.UserRepository
	Auth       *services.AuthService
	Violations *services.ViolationService
	Log        *zap.SugaredLogger
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"staticURL": func(rel string) string {
			return "/static/" + path.Clean(rel)
		},
	}
}

func NewRouter(d Deps) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(d.Log))

	// ClientIP feeds the login limiter, so forwarded headers are not trusted.
	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	r.Static("/static", d.Config.StaticDir)

	tmpl, err := template.New("").Funcs(funcMap()).ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	store := cookie.NewStore([]byte(d.Config.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   d.Config.SessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionCookieName, store))
	r.Use(middleware.InjectUser(d.Users, d.Log))

	h := handlers.New(d.Auth, d.Violations, d.Log)

	r.GET("/", h.Index)

	// auth
	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.Register)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", middleware.RateLimitByIP(d.Config.LoginRatePerMinute, d.Log), h.Login)

	// public lookups
	r.GET("/view", h.ListViolations)
	r.GET("/status/:id", h.ShowStatus)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	auth.GET("/logout", h.Logout)
	auth.GET("/dashboard", h.Dashboard)
	auth.POST("/add", h.AddViolation)
	auth.GET("/update/:id", h.ToggleStatus)
	auth.GET("/audit", h.ListAuditLogs)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.NoRoute(handlers.NotFound)

	return r, nil
}
