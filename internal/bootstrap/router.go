package bootstrap

import (
	"database/sql"

	httpapi "github.com/project-register/projects-backend/internal/api/http"
	"github.com/project-register/projects-backend/internal/api/http/middleware"
	"github.com/project-register/projects-backend/internal/projects"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type RouterDeps struct {
	DB             *sql.DB
	OptionsCache   *projects.OptionsCache
	AllowedOrigins []string
	Log            zerolog.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(dep.Log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.DB)
	healthHandler.RegisterRoutes(r)

	repo := projects.NewRepo(dep.DB)
	if dep.OptionsCache != nil {
		repo = repo.WithOptionsCache(dep.OptionsCache)
	}

	api := r.Group("/api")
	projects.Register(api, repo, dep.Log)

	return r
}
