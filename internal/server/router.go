package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"hr-manager/internal/config"
	"hr-manager/internal/handlers"
	"hr-manager/internal/middleware"
	"hr-manager/internal/models"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("hr_session", store))
	r.Use(middleware.InjectUser())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api")

	// AUTH
	api.POST("/auth/register", handlers.Register)
	api.POST("/auth/login", handlers.Login)
	api.POST("/auth/logout", handlers.Logout)
	api.GET("/auth/me", middleware.RequireAuth(), handlers.Me)

	auth := api.Group("/")
	auth.Use(middleware.RequireAuth())

	manage := middleware.RequireRole(models.RoleAdmin, models.RoleProjectManager)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	// CLIENTS
	auth.GET("/clients", handlers.ListClients)
	auth.GET("/clients/:id", handlers.GetClient)
	auth.POST("/clients", manage, handlers.CreateClient)
	auth.PUT("/clients/:id", manage, handlers.UpdateClient)
	auth.DELETE("/clients/:id", adminOnly, handlers.DeleteClient)

	// EMPLOYEES
	auth.GET("/employees", handlers.ListEmployees)
	auth.GET("/employees/:id", handlers.GetEmployee)
	auth.POST("/employees", manage, handlers.CreateEmployee)
	auth.PUT("/employees/:id", manage, handlers.UpdateEmployee)
	auth.DELETE("/employees/:id", adminOnly, handlers.DeleteEmployee)

	// PROJECTS
	auth.GET("/projects", handlers.ListProjects)
	auth.GET("/projects/:id", handlers.GetProject)
	auth.POST("/projects", manage, handlers.CreateProject)
	auth.PUT("/projects/:id", manage, handlers.UpdateProject)
	auth.PATCH("/projects/:id/status", manage, handlers.ChangeProjectStatus)
	// Project deletion cascades through contracts and allocations.
	auth.DELETE("/projects/:id", adminOnly, handlers.DeleteProject)

	// CONTRACTS
	auth.GET("/contracts", handlers.ListContracts)
	auth.GET("/contracts/:id", handlers.GetContract)
	auth.POST("/contracts", manage, handlers.CreateContract)
	auth.PUT("/contracts/:id", manage, handlers.UpdateContract)
	auth.DELETE("/contracts/:id", adminOnly, handlers.DeleteContract)

	// contract lifecycle
	auth.POST("/contracts/:id/init", manage, handlers.InitContractServices)
	auth.POST("/contracts/:id/pause", manage, handlers.PauseContractServices)
	auth.POST("/contracts/:id/finish", manage, handlers.FinishContract)
	auth.POST("/contracts/:id/cancel", manage, handlers.CancelContract)
	// direct status override, bypassing the transition graph
	auth.PATCH("/contracts/:id/status", adminOnly, handlers.OverrideContractStatus)

	// allocations
	auth.POST("/contracts/:id/employees", manage, handlers.AddAllocation)
	auth.DELETE("/contracts/:id/employees/:allocation_id", manage, handlers.RemoveAllocation)

	// REPORTS
	auth.GET("/reports/project-performance", handlers.ProjectPerformanceReport)
	auth.GET("/dashboard", handlers.Dashboard)

	// AUDIT
	auth.GET("/audit", adminOnly, handlers.ListAuditLogs)

	return r
}
