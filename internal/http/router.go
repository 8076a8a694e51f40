package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ticashop/backend/internal/config"
	"github.com/ticashop/backend/internal/db"
	"github.com/ticashop/backend/internal/http/handlers"
	"github.com/ticashop/backend/internal/http/middleware"
	"github.com/ticashop/backend/internal/repository/postgres"
	"github.com/ticashop/backend/internal/service"

	_ "github.com/ticashop/backend/docs"
)

func Router(cfg config.Config, store *db.Store, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	users := postgres.NewUserRepo(store.Pool)
	authSvc := service.NewAuthService(users, cfg.TokenSecret, cfg.TokenTTL)
	r.Use(middleware.Identity(authSvc))

	h := &handlers.Handler{
		Store:     store,
		Users:     users,
		Tickets:   postgres.NewTicketRepo(store.Pool),
		Bids:      postgres.NewBidRepo(store.Pool),
		Reports:   postgres.NewReportRepo(store.Pool),
		Comments:  postgres.NewCommentRepo(store.Pool),
		Auth:      authSvc,
		Validator: validator.New(),
		Logger:    logger,
	}

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", h.Login)

		api.GET("/users", h.UsersList)
		api.POST("/users", h.UserCreate)
		api.GET("/users/by-email", h.UsersByEmail)
		api.GET("/users/by-role", h.UsersByRole)
		api.GET("/users/:id", h.UserGet)
		api.PUT("/users/:id", h.UserUpdate)
		api.DELETE("/users/:id", h.UserDelete)

		api.GET("/tickets", h.TicketsList)
		api.POST("/tickets", h.TicketCreate)
		api.GET("/tickets/:id", h.TicketGet)
		api.PATCH("/tickets/:id", h.TicketUpdate)
		api.DELETE("/tickets/:id", h.TicketDelete)
		api.PATCH("/tickets/:id/close", h.TicketClose)
		api.PATCH("/tickets/:id/assign-technician", h.TicketAssignTechnician)
		api.PATCH("/tickets/:id/escalate-priority", h.TicketEscalatePriority)

		api.GET("/bids", h.BidsList)
		api.POST("/bids", h.BidCreate)
		api.GET("/bids/:id", h.BidGet)
		api.PATCH("/bids/:id", h.BidUpdate)
		api.DELETE("/bids/:id", h.BidDelete)

		api.GET("/reports", h.ReportsList)
		api.POST("/reports", h.ReportCreate)
		api.GET("/reports/:id", h.ReportGet)
		api.PATCH("/reports/:id", h.ReportUpdate)
		api.DELETE("/reports/:id", h.ReportDelete)

		api.GET("/comments", h.CommentsList)
		api.POST("/comments", h.CommentCreate)
		api.DELETE("/comments/:id", h.CommentDelete)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
