package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/questforge/tabletop-server/internal/middleware"
	"github.com/questforge/tabletop-server/internal/service"
)

// Router API路由器
type Router struct {
	engine           *gin.Engine
	db               *gorm.DB
	services         *service.Services
	authHandler      *AuthHandler
	characterHandler *CharacterHandler
	campaignHandler  *CampaignHandler
	sessionHandler   *SessionHandler
	diceHandler      *DiceHandler
	authMiddleware   *middleware.AuthMiddleware
	log              *zap.Logger
}

// NewRouter 创建路由器
func NewRouter(db *gorm.DB, config *service.Config, log *zap.Logger) *Router {
	engine := gin.New()

	// 全局中间件
	engine.Use(gin.Recovery())
	engine.Use(gin.Logger())

	services := service.NewServices(db, config)

	router := &Router{
		engine:           engine,
		db:               db,
		services:         services,
		authHandler:      NewAuthHandler(services.Auth),
		characterHandler: NewCharacterHandler(services.Character),
		campaignHandler:  NewCampaignHandler(services.Campaign),
		sessionHandler:   NewSessionHandler(services.Session),
		diceHandler:      NewDiceHandler(services.Dice),
		authMiddleware:   middleware.NewAuthMiddleware(services.Auth),
		log:              log,
	}

	router.setupRoutes()

	return router
}

// setupRoutes 设置路由
func (r *Router) setupRoutes() {
	// 健康检查
	r.engine.GET("/health", r.healthCheck)

	// API v1路由组
	v1 := r.engine.Group("/api/v1")
	{
		// 认证相关路由（不需要认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/refresh", r.authHandler.Refresh)
		}

		// 角色路由（需要认证）
		characters := v1.Group("/characters")
		characters.Use(r.authMiddleware.RequireAuth())
		{
			characters.POST("", r.characterHandler.Create)
			characters.GET("", r.characterHandler.List)
			characters.GET("/:id", r.characterHandler.Get)
			characters.PUT("/:id", r.characterHandler.Update)
		}

		// 战役路由（需要认证）
		campaigns := v1.Group("/campaigns")
		campaigns.Use(r.authMiddleware.RequireAuth())
		{
			campaigns.POST("", r.campaignHandler.Create)
			campaigns.GET("", r.campaignHandler.List)
			campaigns.GET("/:id", r.campaignHandler.Get)
			campaigns.PUT("/:id", r.campaignHandler.Update)

			// 会话记录挂在战役下，只追加不修改
			campaigns.POST("/:id/sessions", r.sessionHandler.Create)
			campaigns.GET("/:id/sessions", r.sessionHandler.List)
		}

		// 掷骰路由（纯计算，登录与否都可用，登录时记录掷骰人）
		dice := v1.Group("/dice")
		dice.Use(r.authMiddleware.OptionalAuth())
		{
			dice.POST("/roll", r.diceHandler.Roll)
		}
	}
}

// healthCheck 健康检查
func (r *Router) healthCheck(c *gin.Context) {
	sqlDB, err := r.db.DB()
	if err != nil {
		c.JSON(500, gin.H{
			"status":  "unhealthy",
			"message": "数据库连接失败",
		})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.JSON(500, gin.H{
			"status":  "unhealthy",
			"message": "数据库ping失败",
		})
		return
	}

	c.JSON(200, gin.H{
		"status":  "healthy",
		"message": "服务运行正常",
	})
}

// Run 运行服务器
func (r *Router) Run(addr string) error {
	r.log.Info("Starting API server", zap.String("address", addr))
	return r.engine.Run(addr)
}

// GetEngine 获取Gin引擎（用于测试）
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
