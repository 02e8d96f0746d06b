package server

import (
	"net/http"
	"time"

	"trivia-api/internal/handlers"
	"trivia-api/internal/middleware"
	"trivia-api/internal/services"
	"trivia-api/internal/ws"

	_ "trivia-api/docs"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Server struct {
	router *gin.Engine
	logger *zap.Logger
	db     *gorm.DB
	hub    *ws.Hub
}

func New(logger *zap.Logger, db *gorm.DB, hub *ws.Hub) *Server {
	s := &Server{
		logger: logger,
		db:     db,
		hub:    hub,
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	recoveryLog, err := zap.NewStdLogAt(logger, zap.ErrorLevel)
	if err != nil {
		recoveryLog = zap.NewStdLog(logger)
	}

	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(gin.CustomRecoveryWithWriter(recoveryLog.Writer(), handlers.Recovered))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORSHeaders())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    middleware.CORSAllowMethods,
		AllowHeaders:    middleware.CORSAllowHeaders,
	}))

	r.NoRoute(handlers.NoRoute)
	r.NoMethod(handlers.NoMethod)

	s.router = r
	s.registerRoutes()
	return s
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) registerRoutes() {
	categoryService := services.NewCategoryService(s.db)
	questionService := services.NewQuestionService(s.db)
	quizService := services.NewQuizService(s.db)

	categoryHandler := handlers.NewCategoryHandler(categoryService, questionService)
	questionHandler := handlers.NewQuestionHandler(questionService, categoryService, s.hub)
	quizHandler := handlers.NewQuizHandler(quizService)
	feedHandler := handlers.NewFeedHandler(s.hub)

	r := s.router

	r.GET("/health", s.healthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/questions", feedHandler.HandleQuestionFeed)

	categories := r.Group("/categories")
	{
		categories.GET("", categoryHandler.ListCategories)
		categories.GET("/:id/questions", categoryHandler.ListQuestionsByCategory)
	}

	questions := r.Group("/questions")
	{
		questions.GET("", questionHandler.ListQuestions)
		questions.POST("", questionHandler.CreateQuestion)
		questions.GET("/export", questionHandler.ExportQuestions)
		questions.POST("/search", questionHandler.SearchQuestions)
		questions.DELETE("/:id", questionHandler.DeleteQuestion)
	}

	r.POST("/quizzes", quizHandler.PlayQuiz)
}

type healthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

func (s *Server) healthCheck(c *gin.Context) {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		s.logger.Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, healthResponse{Success: false, Status: "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, healthResponse{Success: true, Status: "ok"})
}
