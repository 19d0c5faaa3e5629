package httpapi

import (
	"blogapi/internal/adapters/httpapi/middleware"
	postEntity "blogapi/internal/core/post"
	postPort "blogapi/internal/ports/post"
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PostUseCase: اینترفیسِ لازم برای کنترلر/روتر (Inbound Port)
type PostUseCase interface {
	ListPosts(ctx context.Context, q postPort.ListQuery) ([]*postPort.PostDTO, error)
	CreatePost(ctx context.Context, title, content *string) (*postPort.PostDTO, error)
	UpdatePost(ctx context.Context, id int64, patch postEntity.Patch) (*postPort.PostDTO, error)
	DeletePost(ctx context.Context, id int64) (*postPort.DeleteResult, error)
	SearchPosts(ctx context.Context, q postPort.SearchQuery) ([]*postPort.PostDTO, error)
}

// فقط روتینگ: UseCase از بیرون تزریق می‌شود
func SetupRoutes(postUC PostUseCase, logger *zap.Logger, corsOrigins []string) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		cors.New(corsConfig(corsOrigins)),
	)

	pc := NewPostController(postUC, logger)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/posts", pc.ListPosts)
	api.POST("/posts", pc.CreatePost)
	api.GET("/posts/search", pc.SearchPosts)
	api.PUT("/posts/:id", pc.UpdatePost)
	api.DELETE("/posts/:id", pc.DeletePost)
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
