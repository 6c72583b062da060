package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

// NewRouter 所有接口挂在 /api 下
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLog())

	api := r.Group("/api")
	api.POST("/new_game", h.handleNewGame)
	api.POST("/state", h.handleState)
	api.POST("/play", h.handlePlay)
	api.POST("/hints", h.handleHints)
	api.GET("/games", h.handleGames)
	api.DELETE("/games/:id", h.handleRemove)
	api.GET("/games/:id/history", h.handleHistory)
	return r
}

func requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logx.WithContext(c.Request.Context()).WithDuration(time.Since(start)).
			Infof("%s %s %d", c.Request.Method, c.Request.URL.Path, c.Writer.Status())
	}
}
