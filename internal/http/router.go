package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/you/authsvc/domain"
	"github.com/you/authsvc/internal/http/handlers"
	"github.com/you/authsvc/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, tokenSvc domain.TokenService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/otp/send", ah.SendOTP)
	auth.POST("/otp/verify", ah.VerifyOTP)
	auth.POST("/refresh", ah.Refresh)

	protected := r.Group("/auth").Use(middleware.AuthMiddleware(tokenSvc))
	protected.GET("/me", ah.Me)

	return r
}
