// Package web serves the HTTP side listener: health, a landing page that
// points at the SSH experience, and the portfolio as JSON.
package web

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"portfolio-terminal/internal/content"
)

// NewRouter builds the gin engine. sshCommand is shown on the landing page.
func NewRouter(portfolio content.Portfolio, sshCommand string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, landing(portfolio.Profile, sshCommand))
	})

	api := r.Group("/api")
	api.GET("/portfolio", func(c *gin.Context) {
		c.JSON(http.StatusOK, portfolio)
	})
	api.GET("/recommendations", func(c *gin.Context) {
		c.JSON(http.StatusOK, portfolio.Recommendations)
	})
	api.GET("/skills/:key", func(c *gin.Context) {
		key := c.Param("key")
		for _, category := range portfolio.Skills {
			if category.Key == key {
				c.JSON(http.StatusOK, category)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown skill category"})
	})

	return r
}

func landing(p content.Profile, sshCommand string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s · %s\n\n", p.Name, p.Title, p.Tagline)
	fmt.Fprintf(&b, "%s\n\n", p.Summary)
	fmt.Fprintf(&b, "Open the terminal portfolio:\n\n    %s\n\n", sshCommand)
	fmt.Fprintf(&b, "Email:    %s\nGitHub:   %s\nLinkedIn: %s\n", p.Email, p.GitHub, p.LinkedIn)
	return b.String()
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http_request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}
