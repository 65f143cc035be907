package handlers

import (
	"net/http"
	"strconv"

	"violation-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and passes the current officer to every template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if u, ok := middleware.CurrentUser(c); ok {
		data["CurrentUser"] = u
		data["CurrentUsername"] = u.Username
	}
	if _, ok := data["error"]; !ok {
		data["error"] = ""
	}

	c.HTML(status, tmpl, data)
}

func renderError(c *gin.Context, status int, msg string) {
	render(c, status, "error.html", gin.H{
		"status":  status,
		"title":   http.StatusText(status),
		"message": msg,
	})
}

func NotFound(c *gin.Context) {
	renderError(c, http.StatusNotFound, "The page you are looking for does not exist.")
}

// parseID reads a positive numeric :id. Anything else is treated as a missing page.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
