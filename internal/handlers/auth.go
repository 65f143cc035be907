package handlers

import (
	"errors"
	"net/http"

	"violation-tracker/internal/middleware"
	"violation-tracker/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", nil)
}

type registerForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *Handler) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Invalid form data"})
		return
	}

	_, err := h.auth.Register(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			render(c, http.StatusBadRequest, "register.html", gin.H{"error": verr.Message, "username": form.Username})
		case errors.Is(err, services.ErrUserAlreadyExists):
			render(c, http.StatusConflict, "register.html", gin.H{"error": "That username is already taken", "username": form.Username})
		default:
			_ = c.Error(err)
			render(c, http.StatusInternalServerError, "register.html", gin.H{"error": "Could not save the account, please try again"})
		}
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", nil)
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid form data"})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			render(c, http.StatusUnauthorized, "login.html", gin.H{"error": "Invalid credentials", "username": form.Username})
			return
		}
		_ = c.Error(err)
		render(c, http.StatusInternalServerError, "login.html", gin.H{"error": "Login is unavailable right now"})
		return
	}

	if err := middleware.StartSession(c, user.ID); err != nil {
		_ = c.Error(err)
		renderError(c, http.StatusInternalServerError, "Could not start the session.")
		return
	}

	h.log.Infow("officer logged in", "user_id", user.ID, "request_id", middleware.RequestID(c))
	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) Logout(c *gin.Context) {
	if uid, ok := middleware.SessionUserID(c); ok {
		h.log.Infow("officer logged out", "user_id", uid, "request_id", middleware.RequestID(c))
	}
	if err := middleware.EndSession(c); err != nil {
		_ = c.Error(err)
	}
	c.Redirect(http.StatusFound, "/login")
}
