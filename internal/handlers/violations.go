package handlers

import (
	"errors"
	"net/http"
	"time"

	"violation-tracker/internal/middleware"
	"violation-tracker/internal/models"
	"violation-tracker/internal/services"

	"github.com/gin-gonic/gin"
)

const auditPageSize = 200

// Dashboard is the officer's add-violation form.
func (h *Handler) Dashboard(c *gin.Context) {
	render(c, http.StatusOK, "add_violation.html", gin.H{
		"form": services.AddViolationInput{Date: time.Now().Format(models.DateLayout)},
	})
}

func (h *Handler) AddViolation(c *gin.Context) {
	officerID, _ := middleware.SessionUserID(c)

	in := services.AddViolationInput{
		VehicleNumber: c.PostForm("vehicle_number"),
		ViolationType: c.PostForm("violation_type"),
		Location:      c.PostForm("location"),
		Date:          c.PostForm("date"),
		FineAmount:    c.PostForm("fine_amount"),
	}

	_, err := h.violations.Add(c.Request.Context(), officerID, in)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			render(c, http.StatusBadRequest, "add_violation.html", gin.H{"error": verr.Message, "form": in})
		case errors.Is(err, services.ErrQRIssue):
			_ = c.Error(err)
			render(c, http.StatusInternalServerError, "add_violation.html", gin.H{
				"error": "Could not generate the QR code, the violation was not saved",
				"form":  in,
			})
		default:
			_ = c.Error(err)
			render(c, http.StatusInternalServerError, "add_violation.html", gin.H{
				"error": "Could not save the violation",
				"form":  in,
			})
		}
		return
	}

	c.Redirect(http.StatusFound, "/view")
}

// ListViolations is public: everyone may search by vehicle number.
func (h *Handler) ListViolations(c *gin.Context) {
	search := c.Query("search")

	violations, err := h.violations.List(c.Request.Context(), search)
	if err != nil {
		_ = c.Error(err)
		renderError(c, http.StatusInternalServerError, "Could not load violations.")
		return
	}

	_, authed := middleware.SessionUserID(c)
	render(c, http.StatusOK, "view_violations.html", gin.H{
		"violations": violations,
		"search":     search,
		"isAuthed":   authed,
	})
}

func (h *Handler) ToggleStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		NotFound(c)
		return
	}
	officerID, _ := middleware.SessionUserID(c)

	if _, err := h.violations.ToggleStatus(c.Request.Context(), officerID, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			NotFound(c)
			return
		}
		_ = c.Error(err)
		renderError(c, http.StatusInternalServerError, "Could not update the violation.")
		return
	}

	c.Redirect(http.StatusFound, "/view")
}

// ShowStatus is where a scanned QR code lands.
func (h *Handler) ShowStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		NotFound(c)
		return
	}

	v, err := h.violations.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			NotFound(c)
			return
		}
		_ = c.Error(err)
		renderError(c, http.StatusInternalServerError, "Could not load the violation.")
		return
	}

	render(c, http.StatusOK, "status.html", gin.H{"v": v})
}

func (h *Handler) ListAuditLogs(c *gin.Context) {
	logs, err := h.violations.RecentActivity(c.Request.Context(), auditPageSize)
	if err != nil {
		_ = c.Error(err)
		renderError(c, http.StatusInternalServerError, "Could not load the audit log.")
		return
	}

	render(c, http.StatusOK, "audit_list.html", gin.H{"logs": logs})
}
