package projects

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Handler struct {
	repo *Repo
	log  zerolog.Logger
}

// Register mounts the projects endpoints on the given group (typically /api).
func Register(rg gin.IRouter, repo *Repo, log zerolog.Logger) {
	h := &Handler{repo: repo, log: log}

	rg.GET("/projects", h.list)
	rg.GET("/projects/:id", h.getByID)
	rg.POST("/project", h.create)
	rg.GET("/project-statuses", h.optionsFor("status", "statuses", "Failed to fetch statuses"))
	rg.GET("/project-places", h.optionsFor("place", "places", "Failed to fetch places"))
	rg.GET("/project-users", h.optionsFor("user", "users", "Failed to fetch users"))
}

func (h *Handler) list(c *gin.Context) {
	filter := ParseFilter(c.Request.URL.Query())

	items, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err, "Failed to fetch projects")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"data":          items,
		"count":         len(items),
		"searchApplied": filter.Active(),
	})
}

func (h *Handler) getByID(c *gin.Context) {
	p, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Failed to fetch project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": p})
}

func (h *Handler) create(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	// Reject incomplete payloads before they reach the store.
	if err := in.trimmed().Validate(); err != nil {
		h.fail(c, err, "Failed to create project")
		return
	}

	h.log.Info().Str("name", in.Name).Str("applicant", in.Applicant).Msg("creating project")

	p, err := h.repo.Create(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, "Failed to create project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": p})
}

// optionsFor builds a distinct-value handler that wraps the result as a
// named array, e.g. {"success": true, "statuses": [...]}.
func (h *Handler) optionsFor(field, key, failMsg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		values, err := h.repo.DistinctValues(c.Request.Context(), field)
		if err != nil {
			h.fail(c, err, failMsg)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, key: values})
	}
}

// fail maps the error taxonomy onto the response envelope.
func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	var verr *ValidationError
	var serr *StoreError

	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Project not found"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": verr.Error()})
	case errors.As(err, &serr):
		h.log.Error().Err(serr.Err).Str("op", serr.Op).Msg("store failure")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fallback,
			"details": serr.Err.Error(),
		})
	default:
		h.log.Error().Err(err).Msg("unexpected failure")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": fallback})
	}
}
