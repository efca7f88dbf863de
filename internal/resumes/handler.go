package resumes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nextskill-backend/internal/nlp"
	"nextskill-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group. Upload may carry
// extra middleware (rate limiting), so it is registered separately.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, uploadMiddleware ...gin.HandlerFunc) {
	upload := append(append([]gin.HandlerFunc{}, uploadMiddleware...), h.upload)
	rg.POST("/resumes", upload...)
	rg.POST("/parse", h.parseText)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.GET("/resumes/:id/skills", h.skills)
	rg.GET("/resumes/:id/stats", h.stats)
	rg.POST("/resumes/:id/reparse", h.reparse)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	res, err := h.Svc.ProcessUpload(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUnsupportedFile), errors.Is(err, ErrFileTooLarge):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process resume", nil)
		}
		return
	}

	c.Set("resumeId", res.ID)
	c.Set("statusTransition", string(StatusPending)+"->"+string(res.Status))
	respond.JSON(c, http.StatusCreated, toResponse(res))
}

type parseTextRequest struct {
	Text string `json:"text"`
}

func (h *Handler) parseText(c *gin.Context) {
	var req parseTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	parsed, err := h.Svc.ParseText(c.Request.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, nlp.ErrInputTooShort):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to parse text", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, parsed)
}

func (h *Handler) list(c *gin.Context) {
	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	results, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resumes", nil)
		return
	}

	items := make([]ResumeListItem, 0, len(results))
	for _, res := range results {
		items = append(items, toListItem(res))
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"resumes": items,
		"count":   len(items),
	})
}

func (h *Handler) get(c *gin.Context) {
	res, ok := h.lookup(c)
	if !ok {
		return
	}
	categories, grouped := res.SkillsByCategory()
	respond.JSON(c, http.StatusOK, gin.H{
		"resume":           toResponse(res),
		"skillCategories":  categories,
		"skillsByCategory": grouped,
	})
}

func (h *Handler) skills(c *gin.Context) {
	res, ok := h.lookup(c)
	if !ok {
		return
	}
	categories, grouped := res.SkillsByCategory()
	respond.JSON(c, http.StatusOK, gin.H{
		"resumeId":         res.ID,
		"totalSkills":      len(res.Skills),
		"categories":       categories,
		"skillsByCategory": grouped,
	})
}

func (h *Handler) stats(c *gin.Context) {
	res, ok := h.lookup(c)
	if !ok {
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"stats": res.Stats()})
}

func (h *Handler) reparse(c *gin.Context) {
	res, err := h.Svc.Reparse(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to reparse resume", nil)
		}
		return
	}
	c.Set("resumeId", res.ID)
	respond.JSON(c, http.StatusOK, toResponse(res))
}

func (h *Handler) lookup(c *gin.Context) (Resume, bool) {
	res, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		}
		return Resume{}, false
	}
	c.Set("resumeId", res.ID)
	return res, true
}
