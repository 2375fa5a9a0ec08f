package sitecontent

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/demowin23/vilaw-be/util"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// expectedVersion reads the optional ifVersion query used for optimistic
// concurrency control.
func expectedVersion(c *gin.Context) (*int, bool) {
	raw := c.Query("ifVersion")
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		util.ErrorResponse(c, http.StatusBadRequest, "ifVersion must be a positive integer")
		return nil, false
	}
	return &v, true
}

func editorName(c *gin.Context) string {
	if phone := c.GetString("phone"); phone != "" {
		return phone
	}
	return "unknown"
}

func (h *Handler) GetAll(c *gin.Context) {
	content, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", content)
}

func (h *Handler) GetByKey(c *gin.Context) {
	content, err := h.service.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", content)
}

func (h *Handler) UpdateAbout(c *gin.Context) {
	var content AboutContent
	if err := c.ShouldBindJSON(&content); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	version, ok := expectedVersion(c)
	if !ok {
		return
	}

	updated, err := h.service.UpdateAbout(c.Request.Context(), &content, editorName(c), version)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "About content updated", updated)
}

func (h *Handler) UpdateContact(c *gin.Context) {
	var content ContactContent
	if err := c.ShouldBindJSON(&content); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	version, ok := expectedVersion(c)
	if !ok {
		return
	}

	updated, err := h.service.UpdateContact(c.Request.Context(), &content, editorName(c), version)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "Contact content updated", updated)
}
