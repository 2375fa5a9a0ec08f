package category

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/demowin23/vilaw-be/middleware"
	"github.com/demowin23/vilaw-be/util"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context(), middleware.CurrentRole(c))
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}
	util.SuccessResponse(c, "OK", categories)
}

func (h *Handler) Pending(c *gin.Context) {
	categories, err := h.service.Pending(c.Request.Context(), middleware.CurrentRole(c))
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}
	util.SuccessResponse(c, "OK", categories)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	cat, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}
	util.SuccessResponse(c, "OK", cat)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "value and label are required")
		return
	}

	cat, err := h.service.Create(c.Request.Context(), middleware.CurrentRole(c), &req)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}
	util.CreatedResponse(c, "Category created", cat)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	cat, err := h.service.Update(c.Request.Context(), id, middleware.CurrentRole(c), &req)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}
	util.SuccessResponse(c, "Category updated", cat)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, middleware.CurrentRole(c)); err != nil {
		util.ErrorFromService(c, err)
		return
	}
	util.SuccessResponse(c, "Category deleted", nil)
}

func (h *Handler) Approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "is_approved is required")
		return
	}

	cat, err := h.service.Approve(c.Request.Context(), id, middleware.CurrentRole(c), *req.IsApproved)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	message := "Category approved"
	if !*req.IsApproved {
		message = "Category rejected"
	}
	util.SuccessResponse(c, message, cat)
}
