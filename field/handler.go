package field

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/demowin23/vilaw-be/lifecycle"
	"github.com/demowin23/vilaw-be/middleware"
	"github.com/demowin23/vilaw-be/util"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func parseFilter(c *gin.Context) *ListFilter {
	f := &ListFilter{
		Limit:   util.ParseLimit(c.DefaultQuery("limit", "50")),
		Offset:  util.ParseOffset(c.DefaultQuery("offset", "0")),
		Search:  c.Query("search"),
		Pending: lifecycle.ParsePendingHint(c.Query("isPending")),
		Role:    middleware.CurrentRole(c),
	}
	if raw := c.Query("is_active"); raw != "" {
		active := raw == "true"
		f.IsActive = &active
	}
	return f
}

func (h *Handler) List(c *gin.Context) {
	f := parseFilter(c)

	items, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.PaginatedResponse(c, items, len(items), total, f.Limit, f.Offset)
}

func (h *Handler) Dropdown(c *gin.Context) {
	items, err := h.service.Dropdown(c.Request.Context())
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", items)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid field id")
		return
	}

	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", item)
}

func (h *Handler) GetBySlug(c *gin.Context) {
	item, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", item)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "name is required")
		return
	}

	item, err := h.service.Create(c.Request.Context(),
		middleware.CurrentUserID(c), middleware.CurrentRole(c), &req)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.CreatedResponse(c, "Legal field created", item)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid field id")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "Legal field updated", item)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid field id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "Legal field deleted", nil)
}

func (h *Handler) DeletePermanent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid field id")
		return
	}

	err = h.service.DeletePermanent(c.Request.Context(), id, middleware.CurrentRole(c))
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "Legal field permanently deleted", nil)
}

func (h *Handler) Pending(c *gin.Context) {
	items, err := h.service.Pending(c.Request.Context(), middleware.CurrentRole(c))
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", items)
}

func (h *Handler) Approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid field id")
		return
	}

	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "is_approved is required")
		return
	}

	item, err := h.service.Approve(c.Request.Context(), id, middleware.CurrentRole(c), *req.IsApproved)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	message := "Legal field approved"
	if !*req.IsApproved {
		message = "Legal field rejected"
	}
	util.SuccessResponse(c, message, item)
}
