package legaldoc

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/demowin23/vilaw-be/lifecycle"
	"github.com/demowin23/vilaw-be/middleware"
	"github.com/demowin23/vilaw-be/upload"
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
		Limit:            util.ParseLimit(c.DefaultQuery("limit", "10")),
		Offset:           util.ParseOffset(c.DefaultQuery("offset", "0")),
		Search:           c.Query("search"),
		DocumentType:     c.Query("document_type"),
		Status:           c.Query("status"),
		IssuingAuthority: c.Query("issuing_authority"),
		Tags:             util.SplitCSV(c.Query("tags")),
		Pending:          lifecycle.ParsePendingHint(c.Query("isPending")),
		Role:             middleware.CurrentRole(c),
	}

	if v := c.Query("is_important"); v == "true" || v == "false" {
		b := v == "true"
		f.IsImportant = &b
	}

	return f
}

func (h *Handler) List(c *gin.Context) {
	f := parseFilter(c)

	docs, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.PaginatedResponse(c, docs, len(docs), total, f.Limit, f.Offset)
}

func (h *Handler) Popular(c *gin.Context) {
	f := parseFilter(c)

	docs, total, err := h.service.Popular(c.Request.Context(), f)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.PaginatedResponse(c, docs, len(docs), total, f.Limit, f.Offset)
}

func (h *Handler) Pending(c *gin.Context) {
	f := parseFilter(c)

	docs, total, err := h.service.Pending(c.Request.Context(), middleware.CurrentRole(c), f)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.PaginatedResponse(c, docs, len(docs), total, f.Limit, f.Offset)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid document id")
		return
	}

	detail, err := h.service.GetDetail(c.Request.Context(), id)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", detail)
}

// attachedFile saves the optional multipart upload and returns its URL.
// Only Word documents are accepted here.
func attachedFile(c *gin.Context) (*string, int64, bool) {
	file, err := c.FormFile("file")
	if err != nil {
		return nil, 0, true
	}

	if !upload.AllowedDocumentFile(file) {
		util.ErrorResponse(c, http.StatusBadRequest, "Only Word files (.doc, .docx) are allowed")
		return nil, 0, false
	}

	if !upload.WithinSizeLimit(file) {
		util.ErrorResponse(c, http.StatusBadRequest, "File exceeds the 10MB limit")
		return nil, 0, false
	}

	url, size, err := upload.Save(c, file, "legal-doc")
	if err != nil {
		util.ErrorResponse(c, http.StatusInternalServerError, "Failed to store file")
		return nil, 0, false
	}

	return &url, size, true
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBind(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest,
			"Required fields: title, document_number, document_type, issuing_authority, issued_date")
		return
	}

	fileURL, fileSize, ok := attachedFile(c)
	if !ok {
		return
	}

	doc, err := h.service.Create(c.Request.Context(),
		middleware.CurrentUserID(c), middleware.CurrentRole(c), &req, fileURL, fileSize)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.CreatedResponse(c, "Legal document created", doc)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid document id")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	fileURL, fileSize, ok := attachedFile(c)
	if !ok {
		return
	}

	doc, err := h.service.Update(c.Request.Context(), id,
		middleware.CurrentUserID(c), middleware.CurrentRole(c), &req, fileURL, fileSize)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "Legal document updated", doc)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid document id")
		return
	}

	err = h.service.Delete(c.Request.Context(), id,
		middleware.CurrentUserID(c), middleware.CurrentRole(c))
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "Legal document deleted", nil)
}

func (h *Handler) Approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid document id")
		return
	}

	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "is_approved is required")
		return
	}

	doc, err := h.service.Approve(c.Request.Context(), id, middleware.CurrentRole(c), *req.IsApproved)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	message := "Legal document approved"
	if !*req.IsApproved {
		message = "Legal document rejected"
	}
	util.SuccessResponse(c, message, doc)
}

func (h *Handler) Download(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid document id")
		return
	}

	path, name, err := h.service.Download(c.Request.Context(), id)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	c.FileAttachment(path, name)
}

func (h *Handler) GenerateViewURL(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid document id")
		return
	}

	token, err := h.service.GenerateViewURL(c.Request.Context(), id)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "View URL generated", gin.H{
		"url": "/api/v1/legal-documents/view/" + token,
	})
}

func (h *Handler) ViewDocument(c *gin.Context) {
	path, err := h.service.ResolveViewToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	c.File(path)
}

func (h *Handler) Types(c *gin.Context) {
	util.SuccessResponse(c, "OK", h.service.Types())
}

func (h *Handler) Statuses(c *gin.Context) {
	util.SuccessResponse(c, "OK", h.service.Statuses())
}
