package chat

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

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

func conversationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("conversationId"), 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid conversation id")
		return 0, false
	}
	return id, true
}

func (h *Handler) Conversations(c *gin.Context) {
	conversations, err := h.service.Conversations(c.Request.Context(),
		middleware.CurrentUserID(c), middleware.CurrentRole(c))
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", conversations)
}

func (h *Handler) AllConversations(c *gin.Context) {
	limit := util.ParseLimit(c.DefaultQuery("limit", "20"))
	offset := util.ParseOffset(c.DefaultQuery("offset", "0"))

	conversations, total, err := h.service.AllConversations(c.Request.Context(),
		middleware.CurrentUserID(c), middleware.CurrentRole(c),
		c.Query("status"), limit, offset)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.PaginatedResponse(c, conversations, len(conversations), total, limit, offset)
}

func (h *Handler) CreateConversation(c *gin.Context) {
	var req CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	conversation, err := h.service.CreateConversation(c.Request.Context(),
		middleware.CurrentUserID(c), &req)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.CreatedResponse(c, "Conversation created", conversation)
}

func (h *Handler) Messages(c *gin.Context) {
	id, ok := conversationID(c)
	if !ok {
		return
	}

	messages, err := h.service.Messages(c.Request.Context(), id,
		middleware.CurrentUserID(c), middleware.CurrentRole(c))
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", messages)
}

func (h *Handler) SendMessage(c *gin.Context) {
	id, ok := conversationID(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBind(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var fileURL, fileName *string
	var fileSize *int64
	if file, err := c.FormFile("file"); err == nil {
		if !upload.WithinSizeLimit(file) {
			util.ErrorResponse(c, http.StatusBadRequest, "File exceeds the 10MB limit")
			return
		}
		url, size, err := upload.Save(c, file, "chat")
		if err != nil {
			util.ErrorResponse(c, http.StatusInternalServerError, "Failed to store file")
			return
		}
		fileURL = &url
		fileName = &file.Filename
		fileSize = &size
	}

	message, err := h.service.SendMessage(c.Request.Context(), id,
		middleware.CurrentUserID(c), middleware.CurrentRole(c),
		&req, fileURL, fileName, fileSize)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.CreatedResponse(c, "Message sent", message)
}

func (h *Handler) MarkAsRead(c *gin.Context) {
	id, ok := conversationID(c)
	if !ok {
		return
	}

	err := h.service.MarkAsRead(c.Request.Context(), id,
		middleware.CurrentUserID(c), middleware.CurrentRole(c))
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "Messages marked as read", nil)
}

func (h *Handler) AvailableLawyers(c *gin.Context) {
	lawyers, err := h.service.AvailableLawyers(c.Request.Context())
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", lawyers)
}

func (h *Handler) UpdateOnlineStatus(c *gin.Context) {
	var req OnlineStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "is_online is required")
		return
	}

	err := h.service.SetOnlineStatus(c.Request.Context(),
		middleware.CurrentUserID(c), *req.IsOnline)
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "Online status updated", nil)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context(), middleware.CurrentRole(c))
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", stats)
}

func (h *Handler) DetailedStats(c *gin.Context) {
	stats, activity, err := h.service.DetailedStats(c.Request.Context(), middleware.CurrentRole(c))
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", gin.H{
		"stats":           stats,
		"recent_activity": activity,
	})
}

func (h *Handler) ConversationDetail(c *gin.Context) {
	id, ok := conversationID(c)
	if !ok {
		return
	}

	detail, err := h.service.ConversationDetail(c.Request.Context(), id, middleware.CurrentRole(c))
	if err != nil {
		util.ErrorFromService(c, err)
		return
	}

	util.SuccessResponse(c, "OK", detail)
}
