package util

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/demowin23/vilaw-be/lifecycle"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ListResponse struct {
	Status     string      `json:"status"`
	Data       interface{} `json:"data"`
	Count      int         `json:"count"`
	Total      int64       `json:"total"`
	Pagination Pagination  `json:"pagination"`
}

type Pagination struct {
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"`
}

func SuccessResponse(ctx *gin.Context, message string, data interface{}) {
	ctx.JSON(http.StatusOK, Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func CreatedResponse(ctx *gin.Context, message string, data interface{}) {
	ctx.JSON(http.StatusCreated, Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func PaginatedResponse(ctx *gin.Context, data interface{}, count int, total int64, limit, offset int) {
	ctx.JSON(http.StatusOK, ListResponse{
		Status: "success",
		Data:   data,
		Count:  count,
		Total:  total,
		Pagination: Pagination{
			Limit:  limit,
			Offset: offset,
			Total:  total,
		},
	})
}

func ErrorResponse(ctx *gin.Context, statusCode int, message string) {
	ctx.JSON(statusCode, Response{
		Status:  "error",
		Message: message,
	})
}

// ErrorFromService maps the shared error kinds to HTTP status codes. Anything
// unrecognized is an internal error.
func ErrorFromService(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, lifecycle.ErrValidation):
		ErrorResponse(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, lifecycle.ErrForbidden):
		ErrorResponse(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, lifecycle.ErrNotFound):
		ErrorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, lifecycle.ErrConflict):
		ErrorResponse(ctx, http.StatusConflict, err.Error())
	default:
		ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
	}
}
