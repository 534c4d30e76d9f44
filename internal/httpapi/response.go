package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"

	DefaultPageSize = 10
	MaxPageSize     = 100
)

type Envelope struct {
	Status  string                           `json:"status"`
	Message string                           `json:"message,omitempty"`
	Data    any                              `json:"data,omitempty"`
	Errors  []apperror.FieldError            `json:"errors,omitempty"`
	Error   *apperror.InsufficientStockError `json:"error,omitempty"`
}

type Page struct {
	Items    any `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Status: StatusSuccess, Message: message, Data: data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{Status: StatusSuccess, Message: message, Data: data})
}

func List(c *gin.Context, message string, items any, total, page, pageSize int) {
	OK(c, message, Page{Items: items, Total: total, Page: page, PageSize: pageSize})
}

func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Envelope{Status: StatusError, Message: message})
}

// Fail writes err using the status its taxonomy maps to. Unclassified
// errors are logged and reported generically.
func Fail(c *gin.Context, log logger.ZapLogger, err error) {
	var (
		verr  *apperror.ValidationError
		nf    *apperror.NotFoundError
		stock *apperror.InsufficientStockError
		rule  *apperror.BusinessRuleError
	)

	switch {
	case errors.As(err, &verr):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, Envelope{
			Status:  StatusError,
			Message: "validation failed",
			Errors:  verr.Fields,
		})
	case errors.As(err, &nf):
		c.AbortWithStatusJSON(http.StatusNotFound, Envelope{Status: StatusError, Message: nf.Error()})
	case errors.As(err, &stock):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, Envelope{
			Status:  StatusError,
			Message: stock.Error(),
			Error:   stock,
		})
	case errors.As(err, &rule):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, Envelope{Status: StatusError, Message: rule.Message})
	default:
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("request_id", RequestID(c)),
			zap.Error(err),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, Envelope{Status: StatusError, Message: "internal server error"})
	}
}

// ParseID reads a positive integer path parameter. It writes a 400 and
// returns false when the value is malformed.
func ParseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// QueryID reads an optional positive integer query parameter. Zero means absent.
func QueryID(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// Pagination reads page and page_size, clamping them to sane bounds.
func Pagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(DefaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// BindJSON decodes the request body. It writes a 400 and returns false on
// malformed JSON.
func BindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return false
	}
	return true
}
