package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/alcha/dashboard-api/internal/service"
	"github.com/gin-gonic/gin"
)

const dateFormat = "2006-01-02"

// statusClientClosedRequest 对应客户端提前断开（nginx 499 约定）
const statusClientClosedRequest = 499

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondServiceError 将 service 层错误统一映射为 HTTP 状态码
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVehicleNotFound),
		errors.Is(err, service.ErrScoreNotFound),
		errors.Is(err, service.ErrHabitNotFound),
		errors.Is(err, service.ErrUsedCarNotFound),
		errors.Is(err, service.ErrInsuranceNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidDays),
		errors.Is(err, service.ErrInvalidRange),
		errors.Is(err, service.ErrInvalidMonth):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrStoreUnavailable):
		respondError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, context.Canceled):
		c.AbortWithStatus(statusClientClosedRequest)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(c, http.StatusGatewayTimeout, "request timed out")
	default:
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}

// parseDateQuery 解析 YYYY-MM-DD 查询参数，缺失时返回 nil
func parseDateQuery(c *gin.Context, key string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateFormat, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s, use YYYY-MM-DD", key)
	}
	return &t, nil
}

// parseTimeQuery 解析 ISO-8601 时间查询参数，接受带或不带时区的写法
func parseTimeQuery(c *gin.Context, key string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", dateFormat} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid %s, use ISO 8601", key)
}

func fmtDate(t time.Time) string {
	return t.Format(dateFormat)
}

func fmtDatePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return fmtDate(*t)
}
