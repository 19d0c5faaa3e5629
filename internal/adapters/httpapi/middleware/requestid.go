package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

// RequestID شناسه درخواست را از هدر می‌خواند یا یک UUID جدید می‌سازد
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.Must(uuid.NewV4()).String()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID شناسه ذخیره‌شده در context؛ اگر middleware اجرا نشده باشد رشته خالی
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
