package middleware

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nao1215/folio/pkg/httpclient"
)

// headerKeyRequestID はリクエストIDを受け渡すHTTPヘッダーキー。
const headerKeyRequestID = "X-Request-ID"

// RequestID はリクエストごとにIDを発行するGinミドルウェアを返す。
// 受信リクエストにX-Request-IDがあればそれを引き継ぎ、なければUUIDを発行する。
// IDはレスポンスヘッダーに設定し、バックエンドへの通信で伝播されるようコンテキストに格納する。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerKeyRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Header(headerKeyRequestID, id)
		c.Request = c.Request.WithContext(httpclient.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// AmbientCredentials は受信リクエストのCookieをコンテキストに格納するGinミドルウェアを返す。
// ブラウザと同様に、以降のバックエンド呼び出しすべてでCookieが転送されるようになる。
func AmbientCredentials() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookies := c.Request.Cookies(); len(cookies) > 0 {
			c.Request = c.Request.WithContext(httpclient.WithCookies(c.Request.Context(), cookies))
		}
		c.Next()
	}
}

// Logger はリクエストごとにアクセスログを出力するGinミドルウェアを返す。
func Logger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"request_id", httpclient.RequestIDFromContext(c.Request.Context()),
		)
	}
}
