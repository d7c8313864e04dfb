package middleware

import (
	"strings"

	"github.com/haierkeys/second-brain-service/pkg/app"
	"github.com/haierkeys/second-brain-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// UserAuthToken 用户 Token 认证中间件（使用注入的校验器）
// Accepts the bearer token from the Authorization header only.
func UserAuthToken(verifier app.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := app.NewResponse(c)

		var token string
		if s := c.GetHeader("Authorization"); s != "" {
			token = strings.TrimSpace(strings.TrimPrefix(s, "Bearer"))
		}

		if token == "" {
			response.ToResponse(code.ErrorNotUserAuthToken)
			c.Abort()
			return
		}

		if verifier == nil {
			response.ToResponse(code.ErrorInvalidUserAuthToken)
			c.Abort()
			return
		}

		claims, err := verifier.VerifyToken(token)
		if err != nil {
			response.ToResponse(code.ErrorInvalidUserAuthToken)
			c.Abort()
			return
		}
		c.Set(app.ClaimsContextKey, claims)

		c.Next()
	}
}
