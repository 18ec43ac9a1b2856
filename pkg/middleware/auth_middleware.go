package middleware

import (
	"strings"

	"kitchen-service/internal/auth"
	"kitchen-service/internal/services"
	"kitchen-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware validates the bearer token and attaches the user to the
// request. The username becomes the actor recorded by the services.
func AuthMiddleware(jwtManager *auth.JWTManager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Missing authorization header",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			abort(c, errors.NewUnauthorized("missing authorization header", "Header: Authorization"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			logger.Warn("Invalid authorization header format",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			abort(c, errors.NewUnauthorized("invalid authorization header format", "Expected: Bearer <token>"))
			return
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			if err == auth.ErrExpiredToken {
				abort(c, errors.NewUnauthorized("token expired", "Token has expired, please login again"))
				return
			}
			abort(c, errors.NewUnauthorized("invalid token", err.Error()))
			return
		}

		c.Set("username", claims.Username)
		c.Set("role", string(claims.Role))
		c.Request = c.Request.WithContext(services.WithActor(c.Request.Context(), claims.Username))

		logger.Debug("Token validated",
			zap.String("username", claims.Username),
			zap.String("role", string(claims.Role)),
			zap.String("path", c.Request.URL.Path),
		)

		c.Next()
	}
}

// RequireRole lets the request through only for the listed roles. It must
// run after AuthMiddleware.
func RequireRole(logger *zap.Logger, roles ...auth.Role) gin.HandlerFunc {
	allowed := make(map[auth.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		role := auth.Role(c.GetString("role"))
		if _, ok := allowed[role]; !ok {
			logger.Warn("Role not allowed",
				zap.String("username", c.GetString("username")),
				zap.String("role", string(role)),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			abort(c, errors.NewForbidden(string(role)))
			return
		}
		c.Next()
	}
}

func abort(c *gin.Context, err *errors.StandardError) {
	c.AbortWithStatusJSON(err.HTTPStatus(), err)
}
