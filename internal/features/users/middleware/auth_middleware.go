package users_middleware

import (
	"net/http"
	"strings"

	users_models "taskboard-backend/internal/features/users/models"
	users_services "taskboard-backend/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

// AuthMiddleware resolves the bearer token into a user and attaches it
// to the request context. Requests without a valid token are rejected
// before any handler runs.
func AuthMiddleware(userService *users_services.UserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ExtractBearerToken(ctx)
		if token == "" {
			ctx.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "Not authorized, no token"},
			)
			return
		}

		user, err := userService.GetUserFromToken(token)
		if err != nil {
			ctx.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "Not authorized, token failed"},
			)
			return
		}

		ctx.Set(userContextKey, user)
		ctx.Next()
	}
}

// ExtractBearerToken reads the token from the Authorization header,
// falling back to the "token" query parameter for websocket handshakes.
func ExtractBearerToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return ctx.Query("token")
}

func GetUserFromContext(ctx *gin.Context) (*users_models.User, bool) {
	value, exists := ctx.Get(userContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*users_models.User)

	return user, ok
}
