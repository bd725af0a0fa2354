package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pregen/shop-api/internal/domain/entity"
	"github.com/pregen/shop-api/internal/handler/http/dto"
)

// Role gates, built once at start-up. They must run after AuthMiddleWare.
var (
	RequireSuperAdmin = RequireRoles(entity.UserRoleSuperAdmin)
	RequireAdmin      = RequireRoles(entity.UserRoleAdmin, entity.UserRoleSuperAdmin)
	RequireTeacher    = RequireRoles(entity.UserRoleTeacher, entity.UserRoleAdmin, entity.UserRoleSuperAdmin)
	RequireStudent    = RequireRoles(entity.AllRoles()...)
)

// RequireRoles admits identities whose role is in roles. With no roles any
// authenticated identity passes.
func RequireRoles(roles ...entity.UserRole) gin.HandlerFunc {
	allowed := entity.RoleSet(roles)
	required := allowed.Strings()
	if len(roles) == 0 {
		required = entity.RoleSet(entity.AllRoles()).Strings()
	}
	message := fmt.Sprintf("Access denied. Required role(s): %s", strings.Join(required, ", "))

	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authentication required"})
			return
		}
		if !allowed.Contains(user.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.AccessDeniedResponse{
				Error:         message,
				RequiredRoles: required,
				YourRole:      string(user.Role),
			})
			return
		}
		c.Next()
	}
}
