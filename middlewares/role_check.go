package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickbite/quickbite-app/utils"
)

// RequireStaff guards the dashboard routes. Admin implies staff.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		if userRole != "staff" && userRole != "admin" {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("staff access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}
