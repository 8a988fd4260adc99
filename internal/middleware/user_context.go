package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"hr-manager/internal/database"
	"hr-manager/internal/models"
)

const ContextUserKey = "CurrentUser"

// InjectUser loads the session's user onto the request context so handlers
// can read role and client scoping without touching the session again.
func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get("user_id"); uidRaw != nil {
			if uid, ok := uidRaw.(uint); ok && uid > 0 {
				var user models.User
				if err := database.DB.First(&user, uid).Error; err == nil {
					c.Set(ContextUserKey, user)
				}
			}
		}

		c.Next()
	}
}

// CurrentUser returns the user placed on the context by InjectUser.
func CurrentUser(c *gin.Context) (models.User, bool) {
	val, ok := c.Get(ContextUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := val.(models.User)
	return user, ok
}
