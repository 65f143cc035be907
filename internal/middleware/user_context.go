package middleware

import (
	"errors"

	"violation-tracker/internal/database"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InjectUser loads the session's officer for templates and handlers.
// A session pointing at a missing user is cleared.
func InjectUser(users database.UserRepository, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := SessionUserID(c)
		if !ok {
			c.Next()
			return
		}

		user, err := users.GetByID(c.Request.Context(), uid)
		switch {
		case err == nil:
			c.Set(currentUserKey, user)
		case errors.Is(err, database.ErrNotFound):
			log.Warnw("session references unknown user", "user_id", uid)
			_ = EndSession(c)
		default:
			log.Errorw("failed to load session user", "user_id", uid, "err", err)
		}

		c.Next()
	}
}
