package middleware

import (
	"violation-tracker/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionUserKey = "user_id"
	currentUserKey = "CurrentUser"
)

// StartSession binds the session to userID.
func StartSession(c *gin.Context, userID uint) error {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Set(sessionUserKey, userID)
	return sess.Save()
}

// EndSession drops everything stored in the session cookie.
func EndSession(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	return sess.Save()
}

// SessionUserID reports the officer bound to the current session.
func SessionUserID(c *gin.Context) (uint, bool) {
	uid, ok := sessions.Default(c).Get(sessionUserKey).(uint)
	return uid, ok && uid > 0
}

// CurrentUser returns the user loaded by InjectUser.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok
}
