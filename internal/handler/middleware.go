package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session value keys. The session only ever holds these three entries.
const (
	sessionKeyLoggedIn  = "loggedIn"
	sessionKeyUserName  = "userName"
	sessionKeyUserEmail = "userEmail"
)

// loggedOutMessage is matched by substring on the client to force a
// re-login, so the exact text is part of the contract.
const loggedOutMessage = "error: logged out"

// RequireLogin rejects requests without an authenticated session.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		loggedIn, _ := sess.Get(sessionKeyLoggedIn).(bool)
		if !loggedIn {
			c.String(http.StatusUnauthorized, loggedOutMessage)
			c.Abort()
			return
		}
		c.Next()
	}
}

func sessionUserName(c *gin.Context) string {
	name, _ := sessions.Default(c).Get(sessionKeyUserName).(string)
	return name
}

func sessionID(c *gin.Context) string {
	return sessions.Default(c).ID()
}

// parseID validates a numeric path parameter.
func parseID(param string) (uint, error) {
	if param == "" || len(param) > 100 {
		return 0, strconv.ErrSyntax
	}
	id, err := strconv.ParseUint(param, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
