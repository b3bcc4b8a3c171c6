package middleware

import "github.com/gin-gonic/gin"

// usernameKey is the key used to store the authenticated principal's username
// in the request context.
const usernameKey = contextKey("username")

// GetUsernameFromContext retrieves the authenticated username from the Gin
// context. It returns the username and a boolean indicating if it was found.
func GetUsernameFromContext(c *gin.Context) (string, bool) {
	val := c.Request.Context().Value(usernameKey)
	if val == nil {
		return "", false
	}

	username, ok := val.(string)
	if !ok {
		return "", false
	}

	return username, true
}
