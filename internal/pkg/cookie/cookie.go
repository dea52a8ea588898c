package cookie

import (
	"github.com/gin-gonic/gin"
)

const AuthTokenCookieName = "auth_token"

// SetAuthToken stores the opaque login token as a session cookie. The
// frontend reads it directly, so HttpOnly stays off.
func SetAuthToken(c *gin.Context, token string) {
	c.SetCookie(
		AuthTokenCookieName,
		token,
		0, // session cookie
		"/",
		"",
		false,
		false, // not HttpOnly
	)
}

func ClearAuthToken(c *gin.Context) {
	c.SetCookie(
		AuthTokenCookieName,
		"",
		-1,
		"/",
		"",
		false,
		false,
	)
}

func GetAuthToken(c *gin.Context) string {
	token, _ := c.Cookie(AuthTokenCookieName)
	return token
}
