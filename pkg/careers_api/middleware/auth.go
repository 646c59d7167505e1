package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminCredentials holds the configured shared admin credential pair. The
// password may be supplied as a bcrypt hash; a plain value is compared in
// constant time.
type AdminCredentials struct {
	Login    string
	Password string
}

func (c AdminCredentials) match(login, password string) bool {
	loginOK := subtle.ConstantTimeCompare([]byte(c.Login), []byte(login)) == 1

	var passwordOK bool
	if strings.HasPrefix(c.Password, "$2") {
		passwordOK = bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(password)) == nil
	} else {
		passwordOK = subtle.ConstantTimeCompare([]byte(c.Password), []byte(password)) == 1
	}

	// Evaluate both halves before combining so a mismatch never reveals
	// which one failed.
	return loginOK && passwordOK
}

// RequireAdmin guards the admin surface with HTTP Basic Authentication.
// Failed attempts are rate limited per client address.
func RequireAdmin(creds AdminCredentials, limiter *FailureLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if limiter != nil && limiter.Blocked(ip) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many failed authentication attempts"})
			return
		}

		login, password, ok := c.Request.BasicAuth()
		if !ok || !creds.match(login, password) {
			if ok && limiter != nil {
				limiter.Record(ip)
			}
			c.Header("WWW-Authenticate", `Basic realm="careers-admin"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		c.Next()
	}
}
