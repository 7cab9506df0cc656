package middleware

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ExemptRoute is a method+path pattern the auth gate lets through without a
// token.
type ExemptRoute struct {
	Pattern *regexp.Regexp
	Methods []string
}

func (e ExemptRoute) matches(method, path string) bool {
	if !e.Pattern.MatchString(path) {
		return false
	}
	for _, m := range e.Methods {
		if m == method {
			return true
		}
	}
	return false
}

// DefaultExemptions mirrors the public surface: product, category and order
// reads, the served uploads, and the login/register endpoints.
func DefaultExemptions(apiRoot, publicUploadPath string) []ExemptRoute {
	root := regexp.QuoteMeta(apiRoot)
	uploads := regexp.QuoteMeta(publicUploadPath)
	reads := []string{http.MethodGet, http.MethodOptions}
	return []ExemptRoute{
		{Pattern: regexp.MustCompile("^" + root + "/products(/.*)?$"), Methods: reads},
		{Pattern: regexp.MustCompile("^" + root + "/categories(/.*)?$"), Methods: reads},
		{Pattern: regexp.MustCompile("^" + root + "/orders(/.*)?$"), Methods: reads},
		{Pattern: regexp.MustCompile("^" + uploads + "(/.*)?$"), Methods: reads},
		{Pattern: regexp.MustCompile("^" + root + "/users/login$"), Methods: []string{http.MethodPost}},
		{Pattern: regexp.MustCompile("^" + root + "/users/register$"), Methods: []string{http.MethodPost}},
	}
}

// AuthRequired verifies bearer tokens on everything outside the exemption
// list. Any valid, unexpired token passes; the isAdmin claim is carried into
// the context but not enforced here.
func AuthRequired(secret string, exempt []ExemptRoute) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		for _, route := range exempt {
			if route.matches(c.Request.Method, c.Request.URL.Path) {
				c.Next()
				return
			}
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header is missing"})
			return
		}
		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header must use the Bearer scheme"})
			return
		}
		tokenString := strings.TrimPrefix(header, bearerPrefix)

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected token signing method")
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}
		if userID, ok := claims["userId"].(float64); ok {
			c.Set("userId", uint(userID))
		}
		if isAdmin, ok := claims["isAdmin"].(bool); ok {
			c.Set("isAdmin", isAdmin)
		}

		c.Next()
	}
}
