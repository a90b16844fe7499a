package middleware

import (
	"github.com/gin-gonic/gin"

	"flowsite-backend/internal/shared/locale"
)

const LocaleKey = "locale"

// LocaleFromPath resolves the :locale route segment and stores it in
// the request context. Unknown segments resolve to the default locale
// instead of 404ing, matching how the site itself routes.
func LocaleFromPath() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(LocaleKey, locale.Resolve(c.Param("locale")))
		c.Next()
	}
}

// GetLocale reads the resolved locale from the request context.
func GetLocale(c *gin.Context) locale.Locale {
	if v, ok := c.Get(LocaleKey); ok {
		if l, ok := v.(locale.Locale); ok {
			return l
		}
	}
	return locale.Default
}
