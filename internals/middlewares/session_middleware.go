package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Single session store for the whole app. The only domain key it carries is
// constants.SessionManagingInstitutionID; everything else stays in the JWT.
var sessionStore = session.New(session.Config{
	Expiration:     12 * time.Hour,
	KeyLookup:      "cookie:sigi_session",
	CookieHTTPOnly: true,
	CookieSameSite: "Lax",
})

// GetSession returns the request's session.
func GetSession(c *fiber.Ctx) (*session.Session, error) {
	return sessionStore.Get(c)
}
