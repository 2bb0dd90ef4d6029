package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sigi_backend/internals/configs"
	authModel "sigi_backend/internals/features/users/auth/model"
	userModel "sigi_backend/internals/features/users/user/model"
	"sigi_backend/internals/policy"
)

const (
	LocalsUserID = "user_id"
	LocalsActor  = "actor"
)

// AuthMiddleware authenticates the request and assembles the policy.Actor
// for downstream capability checks. Unauthenticated requests get 401.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// Blacklist check, once per request.
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklistModel
			if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&existing).Error; err == nil {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] blacklist lookup:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		c.Locals(LocalsUserID, userID.String())

		actor, err := loadActor(db, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			if errors.Is(err, errUserInactive) {
				return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
			}
			log.Println("[ERROR] loadActor:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		c.Locals(LocalsActor, actor)

		return c.Next()
	}
}

var errUserInactive = errors.New("user inactive")

// loadActor fetches the user row plus its profile linkage in one round trip
// each; the profile may legitimately be missing.
func loadActor(db *gorm.DB, userID uuid.UUID) (policy.Actor, error) {
	var u userModel.UserModel
	if err := db.Select("id", "is_superuser", "is_active").First(&u, "id = ?", userID).Error; err != nil {
		return policy.Actor{}, err
	}
	if !u.IsActive {
		return policy.Actor{}, errUserInactive
	}

	actor := policy.Actor{
		UserID:      u.ID,
		IsSuperuser: u.IsSuperuser,
	}

	var p userModel.UserProfileModel
	err := db.Select("user_profile_institution_id", "user_profile_is_institution_admin").
		First(&p, "user_profile_user_id = ?", userID).Error
	switch {
	case err == nil:
		actor.InstitutionID = p.UserProfileInstitutionID
		actor.IsInstitutionAdmin = p.UserProfileIsInstitutionAdmin
	case errors.Is(err, gorm.ErrRecordNotFound):
		// unaffiliated; nothing to attach
	default:
		return policy.Actor{}, err
	}
	return actor, nil
}

// ActorFromLocals returns the actor the middleware stored, if any.
func ActorFromLocals(c *fiber.Ctx) (policy.Actor, bool) {
	a, ok := c.Locals(LocalsActor).(policy.Actor)
	return a, ok
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(authHeader, "Bearer ") {
		if tok := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")); tok != "" {
			return tok, nil
		}
	}
	if tok := strings.TrimSpace(c.Cookies("access_token")); tok != "" {
		return tok, nil
	}
	return "", errors.New("Unauthorized - Missing token")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	exp := time.Unix(int64(expFloat), 0)
	if time.Now().After(exp.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"].(string)
	if !ok || raw == "" {
		if sub, okSub := claims["sub"].(string); okSub {
			raw = sub
		}
	}
	if raw == "" {
		return uuid.Nil, errors.New("missing user_id claim")
	}
	return uuid.Parse(raw)
}
