package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sigi_backend/internals/features/users/auth/dto"
	authModel "sigi_backend/internals/features/users/auth/model"
	authService "sigi_backend/internals/features/users/auth/service"
	userDTO "sigi_backend/internals/features/users/user/dto"
	userModel "sigi_backend/internals/features/users/user/model"
	userService "sigi_backend/internals/features/users/user/service"
	helper "sigi_backend/internals/helpers"
	"sigi_backend/internals/middlewares"
	authMiddleware "sigi_backend/internals/middlewares/auth"
)

var validate = validator.New()

type AuthController struct {
	DB    *gorm.DB
	Users *userService.UserService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Users: userService.NewUserService(db)}
}

// POST /api/auth/register
// Self-registration creates an unaffiliated account; an administrator links
// it to an institution later.
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, profile, err := ctrl.Users.CreateWithProfile(c.UserContext(), &userDTO.UserCreateRequest{
		UserName:  body.UserName,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Password:  body.Password,
	})
	switch {
	case errors.Is(err, userService.ErrEmailTaken):
		return helper.JsonErrorWithFields(c, fiber.StatusConflict, "Validation failed",
			map[string]string{"email": "Email already in use"})
	case errors.Is(err, userService.ErrUserNameTaken):
		return helper.JsonErrorWithFields(c, fiber.StatusConflict, "Validation failed",
			map[string]string{"user_name": "User name already in use"})
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register")
	}

	return helper.JsonCreated(c, "Account created", userDTO.ToUserResponse(user, profile))
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ident := strings.ToLower(strings.TrimSpace(body.Identifier))
	var user userModel.UserModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Where("LOWER(email) = ? OR LOWER(user_name) = ?", ident, ident).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to login")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	return ctrl.issueTokens(c, &user, "Login successful")
}

// POST /api/auth/refresh
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var body dto.RefreshRequest
	_ = c.BodyParser(&body)
	tokenString := body.RefreshToken
	if tokenString == "" {
		tokenString = c.Cookies("refresh_token")
	}
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing refresh token")
	}

	userID, err := authService.ParseRefreshToken(tokenString)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	var user userModel.UserModel
	err = ctrl.DB.WithContext(c.UserContext()).First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to refresh")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	return ctrl.issueTokens(c, &user, "Token refreshed")
}

// POST /api/auth/logout
// Blacklists the presented access token until its natural expiry.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString := strings.TrimSpace(c.Get("Authorization"))
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer"))
	if tokenString == "" {
		tokenString = strings.TrimSpace(c.Cookies("access_token"))
	}
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing token")
	}

	row := authModel.TokenBlacklistModel{
		Token:     tokenString,
		ExpiredAt: authService.AccessTokenExpiry(tokenString),
	}
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where(authModel.TokenBlacklistModel{Token: tokenString}).
		FirstOrCreate(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to logout")
	}

	// Any managing-institution context dies with the session.
	if sess, err := middlewares.GetSession(c); err == nil {
		_ = sess.Destroy()
	}

	expireCookie(c, "access_token")
	expireCookie(c, "refresh_token")
	return helper.JsonOK(c, "Logout successful", nil)
}

// POST /api/u/change-password
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	actor, ok := authMiddleware.ActorFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.ChangePasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&user, "id = ?", actor.UserID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to change password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.CurrentPassword)) != nil {
		return helper.JsonErrorWithFields(c, fiber.StatusBadRequest, "Validation failed",
			map[string]string{"current_password": "Current password is incorrect"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to change password")
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&user).
		Update("password", string(hash)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to change password")
	}
	return helper.JsonOK(c, "Password changed", nil)
}

// GET /api/u/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	actor, ok := authMiddleware.ActorFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, profile, err := ctrl.Users.Get(c.UserContext(), actor.UserID)
	if errors.Is(err, userService.ErrUserNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load account")
	}
	return helper.JsonOK(c, "OK", userDTO.ToUserResponse(user, profile))
}

func (ctrl *AuthController) issueTokens(c *fiber.Ctx, user *userModel.UserModel, message string) error {
	access, err := authService.GenerateAccessToken(user.ID, user.IsSuperuser)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	refresh, err := authService.GenerateRefreshToken(user.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	setAuthCookie(c, "access_token", access, authService.AccessTokenTTL)
	setAuthCookie(c, "refresh_token", refresh, authService.RefreshTokenTTL)

	// Tokens are already issued; a profile read failure only trims the payload.
	u, p, _ := ctrl.Users.Get(c.UserContext(), user.ID)
	if u == nil {
		u = user
	}
	return helper.JsonOK(c, message, dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         userDTO.ToUserResponse(u, p),
	})
}

func setAuthCookie(c *fiber.Ctx, name, value string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func expireCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}
