package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sigi_backend/internals/features/users/user/dto"
	"sigi_backend/internals/features/users/user/model"
	"sigi_backend/internals/features/users/user/service"
	helper "sigi_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	Service *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{Service: service.NewUserService(db)}
}

// GET /api/a/users
func (ctrl *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	search := c.Query("search")

	users, profiles, total, err := ctrl.Service.List(c.UserContext(), paging.Offset, paging.Limit, search)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list users")
	}

	byUser := make(map[uuid.UUID]*model.UserProfileModel, len(profiles))
	for i := range profiles {
		byUser[profiles[i].UserProfileUserID] = &profiles[i]
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.ToUserResponse(&users[i], byUser[users[i].ID]))
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"users":      out,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// GET /api/a/users/:id
func (ctrl *UserController) Detail(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid UUID")
	}

	user, profile, err := ctrl.Service.Get(c.UserContext(), id)
	if errors.Is(err, service.ErrUserNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}
	return helper.JsonOK(c, "OK", dto.ToUserResponse(user, profile))
}

// POST /api/a/users
func (ctrl *UserController) Create(c *fiber.Ctx) error {
	var body dto.UserCreateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, profile, err := ctrl.Service.CreateWithProfile(c.UserContext(), &body)
	if err != nil {
		return ctrl.mapServiceError(c, err, "Failed to create user")
	}
	return helper.JsonCreated(c, "User created", dto.ToUserResponse(user, profile))
}

// PUT /api/a/users/:id
func (ctrl *UserController) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid UUID")
	}

	var body dto.UserUpdateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, profile, err := ctrl.Service.UpdateWithProfile(c.UserContext(), id, &body)
	if err != nil {
		return ctrl.mapServiceError(c, err, "Failed to update user")
	}
	return helper.JsonOK(c, "User updated", dto.ToUserResponse(user, profile))
}

// DELETE /api/a/users/:id
func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid UUID")
	}

	err := ctrl.Service.Delete(c.UserContext(), id)
	if errors.Is(err, service.ErrUserNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	return helper.JsonOK(c, "User deleted", nil)
}

func (ctrl *UserController) mapServiceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrEmailTaken):
		return helper.JsonErrorWithFields(c, fiber.StatusConflict, "Validation failed",
			map[string]string{"email": "Email already in use"})
	case errors.Is(err, service.ErrUserNameTaken):
		return helper.JsonErrorWithFields(c, fiber.StatusConflict, "Validation failed",
			map[string]string{"user_name": "User name already in use"})
	case errors.Is(err, service.ErrRoleRequiresInst):
		return helper.JsonErrorWithFields(c, fiber.StatusBadRequest, "Validation failed",
			map[string]string{"institution_id": "Role, rank and functions require an institution"})
	case errors.Is(err, service.ErrRoleNotInScope):
		return helper.JsonErrorWithFields(c, fiber.StatusBadRequest, "Validation failed",
			map[string]string{"role_id": "Role does not belong to the selected institution"})
	case errors.Is(err, service.ErrRankNotInScope):
		return helper.JsonErrorWithFields(c, fiber.StatusBadRequest, "Validation failed",
			map[string]string{"rank_id": "Rank does not belong to the selected institution"})
	case errors.Is(err, service.ErrFunctionNotInScope):
		return helper.JsonErrorWithFields(c, fiber.StatusBadRequest, "Validation failed",
			map[string]string{"function_ids": "One or more functions do not belong to the selected institution"})
	case helper.IsUniqueViolation(err, "uq_user_profiles_cpf"):
		return helper.JsonErrorWithFields(c, fiber.StatusConflict, "Validation failed",
			map[string]string{"cpf": "CPF already in use"})
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
}

func parseIDParam(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
