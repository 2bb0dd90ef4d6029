package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sigi_backend/internals/constants"
	hierarchyModel "sigi_backend/internals/features/institutions/hierarchy/model"
	"sigi_backend/internals/features/users/user/dto"
	"sigi_backend/internals/features/users/user/model"
)

// Sentinel errors the controller maps to field-level responses.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrUserNameTaken      = errors.New("user name already in use")
	ErrCPFTaken           = errors.New("cpf already in use")
	ErrRoleNotInScope     = errors.New("role does not belong to the profile institution")
	ErrRankNotInScope     = errors.New("rank does not belong to the profile institution")
	ErrFunctionNotInScope = errors.New("function does not belong to the profile institution")
	ErrRoleRequiresInst   = errors.New("role, rank and functions require an institution")
)

// UserService owns the user + profile pair. Both rows always move in one
// transaction so a user can never exist without a profile.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// ===================== QUERIES =====================

func (s *UserService) List(ctx context.Context, offset, limit int, search string) ([]model.UserModel, []model.UserProfileModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&model.UserModel{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(user_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, nil, 0, err
	}

	var users []model.UserModel
	if err := q.Order("user_name ASC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, nil, 0, err
	}

	ids := make([]uuid.UUID, 0, len(users))
	for i := range users {
		ids = append(ids, users[i].ID)
	}

	var profiles []model.UserProfileModel
	if len(ids) > 0 {
		if err := s.DB.WithContext(ctx).
			Preload("Institution").Preload("Role").Preload("Rank").Preload("Functions").
			Where("user_profile_user_id IN ?", ids).
			Find(&profiles).Error; err != nil {
			return nil, nil, 0, err
		}
	}
	return users, profiles, total, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*model.UserModel, *model.UserProfileModel, error) {
	var user model.UserModel
	err := s.DB.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrUserNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	profile, err := s.loadProfile(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return &user, profile, nil
}

func (s *UserService) loadProfile(ctx context.Context, userID uuid.UUID) (*model.UserProfileModel, error) {
	var profile model.UserProfileModel
	err := s.DB.WithContext(ctx).
		Preload("Institution").Preload("Role").Preload("Rank").Preload("Functions").
		First(&profile, "user_profile_user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ===================== MUTATIONS =====================

func (s *UserService) CreateWithProfile(ctx context.Context, body *dto.UserCreateRequest) (*model.UserModel, *model.UserProfileModel, error) {
	if err := s.checkIdentity(ctx, body.Email, body.UserName, uuid.Nil); err != nil {
		return nil, nil, err
	}
	if err := s.checkProfileScope(ctx, &body.Profile); err != nil {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := model.UserModel{
		UserName:  body.UserName,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     strings.ToLower(strings.TrimSpace(body.Email)),
		Password:  string(hash),
		IsActive:  true,
	}
	var profile model.UserProfileModel

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile = model.UserProfileModel{UserProfileUserID: user.ID}
		applyProfile(&profile, &body.Profile)
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		return replaceFunctions(tx, &profile, body.Profile.FunctionIDs)
	})
	if err != nil {
		return nil, nil, err
	}

	full, err := s.loadProfile(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return &user, full, nil
}

func (s *UserService) UpdateWithProfile(ctx context.Context, id uuid.UUID, body *dto.UserUpdateRequest) (*model.UserModel, *model.UserProfileModel, error) {
	var user model.UserModel
	err := s.DB.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrUserNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	if err := s.checkIdentity(ctx, body.Email, body.UserName, id); err != nil {
		return nil, nil, err
	}
	if err := s.checkProfileScope(ctx, &body.Profile); err != nil {
		return nil, nil, err
	}

	user.UserName = body.UserName
	user.FirstName = body.FirstName
	user.LastName = body.LastName
	user.Email = strings.ToLower(strings.TrimSpace(body.Email))
	if body.IsActive != nil {
		user.IsActive = *body.IsActive
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		// Repair path: older rows may miss their profile.
		var profile model.UserProfileModel
		if err := tx.Where(model.UserProfileModel{UserProfileUserID: user.ID}).
			FirstOrCreate(&profile).Error; err != nil {
			return err
		}
		applyProfile(&profile, &body.Profile)
		if err := tx.Save(&profile).Error; err != nil {
			return err
		}
		return replaceFunctions(tx, &profile, body.Profile.FunctionIDs)
	})
	if err != nil {
		return nil, nil, err
	}

	full, err := s.loadProfile(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return &user, full, nil
}

// Delete removes the user; the profile and the function links follow through
// ON DELETE CASCADE.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ===================== VALIDATION =====================

func (s *UserService) checkIdentity(ctx context.Context, email, userName string, selfID uuid.UUID) error {
	email = strings.ToLower(strings.TrimSpace(email))

	var n int64
	q := s.DB.WithContext(ctx).Model(&model.UserModel{}).Where("LOWER(email) = ?", email)
	if selfID != uuid.Nil {
		q = q.Where("id <> ?", selfID)
	}
	if err := q.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrEmailTaken
	}

	n = 0
	q = s.DB.WithContext(ctx).Model(&model.UserModel{}).Where("LOWER(user_name) = ?", strings.ToLower(userName))
	if selfID != uuid.Nil {
		q = q.Where("id <> ?", selfID)
	}
	if err := q.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrUserNameTaken
	}
	return nil
}

// checkProfileScope enforces that role, rank and every function belong to the
// declared institution. Hierarchy links without an institution are rejected.
func (s *UserService) checkProfileScope(ctx context.Context, p *dto.UserProfileRequest) error {
	hasHierarchy := p.RoleID != nil || p.RankID != nil || len(p.FunctionIDs) > 0
	if p.InstitutionID == nil {
		if hasHierarchy {
			return ErrRoleRequiresInst
		}
		return nil
	}

	if p.RoleID != nil {
		var n int64
		if err := s.DB.WithContext(ctx).Model(&hierarchyModel.RoleModel{}).
			Where("role_id = ? AND role_institution_id = ?", *p.RoleID, *p.InstitutionID).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrRoleNotInScope
		}
	}
	if p.RankID != nil {
		var n int64
		if err := s.DB.WithContext(ctx).Model(&hierarchyModel.RankModel{}).
			Where("rank_id = ? AND rank_institution_id = ?", *p.RankID, *p.InstitutionID).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrRankNotInScope
		}
	}
	if len(p.FunctionIDs) > 0 {
		var n int64
		if err := s.DB.WithContext(ctx).Model(&hierarchyModel.FunctionModel{}).
			Where("function_id IN ? AND function_institution_id = ?", p.FunctionIDs, *p.InstitutionID).
			Count(&n).Error; err != nil {
			return err
		}
		if n != int64(len(p.FunctionIDs)) {
			return ErrFunctionNotInScope
		}
	}
	return nil
}

// ===================== INTERNAL =====================

func applyProfile(profile *model.UserProfileModel, p *dto.UserProfileRequest) {
	profile.UserProfileInstitutionID = p.InstitutionID
	profile.UserProfileRoleID = p.RoleID
	profile.UserProfileRankID = p.RankID
	profile.UserProfileCPF = p.CPF
	profile.UserProfilePhone = p.Phone
	profile.UserProfilePhotoURL = p.PhotoURL

	if p.Status != nil {
		profile.UserProfileStatus = *p.Status
	} else if profile.UserProfileStatus == "" {
		profile.UserProfileStatus = constants.ProfileStatusUnlinked
	}
	if p.IsInstitutionAdmin != nil {
		profile.UserProfileIsInstitutionAdmin = *p.IsInstitutionAdmin
	}

	// No institution means no hierarchy and no admin flag.
	if profile.UserProfileInstitutionID == nil {
		profile.UserProfileRoleID = nil
		profile.UserProfileRankID = nil
		profile.UserProfileIsInstitutionAdmin = false
		profile.UserProfileStatus = constants.ProfileStatusUnlinked
	}
}

func replaceFunctions(tx *gorm.DB, profile *model.UserProfileModel, ids []uuid.UUID) error {
	assoc := tx.Model(profile).Association("Functions")
	if profile.UserProfileInstitutionID == nil || len(ids) == 0 {
		return assoc.Clear()
	}
	var fns []hierarchyModel.FunctionModel
	if err := tx.Where("function_id IN ?", ids).Find(&fns).Error; err != nil {
		return err
	}
	return assoc.Replace(&fns)
}
