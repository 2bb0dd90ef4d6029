package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"sigi_backend/internals/constants"
	"sigi_backend/internals/features/users/user/dto"
	"sigi_backend/internals/features/users/user/model"
)

func TestApplyProfileWithInstitution(t *testing.T) {
	instID := uuid.New()
	roleID := uuid.New()
	admin := true
	status := constants.ProfileStatusActive

	var p model.UserProfileModel
	applyProfile(&p, &dto.UserProfileRequest{
		InstitutionID:      &instID,
		RoleID:             &roleID,
		Status:             &status,
		IsInstitutionAdmin: &admin,
	})

	assert.Equal(t, &instID, p.UserProfileInstitutionID)
	assert.Equal(t, &roleID, p.UserProfileRoleID)
	assert.Equal(t, constants.ProfileStatusActive, p.UserProfileStatus)
	assert.True(t, p.UserProfileIsInstitutionAdmin)
}

// Dropping the institution must also drop everything scoped to it.
func TestApplyProfileWithoutInstitutionClearsHierarchy(t *testing.T) {
	instID := uuid.New()
	roleID := uuid.New()
	rankID := uuid.New()

	p := model.UserProfileModel{
		UserProfileInstitutionID:      &instID,
		UserProfileRoleID:             &roleID,
		UserProfileRankID:             &rankID,
		UserProfileIsInstitutionAdmin: true,
		UserProfileStatus:             constants.ProfileStatusActive,
	}
	applyProfile(&p, &dto.UserProfileRequest{})

	assert.Nil(t, p.UserProfileInstitutionID)
	assert.Nil(t, p.UserProfileRoleID)
	assert.Nil(t, p.UserProfileRankID)
	assert.False(t, p.UserProfileIsInstitutionAdmin)
	assert.Equal(t, constants.ProfileStatusUnlinked, p.UserProfileStatus)
}

func TestApplyProfileDefaultsStatus(t *testing.T) {
	instID := uuid.New()
	var p model.UserProfileModel
	applyProfile(&p, &dto.UserProfileRequest{InstitutionID: &instID})
	assert.Equal(t, constants.ProfileStatusUnlinked, p.UserProfileStatus)
}
