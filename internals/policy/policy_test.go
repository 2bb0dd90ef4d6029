package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSuperuserOnly(t *testing.T) {
	assert.True(t, SuperuserOnly(Actor{IsSuperuser: true}).Allowed)

	d := SuperuserOnly(Actor{UserID: uuid.New()})
	assert.False(t, d.Allowed)
	assert.NotEmpty(t, d.Reason)
}

func TestInstitutionAdmin(t *testing.T) {
	inst := uuid.New()
	other := uuid.New()

	t.Run("superuser bypasses membership", func(t *testing.T) {
		assert.True(t, InstitutionAdmin(Actor{IsSuperuser: true}, inst).Allowed)
	})

	t.Run("admin of the institution", func(t *testing.T) {
		a := Actor{InstitutionID: &inst, IsInstitutionAdmin: true}
		assert.True(t, InstitutionAdmin(a, inst).Allowed)
	})

	t.Run("admin of a different institution", func(t *testing.T) {
		a := Actor{InstitutionID: &other, IsInstitutionAdmin: true}
		assert.False(t, InstitutionAdmin(a, inst).Allowed)
	})

	t.Run("member without admin flag", func(t *testing.T) {
		a := Actor{InstitutionID: &inst}
		d := InstitutionAdmin(a, inst)
		assert.False(t, d.Allowed)
		assert.Equal(t, "institution admin access required", d.Reason)
	})

	t.Run("unaffiliated", func(t *testing.T) {
		assert.False(t, InstitutionAdmin(Actor{}, inst).Allowed)
	})

	t.Run("nil scope", func(t *testing.T) {
		a := Actor{InstitutionID: &inst, IsInstitutionAdmin: true}
		assert.False(t, InstitutionAdmin(a, uuid.Nil).Allowed)
	})
}
