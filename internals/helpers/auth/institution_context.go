// Active-institution resolution. A superuser "enters" an institution and the
// choice is held in the session; everyone else is pinned to the institution on
// their profile. Callers resolve at most once per request and pass the result
// down instead of re-reading the session.
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sigi_backend/internals/constants"
	institutionModel "sigi_backend/internals/features/institutions/institution/model"
	"sigi_backend/internals/middlewares"
	"sigi_backend/internals/policy"
)

type ActiveInstitution struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ResolveActiveInstitution returns the institution the request operates in,
// or nil when there is none. For superusers the session override wins; a
// session reference to a deleted institution is silently dropped. Only the
// write path (entering a context) re-checks capability.
func ResolveActiveInstitution(c *fiber.Ctx, db *gorm.DB, actor policy.Actor) (*ActiveInstitution, error) {
	if actor.IsSuperuser {
		return resolveFromSession(c, db)
	}
	if actor.InstitutionID == nil {
		return nil, nil
	}
	return lookupInstitution(db, *actor.InstitutionID)
}

func resolveFromSession(c *fiber.Ctx, db *gorm.DB) (*ActiveInstitution, error) {
	sess, err := middlewares.GetSession(c)
	if err != nil {
		return nil, err
	}

	raw, _ := sess.Get(constants.SessionManagingInstitutionID).(string)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		// corrupt value, drop it
		return nil, dropSessionKey(sess)
	}

	inst, err := lookupInstitution(db, id)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		// institution is gone, drop the stale reference
		return nil, dropSessionKey(sess)
	}
	return inst, nil
}

func lookupInstitution(db *gorm.DB, id uuid.UUID) (*ActiveInstitution, error) {
	var m institutionModel.InstitutionModel
	err := db.Select("institution_id", "institution_generated_name").
		First(&m, "institution_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ActiveInstitution{ID: m.InstitutionID, Name: m.InstitutionGeneratedName}, nil
}

func dropSessionKey(sess interface {
	Delete(string)
	Save() error
}) error {
	sess.Delete(constants.SessionManagingInstitutionID)
	return sess.Save()
}
