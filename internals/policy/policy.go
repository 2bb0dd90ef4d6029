// Package policy holds the capability predicates guarding the admin surfaces.
// Predicates are pure: they look only at the Actor assembled once per request
// by the auth middleware, and return a tagged allow/deny decision.
package policy

import (
	"github.com/google/uuid"
)

// Actor is the per-request view of the authenticated user.
type Actor struct {
	UserID      uuid.UUID
	IsSuperuser bool

	// Profile linkage; nil institution means "unaffiliated".
	InstitutionID      *uuid.UUID
	IsInstitutionAdmin bool
}

type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// SuperuserOnly grants access to global superusers only.
func SuperuserOnly(a Actor) Decision {
	if a.IsSuperuser {
		return Allow()
	}
	return Deny("superuser access required")
}

// InstitutionAdmin grants access to superusers, or to members whose profile is
// linked to the given institution with the institution-admin flag set.
func InstitutionAdmin(a Actor, institutionID uuid.UUID) Decision {
	if a.IsSuperuser {
		return Allow()
	}
	if institutionID == uuid.Nil {
		return Deny("no institution in scope")
	}
	if a.InstitutionID == nil || *a.InstitutionID != institutionID {
		return Deny("not a member of this institution")
	}
	if !a.IsInstitutionAdmin {
		return Deny("institution admin access required")
	}
	return Allow()
}
