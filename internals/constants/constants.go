package constants

// Session key holding the institution a superuser is currently managing.
// Absence means "no active override".
const SessionManagingInstitutionID = "managing_institution_id"

// Profile lifecycle states.
const (
	ProfileStatusUnlinked = "unlinked"
	ProfileStatusPending  = "pending"
	ProfileStatusActive   = "active"
	ProfileStatusRejected = "rejected"
)

// Crest kinds, used in the media path derivation.
const (
	CrestInstitution  = "instituicao"
	CrestMunicipality = "municipio"
)
