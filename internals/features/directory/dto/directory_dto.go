package dto

import (
	"github.com/google/uuid"

	"sigi_backend/internals/features/directory/model"
)

type StateResponse struct {
	StateID   uuid.UUID `json:"state_id"`
	StateName string    `json:"state_name"`
	StateUF   string    `json:"state_uf"`
}

// MunicipalityOption is the dependent-select payload: {id, name} pairs for the
// municipalities of one state.
type MunicipalityOption struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func ToStateResponse(m *model.StateModel) StateResponse {
	return StateResponse{
		StateID:   m.StateID,
		StateName: m.StateName,
		StateUF:   m.StateUF,
	}
}

func ToMunicipalityOptions(ms []model.MunicipalityModel) []MunicipalityOption {
	out := make([]MunicipalityOption, 0, len(ms))
	for i := range ms {
		out = append(out, MunicipalityOption{
			ID:   ms[i].MunicipalityID,
			Name: ms[i].MunicipalityName,
		})
	}
	return out
}
