package seeder

import (
	"context"

	"gorm.io/gorm"

	"sigi_backend/internals/features/directory/model"
)

// StateResult is the per-state outcome for the summary table.
type StateResult struct {
	UF                    string
	Name                  string
	StateCreated          bool
	MunicipalitiesCreated int
	MunicipalitiesTotal   int
}

type Summary struct {
	States []StateResult
}

// Progress callbacks are optional hooks for CLI output.
type Progress struct {
	OnState func(uf, name string)
}

// SeedLocalities populates states and municipalities from IBGE, idempotently:
// rows already present by natural key (UF; state+name) are left alone. The
// whole run is one transaction, so any API or storage failure aborts with no
// partial commit.
func SeedLocalities(ctx context.Context, db *gorm.DB, client *IBGEClient, progress Progress) (Summary, error) {
	var summary Summary

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		states, err := client.FetchStates(ctx)
		if err != nil {
			return err
		}

		for _, st := range states {
			if progress.OnState != nil {
				progress.OnState(st.Sigla, st.Nome)
			}

			result := StateResult{UF: st.Sigla, Name: st.Nome}

			var stateRow model.StateModel
			res := tx.Where(model.StateModel{StateUF: st.Sigla}).
				Attrs(model.StateModel{StateName: st.Nome}).
				FirstOrCreate(&stateRow)
			if res.Error != nil {
				return res.Error
			}
			result.StateCreated = res.RowsAffected > 0

			municipalities, err := client.FetchMunicipalities(ctx, st.Sigla)
			if err != nil {
				return err
			}
			result.MunicipalitiesTotal = len(municipalities)

			for _, mun := range municipalities {
				var munRow model.MunicipalityModel
				res := tx.Where(model.MunicipalityModel{
					MunicipalityStateID: stateRow.StateID,
					MunicipalityName:    mun.Nome,
				}).FirstOrCreate(&munRow)
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected > 0 {
					result.MunicipalitiesCreated++
				}
			}

			summary.States = append(summary.States, result)
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}
	return summary, nil
}
