package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	directoryModel "sigi_backend/internals/features/directory/model"
)

type InstitutionModel struct {
	InstitutionID uuid.UUID `gorm:"column:institution_id;type:uuid;default:gen_random_uuid();primaryKey" json:"institution_id"`

	// Natural key: one institution per (type, municipality).
	InstitutionTypeID         *uuid.UUID `gorm:"column:institution_type_id;type:uuid;uniqueIndex:uq_institutions_type_municipality" json:"institution_type_id,omitempty"`
	InstitutionMunicipalityID uuid.UUID  `gorm:"column:institution_municipality_id;type:uuid;not null;uniqueIndex:uq_institutions_type_municipality;index" json:"institution_municipality_id"`

	Type         *InstitutionTypeModel            `gorm:"foreignKey:InstitutionTypeID;references:InstitutionTypeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"type,omitempty"`
	Municipality *directoryModel.MunicipalityModel `gorm:"foreignKey:InstitutionMunicipalityID;references:MunicipalityID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"municipality,omitempty"`

	// Derived on every save, never written by clients.
	InstitutionGeneratedName string `gorm:"column:institution_generated_name;type:varchar(255)" json:"institution_generated_name"`

	InstitutionCNPJ    *string        `gorm:"column:institution_cnpj;type:varchar(18);uniqueIndex:uq_institutions_cnpj" json:"institution_cnpj,omitempty"`
	InstitutionContact *string        `gorm:"column:institution_contact;type:varchar(100)" json:"institution_contact,omitempty"`
	InstitutionEmail   *string        `gorm:"column:institution_email;type:varchar(255)" json:"institution_email,omitempty"`
	InstitutionPlan    *string        `gorm:"column:institution_plan;type:varchar(50)" json:"institution_plan,omitempty"`
	InstitutionAddress datatypes.JSON `gorm:"column:institution_address" json:"institution_address,omitempty"`

	InstitutionCrestURL   *string `gorm:"column:institution_crest_url;type:text" json:"institution_crest_url,omitempty"`
	MunicipalityCrestURL  *string `gorm:"column:municipality_crest_url;type:text" json:"municipality_crest_url,omitempty"`

	InstitutionCreatedAt time.Time `gorm:"column:institution_created_at;autoCreateTime" json:"institution_created_at"`
	InstitutionUpdatedAt time.Time `gorm:"column:institution_updated_at;autoUpdateTime" json:"institution_updated_at"`
}

func (InstitutionModel) TableName() string {
	return "institutions"
}

// ComposeGeneratedName builds the display name "{type} - {municipality}-{UF}".
func ComposeGeneratedName(typeName, municipalityName, uf string) string {
	return fmt.Sprintf("%s - %s-%s", typeName, municipalityName, uf)
}

// PlaceholderName is used while type or municipality is unset.
func PlaceholderName(id uuid.UUID) string {
	s := id.String()
	if len(s) > 8 {
		s = s[:8]
	}
	return "Instituicao " + s
}

// BeforeSave recomputes the generated display name from the current type and
// municipality. Idempotent, and never fails on missing relations: it falls
// back to a placeholder derived from the row id. The id is assigned eagerly
// (BeforeSave runs before BeforeCreate) so the placeholder is stable.
func (m *InstitutionModel) BeforeSave(tx *gorm.DB) error {
	if m.InstitutionID == uuid.Nil {
		m.InstitutionID = uuid.New()
	}
	m.InstitutionGeneratedName = m.deriveGeneratedName(tx)
	return nil
}

func (m *InstitutionModel) deriveGeneratedName(tx *gorm.DB) string {
	if m.InstitutionTypeID == nil || m.InstitutionMunicipalityID == uuid.Nil {
		return PlaceholderName(m.InstitutionID)
	}

	var typeName string
	if err := tx.Model(&InstitutionTypeModel{}).
		Select("institution_type_name").
		Where("institution_type_id = ?", *m.InstitutionTypeID).
		Scan(&typeName).Error; err != nil || typeName == "" {
		return PlaceholderName(m.InstitutionID)
	}

	var mun struct {
		MunicipalityName string
		StateUF          string
	}
	if err := tx.Table("municipalities").
		Select("municipalities.municipality_name, states.state_uf").
		Joins("JOIN states ON states.state_id = municipalities.municipality_state_id").
		Where("municipalities.municipality_id = ?", m.InstitutionMunicipalityID).
		Scan(&mun).Error; err != nil || mun.MunicipalityName == "" {
		return PlaceholderName(m.InstitutionID)
	}

	return ComposeGeneratedName(typeName, mun.MunicipalityName, mun.StateUF)
}
