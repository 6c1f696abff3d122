package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"brandsafe/internal/domain/entity"
)

// PlanModel mirrors the 'plans' table. The feature list is stored as a JSON
// string, matching the shape the marketing site consumes.
type PlanModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(50);not null"`
	Price     string    `gorm:"type:varchar(20);not null"`
	Features  string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlanModel) TableName() string {
	return "plans"
}

// ToEntity maps the persistence model to a domain entity, decoding the
// feature list. A malformed features column yields an empty list rather
// than an error; reference data should never break reads.
func (m *PlanModel) ToEntity() *entity.Plan {
	var features []string
	if err := json.Unmarshal([]byte(m.Features), &features); err != nil {
		features = nil
	}

	return &entity.Plan{
		ID:        m.ID,
		Name:      m.Name,
		Price:     m.Price,
		Features:  features,
		CreatedAt: m.CreatedAt,
	}
}

// FromPlanEntity maps a domain entity to the persistence model.
func FromPlanEntity(p *entity.Plan) (*PlanModel, error) {
	features, err := json.Marshal(p.Features)
	if err != nil {
		return nil, err
	}

	return &PlanModel{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Features:  string(features),
		CreatedAt: p.CreatedAt,
	}, nil
}
