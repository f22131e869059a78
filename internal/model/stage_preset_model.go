package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type StagePreset struct {
	Id               uuid.UUID                     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Stage            int                           `gorm:"not null;uniqueIndex"`
	StageName        string                        `gorm:"type:varchar(100);not null"`
	Description      string                        `gorm:"type:text"`
	EstimatedHPTotal int                           `gorm:"default:0"`
	EstimatedCostIDR datatypes.JSONType[CostRange] `gorm:"type:jsonb"`
	Parts            datatypes.JSONSlice[string]   `gorm:"type:jsonb"`
	CreatedAt        time.Time                     `gorm:"autoCreateTime"`
	UpdatedAt        time.Time                     `gorm:"autoUpdateTime"`
}

func (StagePreset) TableName() string {
	return "stage_presets"
}
