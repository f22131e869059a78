package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CatalogPart struct {
	Id              uuid.UUID                     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PartName        string                        `gorm:"type:varchar(255);not null"`
	Brand           string                        `gorm:"type:varchar(100)"`
	Category        string                        `gorm:"type:varchar(100);not null;index"`
	MinStage        int                           `gorm:"default:1;index"`
	PriceRangeIDR   datatypes.JSONType[CostRange] `gorm:"type:jsonb"`
	PerformanceGain string                        `gorm:"type:varchar(100)"`
	LegalStatus     string                        `gorm:"type:varchar(50)"`
	CreatedAt       time.Time                     `gorm:"autoCreateTime"`
	UpdatedAt       time.Time                     `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt                `gorm:"index"`
}

func (CatalogPart) TableName() string {
	return "modification_catalog"
}
