package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CommonIssue struct {
	Id              uuid.UUID                     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Symptom         string                        `gorm:"type:varchar(255);not null"`
	SymptomDetail   string                        `gorm:"type:text"`
	ProbableCauses  datatypes.JSONSlice[string]   `gorm:"type:jsonb"`
	CostEstimateIDR datatypes.JSONType[CostRange] `gorm:"type:jsonb"`
	Embedding       pgvector.Vector               `gorm:"type:vector(768)"`
	CreatedAt       time.Time                     `gorm:"autoCreateTime"`
	UpdatedAt       time.Time                     `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt                `gorm:"index"`
}

func (CommonIssue) TableName() string {
	return "common_issues"
}
