package assessment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	tableName = "assessments"
	createdAt = "CreatedAt"
)

// Assessment is one archived submission: the verbatim patient payload,
// the model inputs, and a server-assigned UTC timestamp. Rows are
// write-once; nothing in the service updates or deletes them.
type Assessment struct {
	ID              uint   `gorm:"primaryKey;autoIncrement"`
	RecordID        string `gorm:"type:char(36);uniqueIndex;not null"`
	PatientInfo     string `gorm:"type:json;not null"`
	PredictionInput string `gorm:"type:json;not null"`
	CreatedAt       time.Time
}

func (Assessment) TableName() string {
	return tableName
}

func (a *Assessment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.RecordID == "" {
		a.RecordID = uuid.NewString()
	}
	tx.Statement.SetColumn(createdAt, time.Now().UTC())
	return
}
