package assessment

import (
	"errors"
	"time"

	"github.com/Tapanx4/Pregnancy-Risk-Predictor/pkg/infra"
	"github.com/Tapanx4/Pregnancy-Risk-Predictor/pkg/metric"
	"gorm.io/gorm"
)

// Repository is the append-only submission archive.
type Repository interface {
	Create(assessment *Assessment) error
	Ping() error
}

type SQLRepository struct {
	db     *gorm.DB
	dbName string
}

func NewRepository(connection *infra.SQLConnection) (Repository, error) {
	if connection == nil {
		return nil, errors.New("connection cannot be nil")
	}

	session, err := connection.GetConn()
	if err != nil {
		return nil, err
	}
	meta, err := connection.GetMeta()
	if err != nil {
		return nil, err
	}
	dbName := meta["db_name"].(string)

	return &SQLRepository{
		db:     session.(*gorm.DB),
		dbName: dbName,
	}, nil
}

// Create appends a new assessment record to the archive.
func (r *SQLRepository) Create(assessment *Assessment) error {
	start := time.Now()
	result := r.db.Create(assessment)
	tags := metric.BuildTag(metric.NewTag(metric.TagPath, tableName))
	metric.Incr(metric.DBCallCount, tags)
	metric.Timing(metric.DBCallLatency, time.Since(start), tags)
	return result.Error
}

// Ping verifies the archive connection is still usable.
func (r *SQLRepository) Ping() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
