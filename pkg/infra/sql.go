package infra

import (
	"errors"
	"fmt"

	"github.com/Tapanx4/Pregnancy-Risk-Predictor/internal/configs"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var (
	SQL *SQLConnection
)

// SQLConnection encapsulates the MySQL database connection
type SQLConnection struct {
	Master *gorm.DB
	Meta   map[string]interface{}
}

// GetConn returns the database connection
func (c *SQLConnection) GetConn() (interface{}, error) {
	if c.Master == nil {
		return nil, errors.New("master connection is nil")
	}
	return c.Master, nil
}

// GetMeta returns metadata about the connection
func (c *SQLConnection) GetMeta() (map[string]interface{}, error) {
	if c.Meta == nil {
		return nil, errors.New("meta is nil")
	}
	return c.Meta, nil
}

func (c *SQLConnection) IsLive() bool {
	if c.Master == nil {
		return false
	}
	sqlDB, err := c.Master.DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}

// initSQLConns initializes the SQL connection from environment configuration.
// A failed connection leaves SQL nil; the prediction endpoint then answers
// every request with a configuration error until the archive is reachable.
func initSQLConns(config configs.Configs) {
	master, err := CreateMySQLConnection(config)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MySQL, submission archive unavailable")
		return
	}

	sqlDB, err := master.DB()
	if err != nil {
		log.Error().Err(err).Msg("Failed to obtain SQL handle, submission archive unavailable")
		return
	}
	if err := sqlDB.Ping(); err != nil {
		log.Error().Err(err).Msg("MySQL ping failed, submission archive unavailable")
		return
	}

	SQL = &SQLConnection{
		Master: master,
		Meta: map[string]interface{}{
			"db_name": config.MysqlDbName,
			"type":    DBTypeMySQL,
		},
	}
	log.Info().Msgf("Connected to MySQL database %s", config.MysqlDbName)
}

// CreateMySQLConnection creates a MySQL connection from the app configuration
func CreateMySQLConnection(config configs.Configs) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		config.MysqlUsername, config.MysqlPassword, config.MysqlHost, config.MysqlPort, config.MysqlDbName)

	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}
