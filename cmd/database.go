package cmd

import (
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenDatabase connects GORM to PostgreSQL. Driver errors are translated so
// unique violations surface as gorm.ErrDuplicatedKey.
func OpenDatabase(cfg Config) (*gorm.DB, error) {
	return gorm.Open(postgresdriver.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
}
