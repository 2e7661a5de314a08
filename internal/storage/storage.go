package storage

import (
	"sync"

	"taskboard-backend/internal/config"
	"taskboard-backend/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var (
	db  *gorm.DB
	mu  sync.Mutex
	log = logger.GetLogger()
)

// GetDb returns the shared database handle, connecting on first use.
func GetDb() *gorm.DB {
	mu.Lock()
	defer mu.Unlock()

	if db != nil {
		return db
	}

	connect()

	return db
}

// SetDb replaces the shared database handle. Tests use it to install
// an in-memory database before any repository call.
func SetDb(database *gorm.DB) {
	mu.Lock()
	defer mu.Unlock()

	db = database
}

func connect() {
	dsn := config.GetEnv().DatabaseDsn

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
	})
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		panic(err)
	}

	db = database
}
