package database

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Pool owns the process-wide connection pool. Connect may be called any
// number of times and returns the same handle once a connection succeeded;
// a failed attempt is not cached, so the next call retries.
type Pool struct {
	cfg  *config.Config
	open func(*config.Config) (*gorm.DB, error)

	mu sync.Mutex
	db *gorm.DB
}

func NewPool(cfg *config.Config) *Pool {
	return &Pool{cfg: cfg, open: openPostgres}
}

// ErrPoolClosed is returned by a pool that wraps an existing handle once that
// handle has been closed; such a pool cannot reopen it.
var ErrPoolClosed = errors.New("database pool is closed")

// NewPoolFromDB wraps an already opened handle.
func NewPoolFromDB(db *gorm.DB) *Pool {
	return &Pool{db: db}
}

func (p *Pool) Connect() (*gorm.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db != nil {
		return p.db, nil
	}
	if p.open == nil {
		return nil, ErrPoolClosed
	}
	db, err := p.open(p.cfg)
	if err != nil {
		return nil, err
	}
	p.db = db
	slog.Info("database connected")
	return db, nil
}

func openPostgres(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxOpenConns / 2)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	return db, nil
}

// Migrate creates or updates every table, including the unique indexes the
// signup flow relies on.
func (p *Pool) Migrate() error {
	db, err := p.Connect()
	if err != nil {
		return err
	}
	return db.AutoMigrate(models.All()...)
}

func (p *Pool) Ping() error {
	db, err := p.Connect()
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db == nil {
		return nil
	}
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	p.db = nil
	return sqlDB.Close()
}
