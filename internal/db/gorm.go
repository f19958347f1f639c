package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"

	DefaultSqlitePath = "stekfinance.db"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrUnknownDriver  = errors.New("unknown database driver")
	ErrInvalidRecords = errors.New("records must be a pointer to a slice")
)

type GormDB struct {
	DB *gorm.DB
}

// Open connects to the database selected by driver. An empty sqlite dsn
// falls back to DefaultSqlitePath.
func Open(driver, dsn string) (*GormDB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSqlite, "":
		if dsn == "" {
			dsn = DefaultSqlitePath
		}
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}

	return New(dialector, logger.Warn)
}

func New(dialector gorm.Dialector, level logger.LogLevel) (*GormDB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		DB: db,
	}, nil
}

func (f *GormDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// SaveToTable upserts records, which must be a pointer to a slice of models.
// Existing rows are overwritten by primary key.
func (f *GormDB) SaveToTable(ctx context.Context, records any) error {
	count, err := sliceLen(records)
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}

	err = f.DB.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(records).Error
	if err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *GormDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), value).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *GormDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}

func sliceLen(records any) (int, error) {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return 0, fmt.Errorf("%w: %T", ErrInvalidRecords, records)
	}
	return v.Elem().Len(), nil
}
