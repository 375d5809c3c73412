package setup

import (
	"context"
	"log/slog"
	"net/url"

	gormAdapter "github.com/bornholm/procuradoria/internal/adapter/gorm"
	"github.com/bornholm/procuradoria/internal/core/port"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

func init() {
	TaskStore.Register("sqlite", func(u *url.URL) (port.TaskStore, error) {
		db, err := openGormDatabase(sqliteDSN(u))
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return gormAdapter.NewTaskStore(db), nil
	})
}

// sqliteDSN turns sqlite://<path>?<params> into a sqlite filename.
func sqliteDSN(u *url.URL) string {
	path := u.Host + u.Path

	if u.RawQuery == "" {
		return path
	}

	return "file:" + path + "?" + u.RawQuery
}

func openGormDatabase(dsn string) (*gorm.DB, error) {
	dialector := gormlite.Open(dsn)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel()),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		db = db.Debug()
	}

	internalDB, err := db.DB()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	internalDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA journal_mode=wal; PRAGMA busy_timeout=5000").Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return db, nil
}

// gormLogLevel follows the level of the default logger.
func gormLogLevel() logger.LogLevel {
	ctx := context.Background()
	log := slog.Default()

	switch {
	case log.Enabled(ctx, slog.LevelInfo):
		return logger.Info
	case log.Enabled(ctx, slog.LevelWarn):
		return logger.Warn
	default:
		return logger.Error
	}
}
