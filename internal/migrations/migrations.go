// Package migrations applies schema migrations from a directory of SQL files.
package migrations

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// SourceURL validates dir and returns it as a file source URL.
func SourceURL(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve migrations dir: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("stat migrations dir %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return fmt.Sprintf("file://%s", filepath.ToSlash(abs)), nil
}

// Up applies every pending migration of dir to the database at databaseURL.
// The database driver must be registered by the caller.
func Up(ctx context.Context, dir, databaseURL string, logger *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sourceURL, err := SourceURL(dir)
	if err != nil {
		return err
	}
	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Warn("migration source close error", zap.Error(srcErr))
		}
		if dbErr != nil {
			logger.Warn("migration database close error", zap.Error(dbErr))
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("no migrations to apply", zap.String("dir", dir))
			return nil
		}
		return err
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("read migration version: %w", err)
	}
	logger.Info("migrations applied", zap.String("dir", dir), zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}
