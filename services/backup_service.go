// services/backup_service.go
package services

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"victorianails-backend/config"
)

// BackupService takes point-in-time copies of the storage file on a
// cron schedule. The salon's only durable state is that one file, so
// nightly copies are the whole disaster-recovery story. Disabled unless
// BACKUP_DIR is set.
type BackupService struct {
	storage  *config.LocalStorage
	log      *zap.Logger
	dir      string
	schedule string
	cron     *cron.Cron
}

func NewBackupService(storage *config.LocalStorage, log *zap.Logger) *BackupService {
	schedule := os.Getenv("BACKUP_SCHEDULE")
	if schedule == "" {
		schedule = "0 3 * * *" // daily at 3 AM
	}
	return &BackupService{
		storage:  storage,
		log:      log,
		dir:      os.Getenv("BACKUP_DIR"),
		schedule: schedule,
	}
}

// StartScheduler registers the backup job and starts the cron loop.
func (s *BackupService) StartScheduler() error {
	if s.dir == "" {
		s.log.Info("storage backups disabled, BACKUP_DIR not set")
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(s.schedule, s.RunBackup); err != nil {
		return fmt.Errorf("schedule backup: %w", err)
	}
	c.Start()
	s.cron = c

	s.log.Info("backup scheduler started",
		zap.String("schedule", s.schedule), zap.String("dir", s.dir))
	return nil
}

// RunBackup copies the storage file into the backup directory. Failures
// are logged; the next run retries from scratch.
func (s *BackupService) RunBackup() {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		s.log.Error("creating backup dir failed", zap.Error(err))
		return
	}

	name := fmt.Sprintf("victoria-nails-%s.db", time.Now().Format("20060102-150405"))
	path := filepath.Join(s.dir, name)
	if err := s.storage.BackupTo(path); err != nil {
		s.log.Error("storage backup failed", zap.Error(err))
		return
	}
	s.log.Info("storage backup written", zap.String("path", path))
}

// Stop halts the cron loop.
func (s *BackupService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
