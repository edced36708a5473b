// Package scheduler runs the periodic database file backup.
package scheduler

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/rmaia/biblioteca/internal/config"
)

// BackupScheduler copies the SQLite file to the backup directory on a cron
// schedule and prunes old copies.
type BackupScheduler struct {
	databasePath string
	cfg          config.Backup

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewBackupScheduler creates a new scheduler instance.
func NewBackupScheduler(databasePath string, cfg config.Backup) *BackupScheduler {
	return &BackupScheduler{
		databasePath: databasePath,
		cfg:          cfg,
		cron:         cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler if backups are enabled.
func (s *BackupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.cfg.Enabled {
		log.Printf("Backup scheduler: disabled")
		return nil
	}

	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create backup directory %s: %w", s.cfg.Dir, err)
	}

	entryID, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		if err := s.RunBackup(); err != nil {
			log.Printf("Backup scheduler: backup failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule backup job with '%s': %w", s.cfg.Schedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Backup scheduler: started with schedule '%s'", s.cfg.Schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler.
func (s *BackupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	s.cron.Remove(s.entryID)
	s.cron.Stop()
	s.isRunning = false
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}

	log.Printf("Backup scheduler: stopped")
}

// IsRunning reports whether the scheduler is active.
func (s *BackupScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// RunBackup copies the database file into the backup directory with a
// timestamped name, then prunes to the configured number of copies.
func (s *BackupScheduler) RunBackup() error {
	src, err := os.Open(s.databasePath)
	if err != nil {
		return fmt.Errorf("failed to open database file: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%s.%s.bak", filepath.Base(s.databasePath), time.Now().Format("20060102-150405"))
	dstPath := filepath.Join(s.cfg.Dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy database file: %w", err)
	}

	log.Printf("Backup scheduler: wrote %s", dstPath)

	return s.prune()
}

// prune removes the oldest backups beyond the configured retention count.
func (s *BackupScheduler) prune() error {
	if s.cfg.Keep <= 0 {
		return nil
	}

	pattern := filepath.Join(s.cfg.Dir, filepath.Base(s.databasePath)+".*.bak")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return err
	}
	if len(matches) <= s.cfg.Keep {
		return nil
	}

	// Timestamped names sort chronologically
	sort.Strings(matches)
	for _, stale := range matches[:len(matches)-s.cfg.Keep] {
		if err := os.Remove(stale); err != nil {
			return fmt.Errorf("failed to remove stale backup %s: %w", stale, err)
		}
	}
	return nil
}
