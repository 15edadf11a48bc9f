// Package maintenance runs scheduled housekeeping: sweeping stale backup
// files left by interrupted saves, trimming the save-event history and
// exporting accumulated driver stats. Jobs run on a cron schedule and are
// skipped while a simulator session is live or the system is busy.
package maintenance

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"

	"github.com/pitwall-app/pitwall/app/jsonfile"
	"github.com/pitwall-app/pitwall/app/stats"
)

//go:generate moq -out mocks/cron.go -pkg mocks -skip-ensure -fmt goimports . Cron
//go:generate moq -out mocks/stats.go -pkg mocks -skip-ensure -fmt goimports . Stats

// Cron interface defines basic robfig/cron methods used by the service
type Cron interface {
	Start()
	Stop() context.Context
	Schedule(schedule cron.Schedule, cmd cron.Job) cron.EntryID
}

// Stats defines the store operations used by housekeeping jobs
type Stats interface {
	TrimSaveEvents(ctx context.Context, keep int) (int64, error)
	Vacuum(ctx context.Context) error
	ListDriverStats(ctx context.Context, track string) ([]stats.DriverRecord, error)
}

// Service schedules housekeeping jobs and runs them while conditions allow.
type Service struct {
	Cron
	Stats      Stats
	Dirs       []string      // directories swept for stale backup files
	Spec       string        // cron spec, default "10 3 * * *"
	Retention  time.Duration // backups older than this are removed, default 24h
	KeepEvents int           // save events kept in the db, default 1000
	ExportFile string        // day-templated stats export destination, empty disables export
	Conditions Conditions
	JobTimeout time.Duration // budget for a single run, default 5m
}

// Do runs the blocking housekeeping scheduler until ctx is canceled.
func (s *Service) Do(ctx context.Context) {
	s.setDefaults()

	sched, err := cron.ParseStandard(s.Spec)
	if err != nil {
		log.Printf("[ERROR] can't parse maintenance schedule %q, %v", s.Spec, err)
		return
	}
	id := s.Schedule(sched, cron.FuncJob(func() { s.runJobs(ctx) }))
	log.Printf("[INFO] maintenance scheduled with %q, entry %d", s.Spec, id)

	s.Start()
	<-ctx.Done()
	log.Print("[DEBUG] terminate maintenance")
	<-s.Stop().Done()
}

func (s *Service) setDefaults() {
	if s.Spec == "" {
		s.Spec = "10 3 * * *"
	}
	if s.Retention <= 0 {
		s.Retention = 24 * time.Hour
	}
	if s.KeepEvents <= 0 {
		s.KeepEvents = 1000
	}
	if s.JobTimeout <= 0 {
		s.JobTimeout = 5 * time.Minute
	}
}

// runJobs executes all housekeeping jobs once
func (s *Service) runJobs(ctx context.Context) {
	if ok, reason := s.Conditions.Check(); !ok {
		log.Printf("[INFO] maintenance skipped, %s", reason)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.JobTimeout)
	defer cancel()

	st := time.Now()
	removed := s.sweepBackups()
	trimmed := s.trimHistory(ctx)
	s.exportStats(ctx)
	log.Printf("[INFO] maintenance done in %v, %d stale backups removed, %d events trimmed",
		time.Since(st), removed, trimmed)
}

// sweepBackups removes write backups and quarantined damaged files older
// than the retention from all dirs. Fresh backups are left alone, a save may
// still be in flight.
func (s *Service) sweepBackups() (removed int) {
	for _, dir := range s.Dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			log.Printf("[WARN] can't read %s, %v", dir, err)
			continue
		}
		for _, e := range entries {
			if e.IsDir() || !staleArtifact(e.Name()) {
				continue
			}
			fi, err := e.Info()
			if err != nil {
				continue
			}
			if time.Since(fi.ModTime()) < s.Retention {
				continue
			}
			file := filepath.Join(dir, e.Name())
			if err := os.Remove(file); err != nil {
				log.Printf("[WARN] can't remove %s, %v", file, err)
				continue
			}
			log.Printf("[DEBUG] removed stale backup %s", file)
			removed++
		}
	}
	return removed
}

// staleArtifact matches the write backups and the timestamped copies of
// damaged files the loaders keep aside.
func staleArtifact(name string) bool {
	return strings.HasSuffix(name, jsonfile.BackupExt) || strings.Contains(name, jsonfile.QuarantinePrefix)
}

// trimHistory drops old save events and compacts the db when anything was cut
func (s *Service) trimHistory(ctx context.Context) int64 {
	if !s.hasStats() {
		return 0
	}
	removed, err := s.Stats.TrimSaveEvents(ctx, s.KeepEvents)
	if err != nil {
		log.Printf("[WARN] can't trim save events, %v", err)
		return 0
	}
	if removed > 0 {
		if err := s.Stats.Vacuum(ctx); err != nil {
			log.Printf("[WARN] vacuum failed, %v", err)
		}
	}
	return removed
}

// exportStats writes all driver records to the day-templated destination
func (s *Service) exportStats(ctx context.Context) {
	if s.ExportFile == "" || !s.hasStats() {
		return
	}

	file, err := NewDayTemplate(time.Now()).Parse(s.ExportFile)
	if err != nil {
		log.Printf("[WARN] can't parse export destination, %v", err)
		return
	}

	recs, err := s.Stats.ListDriverStats(ctx, "")
	if err != nil {
		log.Printf("[WARN] can't list driver stats, %v", err)
		return
	}

	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		log.Printf("[WARN] can't marshal driver stats, %v", err)
		return
	}
	if err := os.WriteFile(file, data, 0o600); err != nil {
		log.Printf("[WARN] can't write %s, %v", file, err)
		return
	}
	log.Printf("[INFO] stats exported to %s, %d records", file, len(recs))
}

func (s *Service) hasStats() bool {
	return s.Stats != nil && !reflect.ValueOf(s.Stats).IsNil()
}
