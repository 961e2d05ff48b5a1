// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs periodic maintenance jobs: repairing drifted
// verification flags and pruning old audit events.
package scheduler

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"alumni-go/internal/model"
	"alumni-go/internal/service"
	"alumni-go/internal/store"
)

// eventRetention is how long audit events are kept before pruning.
const eventRetention = 90 * 24 * time.Hour

// Scheduler owns the cron runner for background maintenance.
type Scheduler struct {
	db     *sql.DB
	events *service.EventService
	cron   *cron.Cron
	logger *slog.Logger
}

// New creates a new scheduler instance.
func New(db *sql.DB, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		db:     db,
		events: service.NewEventService(db),
		cron:   cron.New(),
		logger: logger,
	}
}

// Start registers the maintenance jobs and begins the cron runner.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@daily", func() {
		if err := s.repairAlumniConsistency(); err != nil {
			s.logger.Error("failed to repair alumni verification flags", "error", err)
		}
	}); err != nil {
		return err
	}

	if _, err := s.cron.AddFunc("@daily", func() {
		if err := s.pruneEvents(); err != nil {
			s.logger.Error("failed to prune audit events", "error", err)
		}
	}); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// repairAlumniConsistency resets is_verified on alumni rows where the flag
// no longer matches the verification status.
func (s *Scheduler) repairAlumniConsistency() error {
	ctx := context.Background()

	repaired, err := store.New(s.db).FixInconsistentAlumni(ctx, time.Now())
	if err != nil {
		return err
	}

	if repaired == 0 {
		return nil
	}

	s.logger.Warn("repaired drifted alumni verification flags", "count", repaired)
	s.events.LogWarning(ctx, model.EventCategoryAlumni,
		"Flag verifikasi alumni diperbaiki oleh scheduler", nil,
		map[string]any{"repaired": repaired})
	return nil
}

// pruneEvents deletes audit events past the retention window.
func (s *Scheduler) pruneEvents() error {
	ctx := context.Background()

	deleted, err := store.New(s.db).DeleteEventsBefore(ctx, time.Now().Add(-eventRetention))
	if err != nil {
		return err
	}

	if deleted > 0 {
		s.logger.Info("pruned old audit events", "count", deleted)
	}
	return nil
}
