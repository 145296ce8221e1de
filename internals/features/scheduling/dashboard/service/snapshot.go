// file: internals/features/scheduling/dashboard/service/snapshot.go
package service

import (
	"log"
	"sync"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	partModel "careportal_backend/internals/features/participants/participant/model"
	attModel "careportal_backend/internals/features/scheduling/attendance/model"
	schedModel "careportal_backend/internals/features/scheduling/schedules/model"
)

// Snapshot is one consistent load of the three tables the roster joins over.
type Snapshot struct {
	Participants []partModel.ParticipantModel
	Schedules    []schedModel.ScheduleModel
	Attendance   []attModel.AttendanceModel
}

// RosterStore caches the latest snapshot. The portal used to poll all three
// endpoints from the browser every five minutes; here the refresh is a single
// owned server-side job whose shutdown is guaranteed (Stop), so nothing keeps
// running after teardown.
type RosterStore struct {
	db   *gorm.DB
	mu   sync.RWMutex
	snap Snapshot
	cron *cron.Cron
}

func NewRosterStore(db *gorm.DB) *RosterStore {
	return &RosterStore{db: db}
}

// Refresh loads a fresh snapshot. Any failed load leaves the previous
// snapshot in place untouched.
func (s *RosterStore) Refresh() error {
	var next Snapshot

	if err := s.db.
		Preload("GeneralInfo").
		Find(&next.Participants).Error; err != nil {
		return err
	}
	if err := s.db.Find(&next.Schedules).Error; err != nil {
		return err
	}
	if err := s.db.Find(&next.Attendance).Error; err != nil {
		return err
	}

	s.mu.Lock()
	s.snap = next
	s.mu.Unlock()
	return nil
}

// Current returns the cached snapshot (shallow copy of the slices headers).
func (s *RosterStore) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Apply reconciles a saved attendance row into the cached snapshot so
// dashboard reads reflect the save immediately instead of waiting for the
// next refresh. Readers keep iterating the slice Current handed them after
// releasing the lock, so the reconcile runs on a copy and the result is
// swapped in whole; the old backing array is never written.
func (s *RosterStore) Apply(saved attModel.AttendanceModel) {
	s.mu.Lock()
	next := append([]attModel.AttendanceModel(nil), s.snap.Attendance...)
	s.snap.Attendance = ApplyAttendanceUpsert(next, saved)
	s.mu.Unlock()
}

// Start loads the first snapshot and schedules a refresh every five minutes.
func (s *RosterStore) Start() {
	if err := s.Refresh(); err != nil {
		log.Printf("[ROSTER] initial snapshot load failed: %v", err)
	}

	s.cron = cron.New()
	if _, err := s.cron.AddFunc("@every 5m", func() {
		if err := s.Refresh(); err != nil {
			log.Printf("[ROSTER] snapshot refresh failed: %v", err)
		}
	}); err != nil {
		log.Printf("[ROSTER] refresh job registration failed: %v", err)
		return
	}
	s.cron.Start()
	log.Println("[ROSTER] snapshot refresher started (every 5m)")
}

// Stop halts the refresher and waits for an in-flight refresh to finish.
func (s *RosterStore) Stop() {
	if s.cron == nil {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("[ROSTER] snapshot refresher stopped")
}
