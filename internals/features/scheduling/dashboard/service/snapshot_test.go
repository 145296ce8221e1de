package service

import (
	"testing"

	"github.com/google/uuid"

	attModel "careportal_backend/internals/features/scheduling/attendance/model"
)

func TestRosterStoreApplyLeavesHeldSnapshotUntouched(t *testing.T) {
	store := NewRosterStore(nil)
	a := attModel.AttendanceModel{
		AttendanceID:   uuid.New(),
		AttendanceDate: "2025-03-03",
		AttendanceIn:   strPtr("09:00"),
	}
	store.snap.Attendance = []attModel.AttendanceModel{a}

	// A request handler holds this across the save.
	held := store.Current().Attendance

	edited := a
	edited.AttendanceIn = strPtr("10:30")
	store.Apply(edited)

	if held[0].InOrEmpty() != "09:00" {
		t.Fatalf("held snapshot changed underfoot: in = %q", held[0].InOrEmpty())
	}
	if got := store.Current().Attendance[0].InOrEmpty(); got != "10:30" {
		t.Fatalf("current snapshot in = %q, want 10:30", got)
	}
}

func TestRosterStoreApplyConcurrentWithReads(t *testing.T) {
	store := NewRosterStore(nil)
	rows := make([]attModel.AttendanceModel, 0, 8)
	for i := 0; i < 8; i++ {
		rows = append(rows, attModel.AttendanceModel{
			AttendanceID:   uuid.New(),
			AttendanceDate: "2025-03-03",
		})
	}
	store.snap.Attendance = rows

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			snap := store.Current()
			for j := range snap.Attendance {
				_ = snap.Attendance[j].InOrEmpty()
			}
		}
	}()

	edited := rows[3]
	for i := 0; i < 1000; i++ {
		edited.AttendanceIn = strPtr("10:30")
		store.Apply(edited)
	}
	<-done
}
