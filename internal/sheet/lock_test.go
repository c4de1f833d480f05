package sheet_test

import (
	"strings"
	"testing"
	"time"

	"github.com/campus-conduct/drl-server/internal/period"
	"github.com/campus-conduct/drl-server/internal/sheet"
)

func TestLockBeforeWindowOpens(t *testing.T) {
	now := time.Date(2024, 10, 1, 12, 0, 0, 0, time.Local)
	start := now.AddDate(0, 0, 1)
	p := period.Period{ID: "HK1_2024", StartDate: &start}

	lock := sheet.CheckLock(sheet.RoleStudent, p, now)
	if !lock.Locked {
		t.Fatalf("expected locked before start date")
	}
	if !strings.Contains(lock.Reason, "not yet open") {
		t.Fatalf("unexpected reason: %q", lock.Reason)
	}
}

func TestLockAfterWindowCloses(t *testing.T) {
	now := time.Date(2024, 10, 1, 12, 0, 0, 0, time.Local)
	end := now.AddDate(0, 0, -1)
	p := period.Period{ID: "HK1_2024", EndDate: &end}

	lock := sheet.CheckLock(sheet.RoleStudent, p, now)
	if !lock.Locked {
		t.Fatalf("expected locked after end date")
	}
	if !strings.Contains(lock.Reason, "closed") {
		t.Fatalf("unexpected reason: %q", lock.Reason)
	}
}

func TestEndDateRunsToEndOfDay(t *testing.T) {
	end := time.Date(2024, 10, 1, 0, 0, 0, 0, time.Local)
	p := period.Period{ID: "HK1_2024", EndDate: &end}

	// 23:59 on the end date is still inside the window
	now := time.Date(2024, 10, 1, 23, 59, 0, 0, time.Local)
	if sheet.CheckLock(sheet.RoleStudent, p, now).Locked {
		t.Fatalf("end date must be treated as end of day")
	}
	// the next morning is not
	now = time.Date(2024, 10, 2, 0, 1, 0, 0, time.Local)
	if !sheet.CheckLock(sheet.RoleStudent, p, now).Locked {
		t.Fatalf("expected locked the day after the end date")
	}
}

func TestNoDatesNeverLocks(t *testing.T) {
	p := period.Period{ID: "HK1_2024"}
	if sheet.CheckLock(sheet.RoleStudent, p, time.Now()).Locked {
		t.Fatalf("period without dates must never lock")
	}
}

func TestReviewersAreNeverWindowLocked(t *testing.T) {
	now := time.Date(2024, 10, 1, 12, 0, 0, 0, time.Local)
	end := now.AddDate(0, 0, -30)
	p := period.Period{ID: "HK1_2024", EndDate: &end}
	for _, role := range []string{sheet.RoleMonitor, sheet.RoleBch, sheet.RoleDoanKhoa, sheet.RoleAdmin} {
		if sheet.CheckLock(role, p, now).Locked {
			t.Fatalf("role %s must not be subject to the period window", role)
		}
	}
}
