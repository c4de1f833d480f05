package sheet_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campus-conduct/drl-server/internal/criteria"
	"github.com/campus-conduct/drl-server/internal/period"
	"github.com/campus-conduct/drl-server/internal/sheet"
)

var (
	student = sheet.Actor{ID: "sv001", Role: sheet.RoleStudent, ClassID: "D21CQCN01"}
	monitor = sheet.Actor{ID: "mn001", Role: sheet.RoleMonitor, ClassID: "D21CQCN01"}
	bch     = sheet.Actor{ID: "bch01", Role: sheet.RoleBch, ClassID: "D21CQCN01"}
	faculty = sheet.Actor{ID: "dk001", Role: sheet.RoleDoanKhoa}
)

func newTestService(t *testing.T) (*sheet.Service, period.Store) {
	t.Helper()
	periods := period.NewInMemoryStore()
	now := func() time.Time { return time.Date(2024, 10, 15, 9, 0, 0, 0, time.Local) }
	svc := sheet.NewService(sheet.NewInMemoryStore(), periods, criteria.Default(), now)
	return svc, periods
}

func selfSave(m map[string]float64) sheet.SaveInput {
	return sheet.SaveInput{Tiers: map[sheet.Tier]map[string]float64{sheet.TierSelf: m}}
}

func TestLoadDefaultsToEmptySheet(t *testing.T) {
	svc, _ := newTestService(t)
	sh, err := svc.Load(context.Background(), student, "sv001", "HK1_2024")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sh.FinalScore != 0 || sh.SelfScore != 0 {
		t.Fatalf("fresh sheet must score 0, got final=%d self=%d", sh.FinalScore, sh.SelfScore)
	}
	if sh.Status != sheet.StatusDraft {
		t.Fatalf("fresh sheet status: want draft, got %q", sh.Status)
	}
}

func TestSaveCreatesRecordLazily(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	sh, warns, err := svc.Save(ctx, student, "sv001", "HK1_2024", selfSave(map[string]float64{"I.1": 5, "II.1": 5}))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
	if sh.SelfScore != 10 || sh.FinalScore != 10 {
		t.Fatalf("want self=10 final=10, got self=%d final=%d", sh.SelfScore, sh.FinalScore)
	}

	got, err := svc.Load(ctx, student, "sv001", "HK1_2024")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.SelfScore != 10 || got.Status != sheet.StatusDraft {
		t.Fatalf("persisted sheet wrong: %+v", got)
	}
}

func TestStudentCannotTouchOtherSheets(t *testing.T) {
	svc, _ := newTestService(t)
	_, _, err := svc.Save(context.Background(), student, "sv002", "HK1_2024", selfSave(map[string]float64{"I.1": 5}))
	if !errors.Is(err, sheet.ErrForbidden) {
		t.Fatalf("want ErrForbidden, got %v", err)
	}
}

func TestEditAfterSubmitIsSilentlyDropped(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, _, err := svc.Save(ctx, student, "sv001", "HK1_2024", selfSave(map[string]float64{"I.1": 5})); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, _, err := svc.Submit(ctx, student, "sv001", "HK1_2024", sheet.SaveInput{}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// the save goes through but the non-editable self tier keeps its values
	sh, _, err := svc.Save(ctx, student, "sv001", "HK1_2024", selfSave(map[string]float64{"I.1": 10}))
	if err != nil {
		t.Fatalf("post-submit save: %v", err)
	}
	if sh.SelfScore != 5 {
		t.Fatalf("submitted self score must stay 5, got %d", sh.SelfScore)
	}
	if sh.Status != sheet.StatusSubmitted {
		t.Fatalf("status must stay submitted, got %q", sh.Status)
	}

	// after unsubmit the sheet is draft again and the edit lands
	if _, err := svc.Unsubmit(ctx, student, "sv001", "HK1_2024"); err != nil {
		t.Fatalf("unsubmit: %v", err)
	}
	sh, _, err = svc.Save(ctx, student, "sv001", "HK1_2024", selfSave(map[string]float64{"I.1": 10}))
	if err != nil {
		t.Fatalf("post-unsubmit save: %v", err)
	}
	if sh.SelfScore != 10 || sh.Status != sheet.StatusDraft {
		t.Fatalf("want self=10 draft, got self=%d status=%q", sh.SelfScore, sh.Status)
	}
}

func TestReviewChainToFinalized(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, _, err := svc.Save(ctx, student, "sv001", "HK1_2024", selfSave(map[string]float64{"I.1": 5, "II.1": 5})); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, _, err := svc.Submit(ctx, student, "sv001", "HK1_2024", sheet.SaveInput{}); err != nil {
		t.Fatalf("student submit: %v", err)
	}
	if _, _, err := svc.Submit(ctx, monitor, "sv001", "HK1_2024", sheet.SaveInput{}); err != nil {
		t.Fatalf("monitor approve: %v", err)
	}

	// bch grades 40 points worth of criteria and approves
	sh, _, err := svc.Submit(ctx, bch, "sv001", "HK1_2024", sheet.SaveInput{
		Tiers: map[sheet.Tier]map[string]float64{
			sheet.TierBch: {"I.1": 5, "I.3": 10, "II.1": 5, "II.2": 5, "II.3": 5, "IV.12": 10},
		},
	})
	if err != nil {
		t.Fatalf("bch approve: %v", err)
	}
	if sh.Status != sheet.StatusBchApproved {
		t.Fatalf("want bch_approved, got %q", sh.Status)
	}
	if sh.BchScore != 40 || sh.FinalScore != 40 {
		t.Fatalf("bch grade must win the final score: bch=%d final=%d", sh.BchScore, sh.FinalScore)
	}

	sh, _, err = svc.Submit(ctx, faculty, "sv001", "HK1_2024", sheet.SaveInput{})
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if sh.Status != sheet.StatusFinalized {
		t.Fatalf("want finalized, got %q", sh.Status)
	}
	// faculty entered nothing, so bch still decides the final score
	if sh.FinalScore != 40 {
		t.Fatalf("final score after finalize: want 40, got %d", sh.FinalScore)
	}

	if _, _, err := svc.Submit(ctx, faculty, "sv001", "HK1_2024", sheet.SaveInput{}); err == nil {
		t.Fatalf("finalized must be terminal")
	}
}

func TestExplicitZeroGradeBeatsSelfScore(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, _, err := svc.Save(ctx, student, "sv001", "HK1_2024", selfSave(map[string]float64{"I.1": 5})); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, _, err := svc.Submit(ctx, student, "sv001", "HK1_2024", sheet.SaveInput{}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	// monitor deliberately zeroes a criterion: key presence means graded
	sh, _, err := svc.Submit(ctx, monitor, "sv001", "HK1_2024", sheet.SaveInput{
		Tiers: map[sheet.Tier]map[string]float64{sheet.TierClass: {"I.1": 0}},
	})
	if err != nil {
		t.Fatalf("monitor approve: %v", err)
	}
	if sh.FinalScore != 0 {
		t.Fatalf("explicit zero grade must drive final score to 0, got %d", sh.FinalScore)
	}
}

func TestClosedPeriodRefusesStudentWrites(t *testing.T) {
	svc, periods := newTestService(t)
	ctx := context.Background()

	end := time.Date(2024, 10, 1, 0, 0, 0, 0, time.Local) // before the service clock
	if err := periods.Put(ctx, period.Period{ID: "HK1_2024", EndDate: &end}); err != nil {
		t.Fatalf("put period: %v", err)
	}

	if _, _, err := svc.Save(ctx, student, "sv001", "HK1_2024", selfSave(map[string]float64{"I.1": 5})); !errors.Is(err, sheet.ErrLocked) {
		t.Fatalf("want ErrLocked on save, got %v", err)
	}
	if _, _, err := svc.Submit(ctx, student, "sv001", "HK1_2024", sheet.SaveInput{}); !errors.Is(err, sheet.ErrLocked) {
		t.Fatalf("want ErrLocked on submit, got %v", err)
	}

	// reviewers keep working after the student window closes
	if _, _, err := svc.Save(ctx, monitor, "sv001", "HK1_2024", sheet.SaveInput{}); err != nil {
		t.Fatalf("monitor save in closed window: %v", err)
	}
}

func TestProofLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	sh, err := svc.SetProof(ctx, student, "sv001", "HK1_2024", "I.1", "/assets/proofs/sv001/a.pdf")
	if err != nil {
		t.Fatalf("set proof: %v", err)
	}
	if sh.Details.Proofs["I.1"] != "/assets/proofs/sv001/a.pdf" {
		t.Fatalf("proof not stored: %v", sh.Details.Proofs)
	}

	if _, err := svc.SetProof(ctx, student, "sv001", "HK1_2024", "bogus", "x"); err == nil {
		t.Fatalf("unknown criterion must be rejected")
	}

	sh, old, err := svc.RemoveProof(ctx, student, "sv001", "HK1_2024", "I.1")
	if err != nil {
		t.Fatalf("remove proof: %v", err)
	}
	if old != "/assets/proofs/sv001/a.pdf" {
		t.Fatalf("remove must report the old url, got %q", old)
	}
	if _, ok := sh.Details.Proofs["I.1"]; ok {
		t.Fatalf("proof still present after removal")
	}
}

func TestProofsFrozenAfterSubmit(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, _, err := svc.Submit(ctx, student, "sv001", "HK1_2024", sheet.SaveInput{}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.SetProof(ctx, student, "sv001", "HK1_2024", "I.1", "x"); !errors.Is(err, sheet.ErrForbidden) {
		t.Fatalf("want ErrForbidden after submit, got %v", err)
	}
	// admin can still correct attachments
	admin := sheet.Actor{ID: "root", Role: sheet.RoleAdmin}
	if _, err := svc.SetProof(ctx, admin, "sv001", "HK1_2024", "I.1", "x"); err != nil {
		t.Fatalf("admin set proof: %v", err)
	}
}

func TestListScopesAndRedacts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	other := sheet.Actor{ID: "sv002", Role: sheet.RoleStudent}
	if _, _, err := svc.Save(ctx, student, "sv001", "HK1_2024", selfSave(map[string]float64{"I.1": 5})); err != nil {
		t.Fatalf("save sv001: %v", err)
	}
	if _, _, err := svc.Save(ctx, other, "sv002", "HK1_2024", selfSave(map[string]float64{"I.1": 3})); err != nil {
		t.Fatalf("save sv002: %v", err)
	}

	// a student listing sees only their own record, details stripped
	got, err := svc.List(ctx, student, sheet.ListOpts{PeriodID: "HK1_2024"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].StudentID != "sv001" {
		t.Fatalf("student list must be scoped to own sheet: %+v", got)
	}
	if len(got[0].Details.Self) != 0 {
		t.Fatalf("list must strip details")
	}

	got, err = svc.List(ctx, monitor, sheet.ListOpts{PeriodID: "HK1_2024"})
	if err != nil {
		t.Fatalf("monitor list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("monitor must see the whole class list, got %d", len(got))
	}
}

func TestRedactedZeroesInvisibleTiers(t *testing.T) {
	sh := sheet.NewSheet("sv001", "HK1_2024")
	sh.Status = sheet.StatusSubmitted
	sh.Details.Self["I.1"] = 5
	sh.Details.Class["I.1"] = 3
	sh.SelfScore, sh.ClassScore, sh.FinalScore = 5, 3, 3

	red := sheet.Redacted(sh, sheet.RoleStudent)
	if len(red.Details.Class) != 0 || red.ClassScore != 0 {
		t.Fatalf("class tier must be hidden at submitted: details=%v score=%d",
			red.Details.Class, red.ClassScore)
	}
	if red.Details.Self["I.1"] != 5 || red.SelfScore != 5 {
		t.Fatalf("self tier must survive redaction: %+v", red)
	}
	if red.FinalScore != 3 {
		t.Fatalf("final score is always disclosed, got %d", red.FinalScore)
	}
	// the input sheet is untouched
	if sh.Details.Class["I.1"] != 3 || sh.ClassScore != 3 {
		t.Fatalf("redaction must copy, not mutate: %+v", sh)
	}

	red = sheet.Redacted(sh, sheet.RoleMonitor)
	if red.Details.Class["I.1"] != 3 || red.ClassScore != 3 {
		t.Fatalf("monitor must keep the class tier: %+v", red)
	}
}
