package sheet

import (
	"context"
	"errors"
	"time"

	"github.com/campus-conduct/drl-server/internal/criteria"
	"github.com/campus-conduct/drl-server/internal/period"
)

// Service orchestrates sheet load/save/submit against the record store,
// applying the visibility, lock and workflow policies. One service
// instance serves all sessions; concurrent editors of the same sheet are
// last-write-wins by design.
type Service struct {
	store   Store
	periods period.Store
	catalog *criteria.Catalog
	now     func() time.Time
}

func NewService(store Store, periods period.Store, catalog *criteria.Catalog, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, periods: periods, catalog: catalog, now: now}
}

// SaveInput carries an edit session's current maps. Absent tiers are
// left untouched; tiers the actor may not edit are silently skipped.
// A nil Proofs map leaves stored proofs unchanged.
type SaveInput struct {
	Tiers  map[Tier]map[string]float64
	Proofs map[string]string
}

// Load returns the actor's view of the raw sheet, or the in-memory
// default when nothing is persisted yet. Students may only load their
// own sheet.
func (s *Service) Load(ctx context.Context, actor Actor, studentID, periodID string) (Sheet, error) {
	if err := s.authorize(actor, studentID); err != nil {
		return Sheet{}, err
	}
	sh, _, err := s.load(ctx, studentID, periodID)
	return sh, err
}

// Save persists a draft save: tier maps and proofs change, status does
// not. Refused as a no-op while the period window is locked for the
// actor.
func (s *Service) Save(ctx context.Context, actor Actor, studentID, periodID string, in SaveInput) (Sheet, []criteria.Warning, error) {
	return s.save(ctx, actor, studentID, periodID, in, StatusNone)
}

// Submit resolves the actor's submit transition and persists the sheet
// with the new status. The acting tier's scores may be empty; an empty
// submission simply carries zero.
func (s *Service) Submit(ctx context.Context, actor Actor, studentID, periodID string, in SaveInput) (Sheet, []criteria.Warning, error) {
	if err := s.authorize(actor, studentID); err != nil {
		return Sheet{}, nil, err
	}
	_, cur, err := s.load(ctx, studentID, periodID)
	if err != nil {
		return Sheet{}, nil, err
	}
	target, err := SubmitTarget(actor.Role, cur)
	if err != nil {
		return Sheet{}, nil, err
	}
	return s.save(ctx, actor, studentID, periodID, in, target)
}

// Unsubmit pulls a submitted sheet back to draft so the student can
// edit again. Legal only from submitted, and only inside the window.
func (s *Service) Unsubmit(ctx context.Context, actor Actor, studentID, periodID string) (Sheet, error) {
	if err := s.authorize(actor, studentID); err != nil {
		return Sheet{}, err
	}
	sh, cur, err := s.load(ctx, studentID, periodID)
	if err != nil {
		return Sheet{}, err
	}
	if !CanUnsubmit(actor.Role, cur) {
		return Sheet{}, &IllegalTransitionError{Role: actor.Role, Action: "unsubmit", From: cur}
	}
	if lock, err := s.lockFor(ctx, actor, periodID); err != nil {
		return Sheet{}, err
	} else if lock.Locked {
		return Sheet{}, ErrLocked
	}
	sh.Status = StatusDraft
	s.finalize(&sh)
	if err := s.store.Put(ctx, sh); err != nil {
		return Sheet{}, err
	}
	return sh, nil
}

// SetProof records an uploaded attachment reference on a criterion.
// Proofs belong to the student tier: only the owning student (while the
// self tier is editable and the window open) or an admin may change them.
func (s *Service) SetProof(ctx context.Context, actor Actor, studentID, periodID, criterionID, url string) (Sheet, error) {
	if !s.catalog.IsLeaf(criterionID) {
		return Sheet{}, &criteria.ValidationError{CriterionID: criterionID, Msg: "unknown criterion"}
	}
	return s.mutateProofs(ctx, actor, studentID, periodID, func(p map[string]string) {
		p[criterionID] = url
	})
}

// RemoveProof drops the attachment reference; the stored object is the
// caller's to delete.
func (s *Service) RemoveProof(ctx context.Context, actor Actor, studentID, periodID, criterionID string) (Sheet, string, error) {
	var old string
	sh, err := s.mutateProofs(ctx, actor, studentID, periodID, func(p map[string]string) {
		old = p[criterionID]
		delete(p, criterionID)
	})
	return sh, old, err
}

// List returns sheets for dashboards. Students are restricted to their
// own records; tier totals the actor may not see are zeroed and details
// are stripped.
func (s *Service) List(ctx context.Context, actor Actor, opts ListOpts) ([]Sheet, error) {
	if actor.Role == RoleStudent {
		opts.StudentID = actor.ID
	}
	sheets, err := s.store.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	out := make([]Sheet, 0, len(sheets))
	for _, sh := range sheets {
		redactTotals(&sh, actor.Role)
		sh.Details = Details{}
		out = append(out, sh)
	}
	return out, nil
}

func (s *Service) save(ctx context.Context, actor Actor, studentID, periodID string, in SaveInput, target Status) (Sheet, []criteria.Warning, error) {
	if err := s.authorize(actor, studentID); err != nil {
		return Sheet{}, nil, err
	}
	lock, err := s.lockFor(ctx, actor, periodID)
	if err != nil {
		return Sheet{}, nil, err
	}
	if lock.Locked {
		return Sheet{}, nil, ErrLocked
	}

	sh, cur, err := s.load(ctx, studentID, periodID)
	if err != nil {
		return Sheet{}, nil, err
	}

	var warns []criteria.Warning
	for _, tier := range Tiers {
		raw, ok := in.Tiers[tier]
		if !ok {
			continue
		}
		if !TierAccess(tier, actor.Role, cur).Editable {
			continue // non-editable tier: silently refused, stored values kept
		}
		m, w, err := s.catalog.Normalize(raw)
		if err != nil {
			return Sheet{}, nil, err
		}
		warns = append(warns, w...)
		sh.setTierMap(tier, m)
	}
	if in.Proofs != nil && s.canModifyProofs(actor, cur) {
		sh.Details.Proofs = in.Proofs
	}

	if target != StatusNone {
		sh.Status = target
	} else if cur != StatusNone {
		sh.Status = cur // draft save keeps whatever status the sheet had
	}
	s.finalize(&sh)
	if err := s.store.Put(ctx, sh); err != nil {
		return Sheet{}, nil, err
	}
	return sh, warns, nil
}

// load fetches the persisted sheet, or the in-memory default. The
// returned status is StatusNone when no record exists, which the
// policies treat differently from a saved draft.
func (s *Service) load(ctx context.Context, studentID, periodID string) (Sheet, Status, error) {
	sh, err := s.store.Get(ctx, studentID, periodID)
	if errors.Is(err, ErrNotFound) {
		return NewSheet(studentID, periodID), StatusNone, nil
	}
	if err != nil {
		return Sheet{}, StatusNone, err
	}
	if sh.Details.Proofs == nil {
		sh.Details.Proofs = map[string]string{}
	}
	return sh, sh.Status, nil
}

func (s *Service) lockFor(ctx context.Context, actor Actor, periodID string) (LockState, error) {
	p, err := s.periods.Get(ctx, periodID)
	if errors.Is(err, period.ErrNotFound) {
		return LockState{}, nil // unknown period carries no window
	}
	if err != nil {
		return LockState{}, err
	}
	return CheckLock(actor.Role, p, s.now()), nil
}

func (s *Service) authorize(actor Actor, studentID string) error {
	if actor.Role == RoleStudent && actor.ID != studentID {
		return ErrForbidden
	}
	return nil
}

func (s *Service) canModifyProofs(actor Actor, cur Status) bool {
	if actor.Role == RoleAdmin {
		return true
	}
	return actor.Role == RoleStudent && TierAccess(TierSelf, actor.Role, cur).Editable
}

func (s *Service) mutateProofs(ctx context.Context, actor Actor, studentID, periodID string, fn func(map[string]string)) (Sheet, error) {
	if err := s.authorize(actor, studentID); err != nil {
		return Sheet{}, err
	}
	lock, err := s.lockFor(ctx, actor, periodID)
	if err != nil {
		return Sheet{}, err
	}
	if lock.Locked {
		return Sheet{}, ErrLocked
	}
	sh, cur, err := s.load(ctx, studentID, periodID)
	if err != nil {
		return Sheet{}, err
	}
	if !s.canModifyProofs(actor, cur) {
		return Sheet{}, ErrForbidden
	}
	fn(sh.Details.Proofs)
	if cur != StatusNone {
		sh.Status = cur
	}
	s.finalize(&sh)
	if err := s.store.Put(ctx, sh); err != nil {
		return Sheet{}, err
	}
	return sh, nil
}

// finalize recomputes the four clamped totals and the derived final
// score before every write.
func (s *Service) finalize(sh *Sheet) {
	sh.SelfScore = s.catalog.GrandTotal(sh.Details.Self)
	sh.ClassScore = s.catalog.GrandTotal(sh.Details.Class)
	sh.BchScore = s.catalog.GrandTotal(sh.Details.Bch)
	sh.FacultyScore = s.catalog.GrandTotal(sh.Details.Faculty)
	sh.FinalScore = s.bestFinalScore(sh)
	sh.UpdatedAt = s.now().Unix()
}

// bestFinalScore picks the first tier by priority faculty > bch > class
// that has actually been graded — at least one explicit key, or a
// positive clamped total — and falls back to the self total. A reviewer
// who deliberately enters all zeros counts as graded via key presence.
func (s *Service) bestFinalScore(sh *Sheet) int {
	type cand struct {
		m     criteria.ScoreMap
		total int
	}
	for _, c := range []cand{
		{sh.Details.Faculty, sh.FacultyScore},
		{sh.Details.Bch, sh.BchScore},
		{sh.Details.Class, sh.ClassScore},
	} {
		if len(c.m) > 0 || c.total > 0 {
			return c.total
		}
	}
	return sh.SelfScore
}

// Redacted returns a copy of sh with the tier value maps and totals
// the role may not see at the sheet's current status zeroed, so a
// write response never echoes another tier's in-progress numbers back
// to the writer. The derived final score stays, as in the composed
// view.
func Redacted(sh Sheet, role string) Sheet {
	redactTotals(&sh, role)
	for _, tier := range Tiers {
		if !TierAccess(tier, role, sh.Status).Visible {
			sh.setTierMap(tier, criteria.ScoreMap{})
		}
	}
	return sh
}

// redactTotals zeroes the persisted tier totals a role may not see at
// the sheet's current status.
func redactTotals(sh *Sheet, role string) {
	if !TierAccess(TierClass, role, sh.Status).Visible {
		sh.ClassScore = 0
	}
	if !TierAccess(TierBch, role, sh.Status).Visible {
		sh.BchScore = 0
	}
	if !TierAccess(TierFaculty, role, sh.Status).Visible {
		sh.FacultyScore = 0
	}
}
