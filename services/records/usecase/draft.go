package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fichaescolar/domain"
)

// draftManager holds the in-memory drafts of fichas being filled in. One
// draft per form-editing task; a draft disappears after a successful submit.
type draftManager struct {
	repo    domain.RecordRepo
	TimeOut time.Duration

	mu     sync.Mutex
	drafts map[string]*domain.RecordDraft
	saving map[string]bool
}

func NewDraftManager(repo domain.RecordRepo, to time.Duration) domain.DraftUseCase {
	return &draftManager{
		repo:    repo,
		TimeOut: to,
		drafts:  make(map[string]*domain.RecordDraft),
		saving:  make(map[string]bool),
	}
}

func (dm *draftManager) StartDraft(ctx context.Context, userID int) (*domain.RecordDraft, error) {
	d := domain.NewRecordDraft(userID)

	dm.mu.Lock()
	dm.drafts[d.ID] = d
	dm.mu.Unlock()

	return d, nil
}

// StartDraftFor seeds an edit draft from the stored record of studentID.
func (dm *draftManager) StartDraftFor(ctx context.Context, studentID string) (*domain.RecordDraft, error) {
	ctx, cancel := context.WithTimeout(ctx, dm.TimeOut)
	defer cancel()

	rec, err := dm.repo.GetRecordByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	d := domain.DraftFromRecord(rec)

	dm.mu.Lock()
	dm.drafts[d.ID] = d
	dm.mu.Unlock()

	return d, nil
}

func (dm *draftManager) GetDraft(ctx context.Context, id string) (*domain.RecordDraft, error) {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	d, ok := dm.drafts[id]
	if !ok {
		return nil, fmt.Errorf("draft with ID %s: %w", id, domain.ErrRecordNotFound)
	}
	return d, nil
}

func (dm *draftManager) UpdateSection(ctx context.Context, id, section string, payload domain.SectionPayload) (*domain.RecordDraft, error) {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	d, ok := dm.drafts[id]
	if !ok {
		return nil, fmt.Errorf("draft with ID %s: %w", id, domain.ErrRecordNotFound)
	}
	if err := d.ApplySection(section, payload); err != nil {
		return nil, err
	}
	return d, nil
}

func (dm *draftManager) NextTab(ctx context.Context, id string) (*domain.RecordDraft, error) {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	d, ok := dm.drafts[id]
	if !ok {
		return nil, fmt.Errorf("draft with ID %s: %w", id, domain.ErrRecordNotFound)
	}
	d.Next()
	return d, nil
}

func (dm *draftManager) PreviousTab(ctx context.Context, id string) (*domain.RecordDraft, error) {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	d, ok := dm.drafts[id]
	if !ok {
		return nil, fmt.Errorf("draft with ID %s: %w", id, domain.ErrRecordNotFound)
	}
	d.Previous()
	return d, nil
}

// SubmitDraft runs the save protocol exactly once per attempt. The draft is
// kept untouched on failure so the caller can correct and retry, and
// submission re-enables after the attempt either way.
func (dm *draftManager) SubmitDraft(ctx context.Context, id string) (string, error) {
	dm.mu.Lock()
	d, ok := dm.drafts[id]
	if !ok {
		dm.mu.Unlock()
		return "", fmt.Errorf("draft with ID %s: %w", id, domain.ErrRecordNotFound)
	}
	if dm.saving[id] {
		dm.mu.Unlock()
		return "", domain.ErrSaveInProgress
	}
	dm.saving[id] = true
	rec := d.Record()
	editing := d.Editing
	studentID := d.StudentID
	dm.mu.Unlock()

	defer func() {
		dm.mu.Lock()
		delete(dm.saving, id)
		dm.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(ctx, dm.TimeOut)
	defer cancel()

	if editing {
		if err := dm.repo.ReplaceRecord(ctx, studentID, rec); err != nil {
			return "", err
		}
	} else {
		newID, err := dm.repo.CreateRecord(ctx, rec)
		if err != nil {
			return "", err
		}
		studentID = newID
	}

	dm.mu.Lock()
	delete(dm.drafts, id)
	dm.mu.Unlock()

	return studentID, nil
}
