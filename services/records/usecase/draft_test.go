package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fichaescolar/domain"
)

// fakeRecordRepo records save calls and can be told to fail or to block until
// released, which lets the tests exercise the one-submit-at-a-time guard.
type fakeRecordRepo struct {
	mu       sync.Mutex
	created  []*domain.FamilyRecord
	replaced map[string]*domain.FamilyRecord
	stored   map[string]*domain.FamilyRecord
	failSave error
	entered  chan struct{}
	block    chan struct{}
	nextID   string
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{
		replaced: make(map[string]*domain.FamilyRecord),
		stored:   make(map[string]*domain.FamilyRecord),
		nextID:   "student-1",
	}
}

func (f *fakeRecordRepo) CreateRecord(ctx context.Context, rec *domain.FamilyRecord) (string, error) {
	if f.block != nil {
		f.entered <- struct{}{}
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSave != nil {
		return "", f.failSave
	}
	f.created = append(f.created, rec)
	return f.nextID, nil
}

func (f *fakeRecordRepo) ReplaceRecord(ctx context.Context, studentID string, rec *domain.FamilyRecord) error {
	if f.block != nil {
		f.entered <- struct{}{}
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSave != nil {
		return f.failSave
	}
	f.replaced[studentID] = rec
	return nil
}

func (f *fakeRecordRepo) GetRecordByStudentID(ctx context.Context, studentID string) (*domain.FamilyRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.stored[studentID]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeRecordRepo) DeleteRecord(ctx context.Context, studentID string) error {
	return nil
}

func validDraftSection() domain.SectionPayload {
	return domain.SectionPayload{
		Student: &domain.Student{
			Nombres:         "Juan",
			ApellidoPaterno: "Garcia",
			ApellidoMaterno: "Lopez",
			Nivel:           domain.NivelPrimaria,
		},
	}
}

func TestDraftLifecycle(t *testing.T) {
	repo := newFakeRecordRepo()
	dm := NewDraftManager(repo, time.Second)
	ctx := context.Background()

	d, err := dm.StartDraft(ctx, 1)
	require.NoError(t, err)

	got, err := dm.GetDraft(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d.ID, got.ID)

	_, err = dm.UpdateSection(ctx, d.ID, domain.SectionStudent, validDraftSection())
	require.NoError(t, err)

	got, err = dm.NextTab(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "parents", got.CurrentTab())

	got, err = dm.PreviousTab(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "student", got.CurrentTab())

	id, err := dm.SubmitDraft(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "student-1", id)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Juan", repo.created[0].Student.Nombres)

	// the draft is gone after a successful submit
	_, err = dm.GetDraft(ctx, d.ID)
	assert.True(t, errors.Is(err, domain.ErrRecordNotFound))
}

func TestDraftUnknownID(t *testing.T) {
	dm := NewDraftManager(newFakeRecordRepo(), time.Second)
	ctx := context.Background()

	_, err := dm.GetDraft(ctx, "missing")
	assert.True(t, errors.Is(err, domain.ErrRecordNotFound))

	_, err = dm.NextTab(ctx, "missing")
	assert.True(t, errors.Is(err, domain.ErrRecordNotFound))

	_, err = dm.SubmitDraft(ctx, "missing")
	assert.True(t, errors.Is(err, domain.ErrRecordNotFound))
}

func TestSubmitDraftKeptOnFailure(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.failSave = errors.New("db down")
	dm := NewDraftManager(repo, time.Second)
	ctx := context.Background()

	d, err := dm.StartDraft(ctx, 1)
	require.NoError(t, err)
	_, err = dm.UpdateSection(ctx, d.ID, domain.SectionStudent, validDraftSection())
	require.NoError(t, err)

	_, err = dm.SubmitDraft(ctx, d.ID)
	require.Error(t, err)

	// draft survives for a retry
	_, err = dm.GetDraft(ctx, d.ID)
	require.NoError(t, err)

	// and a retry succeeds once the store recovers
	repo.mu.Lock()
	repo.failSave = nil
	repo.mu.Unlock()

	id, err := dm.SubmitDraft(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "student-1", id)
}

func TestSubmitDraftConcurrentGuard(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.entered = make(chan struct{})
	repo.block = make(chan struct{})
	dm := NewDraftManager(repo, time.Second)
	ctx := context.Background()

	d, err := dm.StartDraft(ctx, 1)
	require.NoError(t, err)
	_, err = dm.UpdateSection(ctx, d.ID, domain.SectionStudent, validDraftSection())
	require.NoError(t, err)

	firstDone := make(chan error, 1)
	go func() {
		_, err := dm.SubmitDraft(ctx, d.ID)
		firstDone <- err
	}()

	// the first submit holds the saving flag while it sits in the store call
	<-repo.entered
	_, err = dm.SubmitDraft(ctx, d.ID)
	assert.True(t, errors.Is(err, domain.ErrSaveInProgress))

	close(repo.block)
	require.NoError(t, <-firstDone)
}

func TestStartDraftForSeedsEdit(t *testing.T) {
	repo := newFakeRecordRepo()
	nombres := "Maria"
	repo.stored["abc"] = &domain.FamilyRecord{
		Student: domain.Student{ID: "abc", Nombres: "Juan", ApellidoPaterno: "Garcia", ApellidoMaterno: "Lopez", Nivel: domain.NivelPrimaria},
		Parents: []domain.Parent{{Tipo: domain.TipoMama, Nombres: &nombres}},
	}
	dm := NewDraftManager(repo, time.Second)
	ctx := context.Background()

	d, err := dm.StartDraftFor(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, d.Editing)
	assert.Equal(t, "abc", d.StudentID)

	id, err := dm.SubmitDraft(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "abc", id)
	assert.Contains(t, repo.replaced, "abc")

	_, err = dm.StartDraftFor(ctx, "missing")
	assert.True(t, errors.Is(err, domain.ErrRecordNotFound))
}
