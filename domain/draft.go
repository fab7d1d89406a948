package domain

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Draft wizard tabs, in fixed order. The health tab edits both health
// sections.
var DraftTabs = []string{"student", "parents", "family", "housing", "health"}

// Section keys accepted by ApplySection.
const (
	SectionStudent       = "student"
	SectionParents       = "parents"
	SectionFamilyMembers = "familyMembers"
	SectionHousing       = "housing"
	SectionFamilyHealth  = "familyHealth"
	SectionStudentHealth = "studentHealth"
)

// RecordDraft is the in-memory working copy of a ficha familiar while it is
// being filled in. It is a plain serializable value; its lifetime is one
// form-editing task.
type RecordDraft struct {
	ID        string          `json:"id"`
	StudentID string          `json:"student_id,omitempty"`
	Editing   bool            `json:"editing"`
	TabIndex  int             `json:"tab_index"`
	Student   Student         `json:"student"`
	Parents   []Parent        `json:"parents"`
	Members   []FamilyMember  `json:"familyMembers"`
	Housing   Housing         `json:"housing"`
	FamHealth []FamilyHealth  `json:"familyHealth"`
	StuHealth []StudentHealth `json:"studentHealth"`
}

// NewRecordDraft seeds a draft for a new record: only the owning user on the
// student section and the three parent placeholder slots.
func NewRecordDraft(userID int) *RecordDraft {
	return &RecordDraft{
		ID:        uuid.NewString(),
		Student:   Student{UserID: userID},
		Parents:   parentSlots(),
		Members:   []FamilyMember{},
		FamHealth: []FamilyHealth{},
		StuHealth: []StudentHealth{},
	}
}

// DraftFromRecord seeds a draft from an existing record for editing. The
// parents section falls back to the placeholder slots when the stored set is
// empty.
func DraftFromRecord(rec *FamilyRecord) *RecordDraft {
	d := &RecordDraft{
		ID:        uuid.NewString(),
		StudentID: rec.Student.ID,
		Editing:   true,
		Student:   rec.Student,
		Parents:   rec.Parents,
		Members:   rec.FamilyMembers,
		FamHealth: rec.FamilyHealth,
		StuHealth: rec.StudentHealth,
	}
	if rec.Housing != nil {
		d.Housing = *rec.Housing
	}
	if len(d.Parents) == 0 {
		d.Parents = parentSlots()
	}
	if d.Members == nil {
		d.Members = []FamilyMember{}
	}
	if d.FamHealth == nil {
		d.FamHealth = []FamilyHealth{}
	}
	if d.StuHealth == nil {
		d.StuHealth = []StudentHealth{}
	}
	return d
}

func parentSlots() []Parent {
	return []Parent{{Tipo: TipoPapa}, {Tipo: TipoMama}, {Tipo: TipoApoderado}}
}

func (d *RecordDraft) CurrentTab() string { return DraftTabs[d.TabIndex] }

// Next advances one tab. No-op on the last tab, which exposes submit instead.
func (d *RecordDraft) Next() {
	if d.TabIndex < len(DraftTabs)-1 {
		d.TabIndex++
	}
}

// Previous moves one tab back. No-op on the first tab.
func (d *RecordDraft) Previous() {
	if d.TabIndex > 0 {
		d.TabIndex--
	}
}

// Progress is the 1-based tab position over the tab count, as a percentage.
// Purely presentational.
func (d *RecordDraft) Progress() int {
	return (d.TabIndex + 1) * 100 / len(DraftTabs)
}

// SectionPayload carries a wholesale replacement for one draft section.
type SectionPayload struct {
	Student   *Student         `json:"student,omitempty"`
	Parents   *[]Parent        `json:"parents,omitempty"`
	Members   *[]FamilyMember  `json:"familyMembers,omitempty"`
	Housing   *Housing         `json:"housing,omitempty"`
	FamHealth *[]FamilyHealth  `json:"familyHealth,omitempty"`
	StuHealth *[]StudentHealth `json:"studentHealth,omitempty"`
}

// ApplySection replaces one named section. Family members are renumbered
// 1-based over the new ordering, so Numero stays a display position.
func (d *RecordDraft) ApplySection(section string, p SectionPayload) error {
	switch section {
	case SectionStudent:
		if p.Student != nil {
			owner := d.Student.UserID
			d.Student = *p.Student
			if d.Student.UserID == 0 {
				d.Student.UserID = owner
			}
		}
	case SectionParents:
		if p.Parents != nil {
			d.Parents = *p.Parents
		}
	case SectionFamilyMembers:
		if p.Members != nil {
			d.Members = *p.Members
			for i := range d.Members {
				d.Members[i].Numero = i + 1
			}
		}
	case SectionHousing:
		if p.Housing != nil {
			d.Housing = *p.Housing
		}
	case SectionFamilyHealth:
		if p.FamHealth != nil {
			d.FamHealth = *p.FamHealth
		}
	case SectionStudentHealth:
		if p.StuHealth != nil {
			d.StuHealth = *p.StuHealth
		}
	default:
		return fmt.Errorf("unknown draft section: %s", section)
	}
	return nil
}

// Record assembles the draft into the aggregate handed to the save protocol.
// The housing section becomes a row only when it has data.
func (d *RecordDraft) Record() *FamilyRecord {
	rec := &FamilyRecord{
		Student:       d.Student,
		Parents:       d.Parents,
		FamilyMembers: d.Members,
		FamilyHealth:  d.FamHealth,
		StudentHealth: d.StuHealth,
	}
	if d.Housing.HasData() {
		h := d.Housing
		rec.Housing = &h
	}
	return rec
}

type DraftUseCase interface {
	StartDraft(ctx context.Context, userID int) (*RecordDraft, error)
	StartDraftFor(ctx context.Context, studentID string) (*RecordDraft, error)
	GetDraft(ctx context.Context, id string) (*RecordDraft, error)
	UpdateSection(ctx context.Context, id, section string, payload SectionPayload) (*RecordDraft, error)
	NextTab(ctx context.Context, id string) (*RecordDraft, error)
	PreviousTab(ctx context.Context, id string) (*RecordDraft, error)
	// SubmitDraft runs the save protocol once; a second submit while one is
	// outstanding is rejected. On success the draft is discarded and the
	// persisted student id returned; on failure the draft is kept for retry.
	SubmitDraft(ctx context.Context, id string) (string, error)
}
