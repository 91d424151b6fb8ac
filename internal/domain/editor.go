package domain

import (
	"strings"
)

// EditorState is one snapshot of the structuring editor.
// Every operation returns a new snapshot and leaves the receiver untouched.
type EditorState struct {
	Structure Structure `json:"structure"`
	Current   int       `json:"current"`
	Renaming  bool      `json:"renaming"`

	// BackupName is the committed name restored when a rename is cancelled.
	BackupName string `json:"backup_name,omitempty"`
	// PendingNew marks the current section as added but not yet named.
	PendingNew bool `json:"pending_new,omitempty"`
	// LastSection is where the editor returns when a pending insert is cancelled.
	LastSection int `json:"last_section"`
	// PendingDelete holds a section index waiting for confirmation.
	PendingDelete *int `json:"pending_delete,omitempty"`
}

// NewEditorState opens an editor on structure. An empty structure gets one default section.
func NewEditorState(structure Structure) EditorState {
	if len(structure.Sections) == 0 {
		structure = NewDefaultStructure(1)
	}
	return EditorState{Structure: structure.Clone()}
}

func (s EditorState) clone() EditorState {
	out := s
	out.Structure = s.Structure.Clone()
	if s.PendingDelete != nil {
		idx := *s.PendingDelete
		out.PendingDelete = &idx
	}
	return out
}

// CurrentSection returns the section the editor points at.
func (s EditorState) CurrentSection() Section {
	return s.Structure.Sections[s.Current]
}

// AddSection appends an unnamed section, moves to it and starts renaming it.
func (s EditorState) AddSection() (EditorState, error) {
	if s.Renaming {
		return s, NewEditorBusyError()
	}
	next := s.clone()
	next.Structure.Sections = append(next.Structure.Sections, Section{Questions: []Question{}})
	next.LastSection = s.Current
	next.Current = len(next.Structure.Sections) - 1
	next.Renaming = true
	next.PendingNew = true
	next.BackupName = ""
	next.PendingDelete = nil
	return next, nil
}

// BeginRename enters rename mode for the current section.
func (s EditorState) BeginRename() EditorState {
	if s.Renaming {
		return s
	}
	next := s.clone()
	next.BackupName = s.CurrentSection().Name
	next.Renaming = true
	return next
}

// RenameSection commits name for the current section.
// Empty names and names already used by a sibling (case-insensitive) are rejected.
func (s EditorState) RenameSection(name string) (EditorState, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return s, ValidationErrors{"name": MsgRequiredField}
	}
	if s.Structure.hasSectionNamed(trimmed, s.Current) {
		return s, ValidationErrors{"name": MsgExistingSection}
	}

	next := s.clone()
	next.Structure.Sections[next.Current].Name = trimmed
	next.Renaming = false
	next.PendingNew = false
	next.BackupName = ""
	return next, nil
}

// CancelRename leaves rename mode. A section added and never named is removed again.
func (s EditorState) CancelRename() EditorState {
	if !s.Renaming {
		return s
	}
	next := s.clone()
	if s.PendingNew {
		next.Structure.Sections = removeSection(next.Structure.Sections, s.Current)
		next.Current = clampIndex(s.LastSection, len(next.Structure.Sections))
	} else {
		next.Structure.Sections[next.Current].Name = s.BackupName
	}
	next.Renaming = false
	next.PendingNew = false
	next.BackupName = ""
	next.LastSection = 0
	return next
}

// DeleteSection removes the section at index. A section holding questions is only
// marked in PendingDelete and waits for ConfirmDelete.
func (s EditorState) DeleteSection(index int) (EditorState, error) {
	if len(s.Structure.Sections) == 1 {
		return s, NewNeedOneSectionError()
	}
	if s.Renaming {
		return s, NewEditorBusyError()
	}
	if index < 0 || index >= len(s.Structure.Sections) {
		return s, NewIndexOutOfRangeError("section", index, len(s.Structure.Sections))
	}

	if len(s.Structure.Sections[index].Questions) > 0 {
		next := s.clone()
		pending := index
		next.PendingDelete = &pending
		return next, nil
	}
	return s.eraseSection(index), nil
}

// ConfirmDelete removes the section waiting in PendingDelete.
func (s EditorState) ConfirmDelete() (EditorState, error) {
	if s.PendingDelete == nil {
		return s, NewInvalidInputError("no section is waiting for deletion")
	}
	if s.Renaming {
		return s, NewEditorBusyError()
	}
	index := *s.PendingDelete
	if len(s.Structure.Sections) == 1 {
		next := s.clone()
		next.PendingDelete = nil
		return next, NewNeedOneSectionError()
	}
	return s.eraseSection(index), nil
}

// CancelDelete drops a pending deletion.
func (s EditorState) CancelDelete() EditorState {
	if s.PendingDelete == nil {
		return s
	}
	next := s.clone()
	next.PendingDelete = nil
	return next
}

func (s EditorState) eraseSection(index int) EditorState {
	next := s.clone()
	next.Structure.Sections = removeSection(next.Structure.Sections, index)
	if index < next.Current {
		next.Current--
	}
	next.Current = clampIndex(next.Current, len(next.Structure.Sections))
	next.PendingDelete = nil
	return next
}

// Select moves to the section at index, cancelling a rename in progress.
// index is checked against the structure left after the cancel, which drops an unnamed new section.
func (s EditorState) Select(index int) (EditorState, error) {
	next := s.CancelRename()
	if index < 0 || index >= len(next.Structure.Sections) {
		return s, NewIndexOutOfRangeError("section", index, len(next.Structure.Sections))
	}
	if next.Current == index {
		return next, nil
	}
	next = next.clone()
	next.Current = index
	return next, nil
}

// Next moves to the following section; at the last section it only cancels a pending rename.
func (s EditorState) Next() EditorState {
	next := s.CancelRename()
	if next.Current >= len(next.Structure.Sections)-1 {
		return next
	}
	next = next.clone()
	next.Current++
	return next
}

// Previous moves to the preceding section; at the first section it only cancels a pending rename.
func (s EditorState) Previous() EditorState {
	next := s.CancelRename()
	if next.Current == 0 {
		return next
	}
	next = next.clone()
	next.Current--
	return next
}

// AddQuestion validates q and appends it to the current section.
func (s EditorState) AddQuestion(q Question) (EditorState, error) {
	normalized, errs := q.Validate()
	if errs != nil {
		return s, errs
	}
	if s.CurrentSection().hasQuestion(normalized.Description) {
		return s, ValidationErrors{"description": MsgDuplicatedQuestion}
	}

	next := s.clone()
	section := &next.Structure.Sections[next.Current]
	section.Questions = append(section.Questions, normalized)
	return next, nil
}

// DeleteQuestion removes the question at index from the current section.
func (s EditorState) DeleteQuestion(index int) (EditorState, error) {
	if err := s.checkQuestionIndex(index); err != nil {
		return s, err
	}
	next := s.clone()
	section := &next.Structure.Sections[next.Current]
	section.Questions = append(section.Questions[:index], section.Questions[index+1:]...)
	return next, nil
}

// MoveQuestionUp swaps the question at index with its predecessor. Index 0 is a no-op.
func (s EditorState) MoveQuestionUp(index int) (EditorState, error) {
	if err := s.checkQuestionIndex(index); err != nil {
		return s, err
	}
	if index == 0 {
		return s, nil
	}
	return s.swapQuestions(index, index-1), nil
}

// MoveQuestionDown swaps the question at index with its successor. The last index is a no-op.
func (s EditorState) MoveQuestionDown(index int) (EditorState, error) {
	if err := s.checkQuestionIndex(index); err != nil {
		return s, err
	}
	if index == len(s.CurrentSection().Questions)-1 {
		return s, nil
	}
	return s.swapQuestions(index, index+1), nil
}

func (s EditorState) swapQuestions(i, j int) EditorState {
	next := s.clone()
	questions := next.Structure.Sections[next.Current].Questions
	questions[i], questions[j] = questions[j], questions[i]
	return next
}

func (s EditorState) checkQuestionIndex(index int) error {
	count := len(s.CurrentSection().Questions)
	if index < 0 || index >= count {
		return NewIndexOutOfRangeError("question", index, count)
	}
	return nil
}

func removeSection(sections []Section, index int) []Section {
	out := make([]Section, 0, len(sections)-1)
	out = append(out, sections[:index]...)
	return append(out, sections[index+1:]...)
}

func clampIndex(index, length int) int {
	if index >= length {
		index = length - 1
	}
	if index < 0 {
		index = 0
	}
	return index
}
