package domain

import "fmt"

// EditorActionType names one user action on the structuring editor.
type EditorActionType string

const (
	ActionAddSection     EditorActionType = "addSection"
	ActionBeginRename    EditorActionType = "beginRename"
	ActionRenameSection  EditorActionType = "renameSection"
	ActionCancelRename   EditorActionType = "cancelRename"
	ActionDeleteSection  EditorActionType = "deleteSection"
	ActionConfirmDelete  EditorActionType = "confirmDelete"
	ActionCancelDelete   EditorActionType = "cancelDelete"
	ActionNext           EditorActionType = "next"
	ActionPrevious       EditorActionType = "previous"
	ActionSelect         EditorActionType = "select"
	ActionAddQuestion    EditorActionType = "addQuestion"
	ActionDeleteQuestion EditorActionType = "deleteQuestion"
	ActionMoveUp         EditorActionType = "moveUp"
	ActionMoveDown       EditorActionType = "moveDown"
)

// EditorAction carries the arguments of one action. Only the fields the action needs are read.
type EditorAction struct {
	Type     EditorActionType `json:"type"`
	Index    *int             `json:"index,omitempty"`
	Name     string           `json:"name,omitempty"`
	Question *Question        `json:"question,omitempty"`
}

// Apply dispatches action and returns the resulting snapshot.
// On error the receiver is returned unchanged, except for ConfirmDelete hitting the last section.
func (s EditorState) Apply(action EditorAction) (EditorState, error) {
	switch action.Type {
	case ActionAddSection:
		return s.AddSection()
	case ActionBeginRename:
		return s.BeginRename(), nil
	case ActionRenameSection:
		return s.RenameSection(action.Name)
	case ActionCancelRename:
		return s.CancelRename(), nil
	case ActionConfirmDelete:
		return s.ConfirmDelete()
	case ActionCancelDelete:
		return s.CancelDelete(), nil
	case ActionNext:
		return s.Next(), nil
	case ActionPrevious:
		return s.Previous(), nil
	case ActionAddQuestion:
		if action.Question == nil {
			return s, ValidationErrors{"question": MsgRequiredField}
		}
		return s.AddQuestion(*action.Question)
	case ActionDeleteSection, ActionSelect, ActionDeleteQuestion, ActionMoveUp, ActionMoveDown:
		if action.Index == nil {
			return s, ValidationErrors{"index": MsgRequiredField}
		}
		return s.applyIndexed(action.Type, *action.Index)
	case "":
		return s, ValidationErrors{"type": MsgRequiredField}
	default:
		return s, NewInvalidInputError(fmt.Sprintf("unknown editor action: %s", action.Type))
	}
}

func (s EditorState) applyIndexed(t EditorActionType, index int) (EditorState, error) {
	switch t {
	case ActionDeleteSection:
		return s.DeleteSection(index)
	case ActionSelect:
		return s.Select(index)
	case ActionDeleteQuestion:
		return s.DeleteQuestion(index)
	case ActionMoveUp:
		return s.MoveQuestionUp(index)
	default:
		return s.MoveQuestionDown(index)
	}
}
