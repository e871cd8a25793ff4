package draft

import (
	"slices"

	"visibilitystack-cli/internal/model"
	"visibilitystack-cli/internal/store"
)

type ICPStore interface {
	ICP(id int64) (model.ICP, bool)
	AddICP(d model.ICPDraft) (model.ICP, error)
	UpdateICP(updated model.ICP) bool
}

// ICPEditors keeps one Session per ICP id, created on first use.
type ICPEditors struct {
	st       ICPStore
	sessions map[int64]*Session[model.ICP]
}

func NewICPEditors(st ICPStore) *ICPEditors {
	return &ICPEditors{st: st, sessions: map[int64]*Session[model.ICP]{}}
}

func (e *ICPEditors) session(id int64) *Session[model.ICP] {
	if s, ok := e.sessions[id]; ok {
		return s
	}
	load := func() (model.ICP, bool) { return e.st.ICP(id) }
	commit := func(icp model.ICP) error {
		if !model.HasName(icp.Name) {
			return store.ErrEmptyRequiredField
		}
		if !icp.Type.Valid() {
			return store.ErrUnknownICPType
		}
		// The id is never editable; force it back in case a caller changed it.
		icp.ID = id
		// A missing entry means it was deleted while the draft was open; the
		// update is dropped along with the draft.
		e.st.UpdateICP(icp)
		return nil
	}
	s := NewSession(load, commit)
	e.sessions[id] = s
	return s
}

// Enter opens a draft for id. Unknown ids get no session.
func (e *ICPEditors) Enter(id int64) bool {
	if _, ok := e.st.ICP(id); !ok {
		return false
	}
	return e.session(id).Enter()
}

func (e *ICPEditors) Editing(id int64) bool {
	s, ok := e.sessions[id]
	return ok && s.Editing()
}

func (e *ICPEditors) Draft(id int64) (model.ICP, bool) {
	s, ok := e.sessions[id]
	if !ok {
		return model.ICP{}, false
	}
	return s.Draft()
}

func (e *ICPEditors) SetName(id int64, v string) bool {
	return e.update(id, func(icp *model.ICP) { icp.Name = v })
}

func (e *ICPEditors) SetType(id int64, v model.ICPType) bool {
	return e.update(id, func(icp *model.ICP) { icp.Type = v })
}

func (e *ICPEditors) SetDescription(id int64, v string) bool {
	return e.update(id, func(icp *model.ICP) { icp.Description = v })
}

func (e *ICPEditors) update(id int64, fn func(*model.ICP)) bool {
	s, ok := e.sessions[id]
	return ok && s.Update(fn)
}

func (e *ICPEditors) Save(id int64) error {
	s, ok := e.sessions[id]
	if !ok {
		return ErrNotEditing
	}
	return s.Save()
}

func (e *ICPEditors) Cancel(id int64) bool {
	s, ok := e.sessions[id]
	return ok && s.Cancel()
}

// Forget drops the session for id, discarding any open draft. Used after
// the ICP is deleted.
func (e *ICPEditors) Forget(id int64) { delete(e.sessions, id) }

// Active returns the ids with an open draft, ascending.
func (e *ICPEditors) Active() []int64 {
	var ids []int64
	for id, s := range e.sessions {
		if s.Editing() {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// ICPAdder drives the "add ICP" form: NotAdding -> Adding -> NotAdding.
// Its draft is not bound to any committed entity until Save succeeds.
type ICPAdder struct {
	st     ICPStore
	adding bool
	draft  model.ICPDraft
}

func NewICPAdder(st ICPStore) *ICPAdder {
	return &ICPAdder{st: st, draft: model.BlankICPDraft()}
}

func (a *ICPAdder) Adding() bool { return a.adding }

// Start opens the form. The draft is whatever the last reset left, which is
// always the blank template.
func (a *ICPAdder) Start() bool {
	if a.adding {
		return false
	}
	a.adding = true
	return true
}

func (a *ICPAdder) Draft() model.ICPDraft { return a.draft }

func (a *ICPAdder) SetName(v string) bool {
	return a.update(func(d *model.ICPDraft) { d.Name = v })
}

func (a *ICPAdder) SetType(v model.ICPType) bool {
	return a.update(func(d *model.ICPDraft) { d.Type = v })
}

func (a *ICPAdder) SetDescription(v string) bool {
	return a.update(func(d *model.ICPDraft) { d.Description = v })
}

func (a *ICPAdder) update(fn func(*model.ICPDraft)) bool {
	if !a.adding {
		return false
	}
	fn(&a.draft)
	return true
}

// Save creates the ICP. A blank name returns store.ErrEmptyRequiredField and
// keeps the form open with its input.
func (a *ICPAdder) Save() (model.ICP, error) {
	if !a.adding {
		return model.ICP{}, ErrNotEditing
	}
	icp, err := a.st.AddICP(a.draft)
	if err != nil {
		return model.ICP{}, err
	}
	a.reset()
	return icp, nil
}

// Cancel closes the form and clears the draft without touching the store.
func (a *ICPAdder) Cancel() bool {
	if !a.adding {
		return false
	}
	a.reset()
	return true
}

func (a *ICPAdder) reset() {
	a.adding = false
	a.draft = model.BlankICPDraft()
}
