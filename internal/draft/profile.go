package draft

import "visibilitystack-cli/internal/model"

type ProfileStore interface {
	Profile() model.CompanyProfile
	ReplaceProfile(next model.CompanyProfile)
}

// ProfileEditor edits the company profile.
type ProfileEditor struct {
	*Session[model.CompanyProfile]
}

func NewProfileEditor(st ProfileStore) *ProfileEditor {
	load := func() (model.CompanyProfile, bool) { return st.Profile(), true }
	commit := func(p model.CompanyProfile) error {
		st.ReplaceProfile(p)
		return nil
	}
	return &ProfileEditor{Session: NewSession(load, commit)}
}

func (e *ProfileEditor) SetName(v string) bool {
	return e.Update(func(p *model.CompanyProfile) { p.Name = v })
}

func (e *ProfileEditor) SetWebsite(v string) bool {
	return e.Update(func(p *model.CompanyProfile) { p.Website = v })
}

func (e *ProfileEditor) SetDescription(v string) bool {
	return e.Update(func(p *model.CompanyProfile) { p.Description = v })
}
