// Package store holds the committed business entities for the lifetime of
// the process: the company profile, the ICP collection and the competitor
// collection. Nothing is persisted.
//
// All mutation goes through the methods below. Accessors return copies, so a
// caller can never alias committed data or observe a half-applied change.
package store

import (
	"errors"
	"slices"

	"visibilitystack-cli/internal/model"

	"go.uber.org/zap"
)

var (
	ErrEmptyRequiredField = errors.New("name is required")
	ErrUnknownICPType     = errors.New("unknown icp type")
)

type Store struct {
	profile     model.CompanyProfile
	icps        []model.ICP
	competitors []model.Competitor

	ids *idSource
	log *zap.Logger
}

type Option func(*Store)

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New builds a store from seed. The seed is validated (see ValidateSeed) and
// copied; later changes to seed do not affect the store.
func New(seed model.Snapshot, opts ...Option) (*Store, error) {
	if err := ValidateSeed(seed); err != nil {
		return nil, err
	}
	s := &Store{
		profile:     seed.Profile,
		icps:        slices.Clone(seed.ICPs),
		competitors: slices.Clone(seed.Competitors),
		log:         zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	s.ids = newIDSource(maxICPID(s.icps))
	return s, nil
}

func (s *Store) Profile() model.CompanyProfile { return s.profile }

// ReplaceProfile overwrites the profile with next. No validation is applied.
func (s *Store) ReplaceProfile(next model.CompanyProfile) {
	s.profile = next
	s.log.Debug("profile replaced", zap.String("name", next.Name))
}

// ICPs returns the ICP collection in display order. It is never nil.
func (s *Store) ICPs() []model.ICP { return append([]model.ICP{}, s.icps...) }

func (s *Store) ICP(id int64) (model.ICP, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.icps[i], true
	}
	return model.ICP{}, false
}

// AddICP appends a new ICP built from d and returns it. A blank name is
// rejected with ErrEmptyRequiredField, a type outside model.ICPTypes with
// ErrUnknownICPType; either way the collection is left untouched.
func (s *Store) AddICP(d model.ICPDraft) (model.ICP, error) {
	if !model.HasName(d.Name) {
		s.log.Debug("add icp rejected", zap.Error(ErrEmptyRequiredField))
		return model.ICP{}, ErrEmptyRequiredField
	}
	if !d.Type.Valid() {
		s.log.Debug("add icp rejected", zap.String("type", string(d.Type)), zap.Error(ErrUnknownICPType))
		return model.ICP{}, ErrUnknownICPType
	}
	icp := model.ICP{
		ID:          s.ids.next(),
		Name:        d.Name,
		Type:        d.Type,
		Description: d.Description,
	}
	s.icps = append(s.icps, icp)
	s.log.Debug("icp added", zap.Int64("id", icp.ID), zap.String("name", icp.Name))
	return icp, nil
}

// UpdateICP replaces the entry whose id matches updated.ID. It reports false
// and changes nothing when no entry matches or the type is unknown.
func (s *Store) UpdateICP(updated model.ICP) bool {
	if !updated.Type.Valid() {
		s.log.Debug("update icp: unknown type", zap.Int64("id", updated.ID), zap.String("type", string(updated.Type)))
		return false
	}
	i := s.indexOf(updated.ID)
	if i < 0 {
		s.log.Debug("update icp: missing", zap.Int64("id", updated.ID))
		return false
	}
	s.icps[i] = updated
	s.log.Debug("icp updated", zap.Int64("id", updated.ID))
	return true
}

// DeleteICP removes the entry with id. It reports false when there is none.
// Deleted ids are never minted again.
func (s *Store) DeleteICP(id int64) bool {
	i := s.indexOf(id)
	if i < 0 {
		s.log.Debug("delete icp: missing", zap.Int64("id", id))
		return false
	}
	s.icps = slices.Delete(s.icps, i, i+1)
	s.log.Debug("icp deleted", zap.Int64("id", id))
	return true
}

func (s *Store) Competitors() []model.Competitor {
	return append([]model.Competitor{}, s.competitors...)
}

func (s *Store) Snapshot() model.Snapshot {
	return model.Snapshot{
		Profile:     s.profile,
		ICPs:        s.ICPs(),
		Competitors: s.Competitors(),
	}
}

func (s *Store) indexOf(id int64) int {
	return slices.IndexFunc(s.icps, func(icp model.ICP) bool { return icp.ID == id })
}

func maxICPID(icps []model.ICP) int64 {
	var hi int64
	for _, icp := range icps {
		if icp.ID > hi {
			hi = icp.ID
		}
	}
	return hi
}
