package store

import (
	"encoding/json"
	"testing"

	"visibilitystack-cli/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(DefaultSeed(), WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	return s
}

func ids(icps []model.ICP) []int64 {
	out := make([]int64, 0, len(icps))
	for _, icp := range icps {
		out = append(out, icp.ID)
	}
	return out
}

func TestReplaceProfileOverwritesWholesale(t *testing.T) {
	s := newTestStore(t)
	next := model.CompanyProfile{Name: "Acme", Website: "", Description: "d"}
	s.ReplaceProfile(next)
	assert.Equal(t, next, s.Profile())
}

func TestAddICPAppendsWithFreshID(t *testing.T) {
	s := newTestStore(t)
	before := s.ICPs()

	d := model.ICPDraft{Name: "New Co", Type: model.ICPTypeSMB, Description: "x"}
	icp, err := s.AddICP(d)
	require.NoError(t, err)

	after := s.ICPs()
	require.Len(t, after, len(before)+1)
	assert.Equal(t, icp, after[len(after)-1])
	assert.Equal(t, d, icp.Draft())
	assert.NotContains(t, ids(before), icp.ID)
}

func TestAddICPRejectsBlankName(t *testing.T) {
	s := newTestStore(t)
	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := s.AddICP(model.ICPDraft{Name: name, Type: model.ICPTypeStartup})
		assert.ErrorIs(t, err, ErrEmptyRequiredField)
	}
	assert.Equal(t, DefaultSeed().ICPs, s.ICPs())
}

func TestDeletedIDsAreNeverReused(t *testing.T) {
	s := newTestStore(t)
	a, err := s.AddICP(model.ICPDraft{Name: "a", Type: model.ICPTypeSMB})
	require.NoError(t, err)
	require.True(t, s.DeleteICP(a.ID))

	b, err := s.AddICP(model.ICPDraft{Name: "b", Type: model.ICPTypeSMB})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestUpdateICPReplacesMatchingEntry(t *testing.T) {
	s := newTestStore(t)
	upd := model.ICP{ID: 2, Name: "Agencies", Type: model.ICPTypeSMB, Description: "changed"}

	require.True(t, s.UpdateICP(upd))
	once := s.ICPs()
	require.True(t, s.UpdateICP(upd))
	assert.Equal(t, once, s.ICPs(), "update must be idempotent")

	got, ok := s.ICP(2)
	require.True(t, ok)
	assert.Equal(t, upd, got)
	assert.Equal(t, []int64{1, 2}, ids(s.ICPs()), "order preserved")
}

func TestUpdateICPMissingIsNoop(t *testing.T) {
	s := newTestStore(t)
	ok := s.UpdateICP(model.ICP{ID: 99, Name: "ghost", Type: model.ICPTypeSMB})
	assert.False(t, ok)
	assert.Equal(t, DefaultSeed().ICPs, s.ICPs())
}

func TestDeleteICP(t *testing.T) {
	s := newTestStore(t)
	require.True(t, s.DeleteICP(1))
	assert.Equal(t, []int64{2}, ids(s.ICPs()))
	_, ok := s.ICP(1)
	assert.False(t, ok)

	assert.False(t, s.DeleteICP(1))
	assert.False(t, s.DeleteICP(12345))
	assert.Equal(t, []int64{2}, ids(s.ICPs()))
}

func TestDeleteThenAddScenario(t *testing.T) {
	s := newTestStore(t)
	s.DeleteICP(1)
	list := s.ICPs()
	require.Len(t, list, 1)
	assert.Equal(t, int64(2), list[0].ID)

	_, err := s.AddICP(model.ICPDraft{Name: "New Co", Type: model.ICPTypeSMB, Description: "x"})
	require.NoError(t, err)
	list = s.ICPs()
	require.Len(t, list, 2)
	last := list[len(list)-1]
	assert.Equal(t, "New Co", last.Name)
	assert.NotEqual(t, int64(2), last.ID)
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := newTestStore(t)

	icps := s.ICPs()
	icps[0].Name = "mutated"
	comps := s.Competitors()
	comps[0].Name = "mutated"
	snap := s.Snapshot()
	snap.ICPs[1].Name = "mutated"

	assert.Equal(t, DefaultSeed().ICPs, s.ICPs())
	assert.Equal(t, DefaultSeed().Competitors, s.Competitors())
}

func TestNewCopiesSeed(t *testing.T) {
	seed := DefaultSeed()
	s, err := New(seed)
	require.NoError(t, err)
	seed.ICPs[0].Name = "changed after New"
	got, _ := s.ICP(1)
	assert.Equal(t, "B2B SaaS Companies", got.Name)
}

func TestNewMintsAboveSeedIDs(t *testing.T) {
	seed := DefaultSeed()
	seed.ICPs = []model.ICP{{ID: 40, Name: "x", Type: model.ICPTypeAgency}}
	s, err := New(seed)
	require.NoError(t, err)
	icp, err := s.AddICP(model.ICPDraft{Name: "y", Type: model.ICPTypeAgency})
	require.NoError(t, err)
	assert.Greater(t, icp.ID, int64(40))
}

func TestAddICPRejectsUnknownType(t *testing.T) {
	s := newTestStore(t)
	before := s.ICPs()

	_, err := s.AddICP(model.ICPDraft{Name: "x", Type: "Bogus"})
	require.ErrorIs(t, err, ErrUnknownICPType)
	assert.Equal(t, before, s.ICPs())

	// The store stays loadable from its own snapshot.
	_, err = New(s.Snapshot())
	require.NoError(t, err)
}

func TestUpdateICPRejectsUnknownType(t *testing.T) {
	s := newTestStore(t)
	icp, ok := s.ICP(1)
	require.True(t, ok)

	bad := icp
	bad.Type = "Bogus"
	assert.False(t, s.UpdateICP(bad))

	got, _ := s.ICP(1)
	assert.Equal(t, icp, got)
}

func TestEmptyCollectionsAreNotNil(t *testing.T) {
	s, err := New(model.Snapshot{})
	require.NoError(t, err)

	assert.NotNil(t, s.ICPs())
	assert.NotNil(t, s.Competitors())

	b, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)
	assert.Contains(t, string(b), `"icps":[]`)
	assert.Contains(t, string(b), `"competitors":[]`)
}
