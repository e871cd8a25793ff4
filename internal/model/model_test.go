package model

import "testing"

func TestICPType_NextPrevWrap(t *testing.T) {
	if got := ICPTypeEnterprise.Next(); got != ICPTypeSMB {
		t.Fatalf("expected SMB; got %q", got)
	}
	if got := ICPTypeAgency.Next(); got != ICPTypeEnterprise {
		t.Fatalf("expected wrap to Enterprise; got %q", got)
	}
	if got := ICPTypeEnterprise.Prev(); got != ICPTypeAgency {
		t.Fatalf("expected wrap to Agency; got %q", got)
	}
	if got := ICPType("Huge").Next(); got != ICPTypeEnterprise {
		t.Fatalf("expected unknown to map to Enterprise; got %q", got)
	}
	for _, typ := range ICPTypes() {
		if typ.Next().Prev() != typ {
			t.Fatalf("Prev must invert Next for %q", typ)
		}
	}
}

func TestHasName(t *testing.T) {
	for in, want := range map[string]bool{"": false, "  \t": false, "Acme": true, " a ": true} {
		if got := HasName(in); got != want {
			t.Fatalf("HasName(%q)=%v want %v", in, got, want)
		}
	}
}

func TestICPDraftRoundTrip(t *testing.T) {
	icp := ICP{ID: 4, Name: "Fintech", Type: ICPTypeStartup, Description: "d"}
	d := icp.Draft()
	if d.Name != icp.Name || d.Type != icp.Type || d.Description != icp.Description {
		t.Fatalf("unexpected draft %+v", d)
	}
	if b := BlankICPDraft(); b.Name != "" || b.Type != ICPTypeEnterprise || b.Description != "" {
		t.Fatalf("unexpected blank draft %+v", b)
	}
}
