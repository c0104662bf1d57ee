package domain

import (
	"reflect"
	"testing"
)

func TestDiff(t *testing.T) {
	base := func() *WorkspaceState {
		return &WorkspaceState{
			WorkspaceID: "ws-1",
			Mode:        "grid",
			Size:        NewDimensions(1200, 900),
			Documents: []DocumentLayoutInfo{
				{ID: "a", CurrentPosition: NewPosition(20, 20)},
				{ID: "b", CurrentPosition: NewPosition(340, 20)},
			},
		}
	}

	t.Run("no change yields nil", func(t *testing.T) {
		if d := Diff(base(), base()); d != nil {
			t.Fatalf("expected nil diff, got %+v", d)
		}
	})

	t.Run("nil new yields nil", func(t *testing.T) {
		if d := Diff(base(), nil); d != nil {
			t.Fatalf("expected nil diff, got %+v", d)
		}
	})

	t.Run("initial load includes everything", func(t *testing.T) {
		d := Diff(nil, base())
		if d == nil {
			t.Fatal("expected diff")
		}
		if d.Mode == nil || *d.Mode != "grid" {
			t.Errorf("expected mode in initial diff, got %+v", d.Mode)
		}
		if len(d.Opened) != 2 {
			t.Errorf("expected 2 opened docs, got %d", len(d.Opened))
		}
	})

	t.Run("mode switch", func(t *testing.T) {
		next := base()
		next.Mode = "freeform"
		d := Diff(base(), next)
		if d == nil || d.Mode == nil || *d.Mode != "freeform" {
			t.Fatalf("expected mode diff, got %+v", d)
		}
		if len(d.Opened) != 0 || len(d.Updated) != 0 || len(d.Closed) != 0 {
			t.Errorf("unexpected document changes: %+v", d)
		}
	})

	t.Run("moved document shows as updated", func(t *testing.T) {
		next := base()
		next.Documents[1].CurrentPosition = NewPosition(400, 300)
		d := Diff(base(), next)
		if d == nil || len(d.Updated) != 1 || d.Updated[0].ID != "b" {
			t.Fatalf("expected update for b, got %+v", d)
		}
	})

	t.Run("closed document", func(t *testing.T) {
		next := base()
		next.Documents = next.Documents[:1]
		d := Diff(base(), next)
		want := []DocumentCaddyID{"b"}
		if d == nil || !reflect.DeepEqual(d.Closed, want) {
			t.Fatalf("expected closed %v, got %+v", want, d)
		}
	})
}
