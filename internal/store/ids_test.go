package store

import (
        "strings"
        "testing"

        "mmint-cli/internal/model"
)

func TestNewRandomID_Shape(t *testing.T) {
        id, err := newRandomID(itemIDPrefix)
        if err != nil {
                t.Fatalf("newRandomID: %v", err)
        }
        if !strings.HasPrefix(id, "mm") {
                t.Fatalf("expected mm prefix, got %q", id)
        }
        if got, want := len(strings.TrimPrefix(id, "mm")), 16; got != want {
                t.Fatalf("expected suffix len %d, got %d (%q)", want, got, id)
        }
        if strings.ToLower(id) != id {
                t.Fatalf("expected lowercase id, got %q", id)
        }
}

func TestNewItemID_Unique(t *testing.T) {
        db := New()
        seen := map[string]bool{}
        for i := 0; i < 500; i++ {
                id, err := db.NewItemID()
                if err != nil {
                        t.Fatalf("NewItemID: %v", err)
                }
                if seen[id] {
                        t.Fatalf("duplicate id %q", id)
                }
                seen[id] = true
                db.Items[id] = model.NewAtom("x", "/")
        }
}
