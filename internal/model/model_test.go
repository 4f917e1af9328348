package model

import (
        "encoding/json"
        "testing"
        "time"
)

func TestItemWireFormatMatchesLegacyFile(t *testing.T) {
        t.Parallel()

        raw := `{"_type":"chunk","path":"/work","v":["mmA","mmB"]}`
        var it Item
        if err := json.Unmarshal([]byte(raw), &it); err != nil {
                t.Fatalf("unmarshal chunk: %v", err)
        }
        if !it.IsChunk() || len(it.Children) != 2 || it.Children[1] != "mmB" {
                t.Fatalf("unexpected chunk: %#v", it)
        }
        if it.Path != "/work" {
                t.Fatalf("expected path /work, got %q", it.Path)
        }

        b, err := json.Marshal(NewAtom("hello", "/"))
        if err != nil {
                t.Fatalf("marshal atom: %v", err)
        }
        if got, want := string(b), `{"_type":"atom","path":"/","v":"hello"}`; got != want {
                t.Fatalf("atom json:\n got: %s\nwant: %s", got, want)
        }
}

func TestItemUnmarshal_RejectsUnknownType(t *testing.T) {
        t.Parallel()

        var it Item
        if err := json.Unmarshal([]byte(`{"_type":"blob","path":"/","v":1}`), &it); err == nil {
                t.Fatalf("expected error for unknown item type")
        }
}

func TestEmptyChunkMarshalsAsList(t *testing.T) {
        t.Parallel()

        b, err := json.Marshal(Item{Kind: KindChunk, Path: "/"})
        if err != nil {
                t.Fatalf("marshal: %v", err)
        }
        if got, want := string(b), `{"_type":"chunk","path":"/","v":[]}`; got != want {
                t.Fatalf("got %s, want %s", got, want)
        }
}

func TestCloneDoesNotShareChildren(t *testing.T) {
        t.Parallel()

        orig := NewChunk([]string{"a", "b"}, "/")
        cp := orig.Clone()
        cp.Children[0] = "z"
        if orig.Children[0] != "a" {
                t.Fatalf("clone aliased children slice")
        }
}

func TestSnoozeUsesUnixSeconds(t *testing.T) {
        t.Parallel()

        wake := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
        b, err := json.Marshal(Snooze{Ref: "mmX", Wake: wake})
        if err != nil {
                t.Fatalf("marshal: %v", err)
        }
        var back Snooze
        if err := json.Unmarshal(b, &back); err != nil {
                t.Fatalf("unmarshal: %v", err)
        }
        if back.Ref != "mmX" || !back.Wake.Equal(wake) {
                t.Fatalf("unexpected snooze: %#v", back)
        }
}
