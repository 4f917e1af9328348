package docs

import (
        "strings"
        "testing"
)

func TestTopics(t *testing.T) {
        got := strings.Join(Topics(), ",")
        if got != "commands,paths,snooze" {
                t.Fatalf("unexpected topics %q", got)
        }
}

func TestGet(t *testing.T) {
        body, ok := Get(" Snooze ")
        if !ok || !strings.Contains(body, "52 weeks") {
                t.Fatalf("expected snooze topic, got ok=%v body=%q", ok, body)
        }
        if _, ok := Get("../docs"); ok {
                t.Fatalf("expected path-like topic to be rejected")
        }
        if _, ok := Get("nope"); ok {
                t.Fatalf("expected unknown topic to be missing")
        }
}
