package format

import (
        "bytes"
        "testing"
)

type greeting struct {
        Name string `json:"name"`
}

func (g greeting) Text() string { return "hello " + g.Name }

func TestWrite_TextUsesTexter(t *testing.T) {
        var buf bytes.Buffer
        if err := Write(&buf, greeting{Name: "ann"}, "text", false); err != nil {
                t.Fatalf("Write: %v", err)
        }
        if got := buf.String(); got != "hello ann\n" {
                t.Fatalf("unexpected output %q", got)
        }
}

func TestWrite_JSON(t *testing.T) {
        var buf bytes.Buffer
        if err := Write(&buf, greeting{Name: "ann"}, "json", false); err != nil {
                t.Fatalf("Write: %v", err)
        }
        if got := buf.String(); got != "{\"name\":\"ann\"}\n" {
                t.Fatalf("unexpected output %q", got)
        }
}

func TestWrite_TextFallsBackToJSON(t *testing.T) {
        var buf bytes.Buffer
        if err := Write(&buf, map[string]int{"n": 1}, "", false); err != nil {
                t.Fatalf("Write: %v", err)
        }
        if got := buf.String(); got != "{\n  \"n\": 1\n}\n" {
                t.Fatalf("unexpected output %q", got)
        }
}

func TestWrite_UnknownFormat(t *testing.T) {
        if err := Write(&bytes.Buffer{}, 1, "edn", false); err == nil {
                t.Fatalf("expected error")
        }
}
