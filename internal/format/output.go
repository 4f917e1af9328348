package format

import (
        "encoding/json"
        "fmt"
        "io"
        "strings"
)

// Texter is implemented by payloads with a human-readable rendering.
type Texter interface {
        Text() string
}

// Write writes output in the requested format.
//
// Supported formats:
// - text (default): Texter payloads print their Text; anything else falls back to indented JSON
// - json
func Write(w io.Writer, v any, format string, pretty bool) error {
        switch strings.ToLower(strings.TrimSpace(format)) {
        case "", "text":
                if t, ok := v.(Texter); ok {
                        return writeText(w, t.Text())
                }
                return WriteJSON(w, v, true)
        case "json":
                return WriteJSON(w, v, pretty)
        default:
                return fmt.Errorf("unknown format: %s (want text|json)", format)
        }
}

// WriteJSON writes strict JSON followed by a newline.
func WriteJSON(w io.Writer, v any, pretty bool) error {
        var b []byte
        var err error
        if pretty {
                b, err = json.MarshalIndent(v, "", "  ")
        } else {
                b, err = json.Marshal(v)
        }
        if err != nil {
                return err
        }

        _, err = fmt.Fprintln(w, string(b))
        return err
}

func writeText(w io.Writer, s string) error {
        if s == "" {
                return nil
        }
        _, err := fmt.Fprintln(w, strings.TrimRight(s, "\n"))
        return err
}
