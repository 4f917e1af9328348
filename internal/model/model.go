package model

import (
        "encoding/json"
        "fmt"
        "time"
)

type Kind string

const (
        KindAtom  Kind = "atom"
        KindChunk Kind = "chunk"
)

// Item is either an atom (Value) or a chunk (Children), never both.
type Item struct {
        Kind     Kind     `json:"_type"`
        Path     string   `json:"path"`
        Value    string   `json:"-"`
        Children []string `json:"-"`
}

func NewAtom(value, path string) Item {
        return Item{Kind: KindAtom, Path: path, Value: value}
}

func NewChunk(children []string, path string) Item {
        cp := make([]string, len(children))
        copy(cp, children)
        return Item{Kind: KindChunk, Path: path, Children: cp}
}

func (it Item) IsChunk() bool { return it.Kind == KindChunk }

// Clone returns a copy that shares no backing arrays with it.
func (it Item) Clone() Item {
        out := it
        if it.Children != nil {
                out.Children = make([]string, len(it.Children))
                copy(out.Children, it.Children)
        }
        return out
}

// wireItem is the on-disk shape: the payload lives in "v" and is either a
// string (atom) or a list of ids (chunk).
type wireItem struct {
        Kind Kind            `json:"_type"`
        Path string          `json:"path"`
        V    json.RawMessage `json:"v"`
}

func (it Item) MarshalJSON() ([]byte, error) {
        var (
                v   []byte
                err error
        )
        switch it.Kind {
        case KindChunk:
                children := it.Children
                if children == nil {
                        children = []string{}
                }
                v, err = json.Marshal(children)
        default:
                v, err = json.Marshal(it.Value)
        }
        if err != nil {
                return nil, err
        }
        return json.Marshal(wireItem{Kind: it.Kind, Path: it.Path, V: v})
}

func (it *Item) UnmarshalJSON(b []byte) error {
        var w wireItem
        if err := json.Unmarshal(b, &w); err != nil {
                return err
        }
        it.Kind = w.Kind
        it.Path = w.Path
        it.Value = ""
        it.Children = nil
        switch w.Kind {
        case KindChunk:
                if len(w.V) == 0 || string(w.V) == "null" {
                        it.Children = []string{}
                        return nil
                }
                if err := json.Unmarshal(w.V, &it.Children); err != nil {
                        return fmt.Errorf("chunk payload: %w", err)
                }
        case KindAtom:
                if len(w.V) == 0 || string(w.V) == "null" {
                        return nil
                }
                if err := json.Unmarshal(w.V, &it.Value); err != nil {
                        return fmt.Errorf("atom payload: %w", err)
                }
        default:
                return fmt.Errorf("unknown item type %q", w.Kind)
        }
        return nil
}

// Snooze defers the item Ref until Wake.
type Snooze struct {
        Ref  string
        Wake time.Time
}

type wireSnooze struct {
        R string `json:"r"`
        T int64  `json:"t"`
}

func (s Snooze) MarshalJSON() ([]byte, error) {
        return json.Marshal(wireSnooze{R: s.Ref, T: s.Wake.Unix()})
}

func (s *Snooze) UnmarshalJSON(b []byte) error {
        var w wireSnooze
        if err := json.Unmarshal(b, &w); err != nil {
                return err
        }
        s.Ref = w.R
        s.Wake = time.Unix(w.T, 0).UTC()
        return nil
}
