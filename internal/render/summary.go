package render

import (
        "fmt"
        "strings"

        "mmint-cli/internal/store"
)

const indent = "  "

// Unlimited disables summary truncation.
const Unlimited = -1

// Line is one atom reached while walking a chunk. Depth counts chunk levels
// below the summarized item, so direct children have depth 1.
type Line struct {
        Text  string
        Depth int
}

// Flatten walks the chunk id depth-first and returns its atoms in order. A
// chunk that contains itself is walked once; dangling ids show as missing.
func Flatten(db *store.DB, id string) []Line {
        var (
                out  []Line
                seen = map[string]bool{}
                walk func(id string, depth int)
        )
        walk = func(id string, depth int) {
                it, ok := db.FindItem(id)
                if !ok {
                        out = append(out, Line{Text: missing(id), Depth: depth})
                        return
                }
                if !it.IsChunk() {
                        out = append(out, Line{Text: it.Value, Depth: depth})
                        return
                }
                if seen[id] {
                        return
                }
                seen[id] = true
                for _, c := range it.Children {
                        walk(c, depth+1)
                }
                delete(seen, id)
        }
        walk(id, 0)
        return out
}

// Summary renders item id for display: an atom is its text; a chunk is its
// flattened atoms, one "- text" line each, indented by depth. With limit >= 0
// only the first limit lines are kept followed by a "... N more" line.
func Summary(db *store.DB, id string, limit int) string {
        it, ok := db.FindItem(id)
        if !ok {
                return missing(id)
        }
        if !it.IsChunk() {
                return it.Value
        }

        items := Flatten(db, id)
        n := len(items)
        shown := items
        if limit >= 0 && n > limit {
                shown = items[:limit]
        }
        lines := make([]string, 0, len(shown)+1)
        for _, l := range shown {
                lines = append(lines, strings.Repeat(indent, l.Depth)+"- "+l.Text)
        }
        if len(shown) < n {
                lines = append(lines, fmt.Sprintf("%s... %d more", strings.Repeat(indent, items[limit].Depth), n-limit))
        }
        return strings.Join(lines, "\n")
}

func missing(id string) string {
        return fmt.Sprintf("<missing %s>", id)
}
