package pathutil

import (
        "path"
        "strings"
)

const Root = "/"

// Resolve resolves p against base. Absolute paths are only cleaned; relative
// paths are joined onto base first. ".." never climbs above the root.
func Resolve(base, p string) string {
        p = strings.TrimSpace(p)
        if base == "" {
                base = Root
        }
        if p == "" {
                return path.Clean(Root + base)
        }
        if strings.HasPrefix(p, "/") {
                return path.Clean(p)
        }
        return path.Clean(path.Join(Root+base, p))
}

// Suffix returns the part of full that follows its longest common (byte)
// prefix with base.
func Suffix(base, full string) string {
        n := len(base)
        if len(full) < n {
                n = len(full)
        }
        i := 0
        for i < n && base[i] == full[i] {
                i++
        }
        return full[i:]
}

// Display renders full relative to base for the stack listing.
func Display(base, full string) string {
        return "./" + Suffix(base, full)
}

// InScope reports whether an item at itemPath is visible while active is the
// active path.
func InScope(itemPath, active string) bool {
        return strings.HasPrefix(itemPath, active)
}
