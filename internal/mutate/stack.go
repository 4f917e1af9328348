package mutate

// Positional stack operations. They never modify their input slice; each
// returns a fresh one. Index 0 is the top of the stack.

func checkIndex(stack []string, i int) error {
        if i < 0 || i >= len(stack) {
                return IndexOutOfRangeError{Index: i, Len: len(stack)}
        }
        return nil
}

func clone(stack []string) []string {
        out := make([]string, len(stack))
        copy(out, stack)
        return out
}

func Push(stack []string, id string) []string {
        out := make([]string, 0, len(stack)+1)
        out = append(out, id)
        return append(out, stack...)
}

// Pop removes the entry at index i.
func Pop(stack []string, i int) ([]string, error) {
        if err := checkIndex(stack, i); err != nil {
                return nil, err
        }
        out := make([]string, 0, len(stack)-1)
        out = append(out, stack[:i]...)
        return append(out, stack[i+1:]...), nil
}

func Swap(stack []string, a, b int) ([]string, error) {
        if err := checkIndex(stack, a); err != nil {
                return nil, err
        }
        if err := checkIndex(stack, b); err != nil {
                return nil, err
        }
        out := clone(stack)
        out[a], out[b] = out[b], out[a]
        return out, nil
}

// Copy pushes another reference to the entry at src.
func Copy(stack []string, src int) ([]string, error) {
        if err := checkIndex(stack, src); err != nil {
                return nil, err
        }
        return Push(stack, stack[src]), nil
}

// Rotate moves every entry n places towards the top, wrapping around:
// out[i] = stack[(i+n) mod len]. n may be negative. An empty stack stays empty.
func Rotate(stack []string, n int) []string {
        l := len(stack)
        out := make([]string, l)
        for i := range out {
                j := (i + n) % l
                if j < 0 {
                        j += l
                }
                out[i] = stack[j]
        }
        return out
}

func Reverse(stack []string) []string {
        out := make([]string, len(stack))
        for i, id := range stack {
                out[len(stack)-1-i] = id
        }
        return out
}

// Move removes the entry at src and reinserts it at dest, where dest is an
// index into the stack after removal: 0 <= dest <= len(stack)-1.
func Move(stack []string, src, dest int) ([]string, error) {
        if err := checkIndex(stack, src); err != nil {
                return nil, err
        }
        id := stack[src]
        rest, _ := Pop(stack, src)
        if dest < 0 || dest > len(rest) {
                return nil, IndexOutOfRangeError{Index: dest, Len: len(rest)}
        }
        out := make([]string, 0, len(stack))
        out = append(out, rest[:dest]...)
        out = append(out, id)
        return append(out, rest[dest:]...), nil
}

// splice replaces stack[i] with repl.
func splice(stack []string, i int, repl ...string) []string {
        out := make([]string, 0, len(stack)-1+len(repl))
        out = append(out, stack[:i]...)
        out = append(out, repl...)
        return append(out, stack[i+1:]...)
}

// Replace returns a copy of stack with the entry at i set to id.
func Replace(stack []string, i int, id string) ([]string, error) {
        if err := checkIndex(stack, i); err != nil {
                return nil, err
        }
        out := clone(stack)
        out[i] = id
        return out, nil
}
