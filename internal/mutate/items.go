package mutate

import (
        "mmint-cli/internal/model"
        "mmint-cli/internal/pathutil"
        "mmint-cli/internal/store"
)

// CreateItem inserts it under a fresh id and returns the id.
func CreateItem(db *store.DB, it model.Item) (string, error) {
        id, err := db.NewItemID()
        if err != nil {
                return "", err
        }
        db.Items[id] = it
        return id, nil
}

func Resolve(db *store.DB, id string) (model.Item, error) {
        it, ok := db.FindItem(id)
        if !ok {
                return model.Item{}, NotFoundError{ID: id}
        }
        return it, nil
}

// resolveAt returns the id and item at stack index i.
func resolveAt(db *store.DB, i int) (string, model.Item, error) {
        if err := checkIndex(db.Stack, i); err != nil {
                return "", model.Item{}, err
        }
        id := db.Stack[i]
        it, err := Resolve(db, id)
        return id, it, err
}

func resolveChunkAt(db *store.DB, i int) (string, model.Item, error) {
        id, it, err := resolveAt(db, i)
        if err != nil {
                return "", model.Item{}, err
        }
        if !it.IsChunk() {
                return "", model.Item{}, WrongKindError{ID: id, Want: model.KindChunk, Got: it.Kind}
        }
        return id, it, nil
}

// PushAtom creates an atom at the active path and pushes it.
func PushAtom(db *store.DB, value string) (string, error) {
        id, err := CreateItem(db, model.NewAtom(value, db.ActivePath))
        if err != nil {
                return "", err
        }
        db.Stack = Push(db.Stack, id)
        return id, nil
}

// Chunk wraps the top count entries into a new chunk at the active path and
// pushes it.
func Chunk(db *store.DB, count int) (string, error) {
        if count < 0 || count > len(db.Stack) {
                return "", IndexOutOfRangeError{Index: count, Len: len(db.Stack)}
        }
        id, err := CreateItem(db, model.NewChunk(db.Stack[:count], db.ActivePath))
        if err != nil {
                return "", err
        }
        rest := db.Stack[count:]
        db.Stack = Push(rest, id)
        return id, nil
}

// Children returns a copy of the child ids of the chunk at index.
func Children(db *store.DB, index int) ([]string, error) {
        _, it, err := resolveChunkAt(db, index)
        if err != nil {
                return nil, err
        }
        return append([]string{}, it.Children...), nil
}

// Expand inlines the children of the chunk at index right after it, keeping
// the chunk itself visible.
func Expand(db *store.DB, index int) error {
        id, it, err := resolveChunkAt(db, index)
        if err != nil {
                return err
        }
        db.Stack = splice(db.Stack, index, append([]string{id}, it.Children...)...)
        return nil
}

// Explode replaces the chunk at index with its children.
func Explode(db *store.DB, index int) error {
        _, it, err := resolveChunkAt(db, index)
        if err != nil {
                return err
        }
        db.Stack = splice(db.Stack, index, it.Children...)
        return nil
}

func Edit(db *store.DB, index int, value string) error {
        id, it, err := resolveAt(db, index)
        if err != nil {
                return err
        }
        if it.IsChunk() {
                return WrongKindError{ID: id, Want: model.KindAtom, Got: it.Kind}
        }
        it.Value = value
        db.Items[id] = it
        return nil
}

// MovePath re-paths the item at index; its stack position is unchanged.
func MovePath(db *store.DB, index int, dest string) error {
        id, it, err := resolveAt(db, index)
        if err != nil {
                return err
        }
        it.Path = pathutil.Resolve(db.ActivePath, dest)
        db.Items[id] = it
        return nil
}

// Cd moves the active path cursor.
func Cd(db *store.DB, p string) {
        db.ActivePath = pathutil.Resolve(db.ActivePath, p)
}

// GC drops items that are unreachable from the stack, the snooze list and
// the children of reachable chunks. It returns the number removed.
func GC(db *store.DB) int {
        live := map[string]bool{}
        var mark func(id string)
        mark = func(id string) {
                if live[id] {
                        return
                }
                live[id] = true
                if it, ok := db.Items[id]; ok && it.IsChunk() {
                        for _, c := range it.Children {
                                mark(c)
                        }
                }
        }
        for _, id := range db.Stack {
                mark(id)
        }
        for _, sn := range db.Snoozed {
                mark(sn.Ref)
        }

        removed := 0
        for id := range db.Items {
                if !live[id] {
                        delete(db.Items, id)
                        removed++
                }
        }
        return removed
}
