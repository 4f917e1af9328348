package command

import (
        "mmint-cli/internal/model"
        "mmint-cli/internal/mutate"
        "mmint-cli/internal/store"

        "go.uber.org/zap"
)

// New returns an interpreter with the standard command table.
func New(logger *zap.Logger) *Interpreter {
        in := &Interpreter{Logger: logger}

        in.Register("push", `(?:push)? (?P<value>.*)`, func(db *store.DB, args Args) error {
                _, err := mutate.PushAtom(db, args["value"])
                return err
        })
        in.RegisterStack("pop", `pop(?: (?P<index>\d+))?`, func(stack []string, args Args) ([]string, error) {
                i, err := args.Int("index", 0)
                if err != nil {
                        return nil, err
                }
                return mutate.Pop(stack, i)
        })
        in.Register("chunk", `chunk (?P<count>\d+)`, func(db *store.DB, args Args) error {
                n, err := args.Int("count", 0)
                if err != nil {
                        return err
                }
                _, err = mutate.Chunk(db, n)
                return err
        })
        in.Register("expand", `expand(?: (?P<index>\d+))?`, func(db *store.DB, args Args) error {
                i, err := args.Int("index", 0)
                if err != nil {
                        return err
                }
                return mutate.Expand(db, i)
        })
        in.Register("explode", `explode(?: (?P<index>\d+))?`, func(db *store.DB, args Args) error {
                i, err := args.Int("index", 0)
                if err != nil {
                        return err
                }
                return mutate.Explode(db, i)
        })
        in.RegisterStack("mv", `mv (?P<src>\d+) (?P<dest>\d+)`, func(stack []string, args Args) ([]string, error) {
                src, err := args.Int("src", 0)
                if err != nil {
                        return nil, err
                }
                dest, err := args.Int("dest", 0)
                if err != nil {
                        return nil, err
                }
                return mutate.Move(stack, src, dest)
        })
        in.Register("mv-path", `mv (?:(?P<src>\d+) )?(?P<path>\S.*)`, func(db *store.DB, args Args) error {
                i, err := args.Int("src", 0)
                if err != nil {
                        return err
                }
                return mutate.MovePath(db, i, args["path"])
        })
        in.RegisterStack("swap", `swap(?: (?P<a>\d+) (?P<b>\d+))?`, func(stack []string, args Args) ([]string, error) {
                a, err := args.Int("a", 0)
                if err != nil {
                        return nil, err
                }
                b, err := args.Int("b", 1)
                if err != nil {
                        return nil, err
                }
                return mutate.Swap(stack, a, b)
        })
        in.RegisterStack("cp", `cp(?: (?P<src>\d+))?`, func(stack []string, args Args) ([]string, error) {
                i, err := args.Int("src", 0)
                if err != nil {
                        return nil, err
                }
                return mutate.Copy(stack, i)
        })
        in.RegisterStack("rot", `rot(?: -n (?P<count>[+-]?\d+))?`, func(stack []string, args Args) ([]string, error) {
                n, err := args.Int("count", 1)
                if err != nil {
                        return nil, err
                }
                return mutate.Rotate(stack, n), nil
        })
        in.RegisterStack("reverse", `reverse`, func(stack []string, _ Args) ([]string, error) {
                return mutate.Reverse(stack), nil
        })
        in.Register("edit", `edit(?: --index (?P<index>\d+))? (?P<value>.*)`, func(db *store.DB, args Args) error {
                i, err := args.Int("index", 0)
                if err != nil {
                        return err
                }
                return mutate.Edit(db, i, args["value"])
        })
        in.Register("apply", `apply (?P<index>\d+) (?P<command>.*)`, in.apply)
        in.Register("snooze", `snooze(?: --index (?P<index>\d+))? (?P<period>[+-]?\d+ ?[A-Za-z]+)`, func(db *store.DB, args Args) error {
                i, err := args.Int("index", 0)
                if err != nil {
                        return err
                }
                return mutate.Snooze(db, i, args["period"], in.now())
        })
        in.Register("cd", `cd (?P<path>.*)`, func(db *store.DB, args Args) error {
                mutate.Cd(db, args["path"])
                return nil
        })
        in.Register("gc", `gc`, func(db *store.DB, _ Args) error {
                n := mutate.GC(db)
                in.logger().Info("collected unreachable items", zap.Int("removed", n))
                return nil
        })

        return in
}

// apply runs a command against the children of the chunk at index, then
// wraps the resulting stack as a new chunk in the chunk's place.
func (in *Interpreter) apply(db *store.DB, args Args) error {
        index, err := args.Int("index", 0)
        if err != nil {
                return err
        }
        children, err := mutate.Children(db, index)
        if err != nil {
                return err
        }
        outer := db.Stack

        db.Stack = children
        _, inner, err := in.Dispatch(args["command"], db)
        if err != nil {
                return err
        }

        id, err := mutate.CreateItem(inner, model.NewChunk(inner.Stack, inner.ActivePath))
        if err != nil {
                return err
        }
        stack, err := mutate.Replace(outer, index, id)
        if err != nil {
                return err
        }
        inner.Stack = stack
        *db = *inner
        return nil
}
