package command

import (
        "fmt"
        "regexp"
        "strconv"
        "time"

        "mmint-cli/internal/store"

        "go.uber.org/zap"
)

// Args holds the named groups a command pattern captured. Groups that did not
// participate in the match are absent.
type Args map[string]string

// Int returns the named group as an int, or def when the group is absent.
func (a Args) Int(name string, def int) (int, error) {
        v, ok := a[name]
        if !ok || v == "" {
                return def, nil
        }
        n, err := strconv.Atoi(v)
        if err != nil {
                return 0, fmt.Errorf("invalid %s %q", name, v)
        }
        return n, nil
}

// Handler mutates its own copy of the store.
type Handler func(db *store.DB, args Args) error

// StackHandler only sees the stack and returns its replacement.
type StackHandler func(stack []string, args Args) ([]string, error)

type Command struct {
        Name    string
        Pattern *regexp.Regexp
        Run     Handler
}

// Interpreter tries its commands in registration order; the first whose
// pattern matches the whole line runs.
type Interpreter struct {
        Logger *zap.Logger

        // Now stamps snoozes. Defaults to time.Now.
        Now func() time.Time

        commands []Command
}

func (in *Interpreter) logger() *zap.Logger {
        if in.Logger == nil {
                return zap.NewNop()
        }
        return in.Logger
}

func (in *Interpreter) now() time.Time {
        if in.Now != nil {
                return in.Now()
        }
        return time.Now()
}

// Register appends a whole-store command. pattern is anchored at both ends.
func (in *Interpreter) Register(name, pattern string, h Handler) {
        in.commands = append(in.commands, Command{
                Name:    name,
                Pattern: regexp.MustCompile(`^(?:` + pattern + `)$`),
                Run:     h,
        })
}

// RegisterStack appends a command that only rewrites the stack.
func (in *Interpreter) RegisterStack(name, pattern string, h StackHandler) {
        in.Register(name, pattern, func(db *store.DB, args Args) error {
                stack, err := h(db.Stack, args)
                if err != nil {
                        return err
                }
                db.Stack = stack
                return nil
        })
}

func (in *Interpreter) Commands() []Command {
        return append([]Command{}, in.commands...)
}

// Match returns the command line would dispatch to.
func (in *Interpreter) Match(line string) (Command, Args, bool) {
        for _, c := range in.commands {
                loc := c.Pattern.FindStringSubmatchIndex(line)
                if loc == nil {
                        continue
                }
                args := Args{}
                for i, name := range c.Pattern.SubexpNames() {
                        if name == "" || loc[2*i] < 0 {
                                continue
                        }
                        args[name] = line[loc[2*i]:loc[2*i+1]]
                }
                return c, args, true
        }
        return Command{}, nil, false
}

// Dispatch runs line against a deep copy of db. It returns the matched
// command name ("" when nothing matched) and the resulting store. An unmatched
// line returns db itself with no error; a failing handler returns the error
// and a nil store, leaving db untouched.
func (in *Interpreter) Dispatch(line string, db *store.DB) (string, *store.DB, error) {
        c, args, ok := in.Match(line)
        if !ok {
                in.logger().Debug("no command matched", zap.String("line", line))
                return "", db, nil
        }
        work := db.Clone()
        if work == nil {
                work = store.New()
        }
        in.logger().Debug("dispatch", zap.String("command", c.Name), zap.Any("args", map[string]string(args)))
        if err := c.Run(work, args); err != nil {
                in.logger().Debug("command failed", zap.String("command", c.Name), zap.Error(err))
                return c.Name, nil, err
        }
        return c.Name, work, nil
}

// Run is Dispatch without the command name.
func (in *Interpreter) Run(line string, db *store.DB) (*store.DB, error) {
        _, out, err := in.Dispatch(line, db)
        return out, err
}
