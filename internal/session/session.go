package session

import (
        "context"
        "time"

        "mmint-cli/internal/command"
        "mmint-cli/internal/mutate"
        "mmint-cli/internal/store"

        "go.uber.org/zap"
)

// Session owns the current store and runs one command cycle at a time:
// dispatch, persist, log history, wake snoozes.
type Session struct {
        Store   store.Store
        History *store.History
        Interp  *command.Interpreter
        Logger  *zap.Logger

        // Now drives snooze wake-ups. Defaults to time.Now.
        Now func() time.Time

        db *store.DB
}

// Outcome describes one applied line.
type Outcome struct {
        // Command is the matched command name, "" when the line matched nothing.
        Command string
}

func (s *Session) logger() *zap.Logger {
        if s.Logger == nil {
                return zap.NewNop()
        }
        return s.Logger
}

func (s *Session) now() time.Time {
        if s.Now != nil {
                return s.Now()
        }
        return time.Now()
}

// Open loads (or initializes) the store and reconciles snoozes once.
func (s *Session) Open() error {
        db, err := s.Store.LoadOrInit()
        if err != nil {
                return err
        }
        mutate.Wakeup(db, s.now())
        s.db = db
        return nil
}

// DB is the last good state. Callers must not modify it.
func (s *Session) DB() *store.DB {
        return s.db
}

// Exec runs line through the interpreter. On a handler or persistence error
// the previous state is kept and the error is returned.
func (s *Session) Exec(ctx context.Context, line string) (Outcome, error) {
        if s.db == nil {
                if err := s.Open(); err != nil {
                        return Outcome{}, err
                }
        }
        name, next, err := s.Interp.Dispatch(line, s.db)
        if err != nil {
                return Outcome{Command: name}, err
        }
        if err := s.Store.Save(next); err != nil {
                return Outcome{Command: name}, err
        }
        s.db = next

        if name != "" && s.History != nil {
                _, herr := s.History.Append(ctx, store.HistoryEntry{
                        Command:   name,
                        Line:      line,
                        AppliedAt: s.now(),
                        StackSize: len(next.Stack),
                })
                if herr != nil {
                        s.logger().Warn("history append failed", zap.String("path", s.History.Path), zap.Error(herr))
                }
        }

        // next may be the caller's input when nothing matched; wake a copy.
        woke := next.Clone()
        mutate.Wakeup(woke, s.now())
        s.db = woke
        return Outcome{Command: name}, nil
}
