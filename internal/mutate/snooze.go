package mutate

import (
        "sort"
        "time"

        "mmint-cli/internal/model"
        "mmint-cli/internal/pathutil"
        "mmint-cli/internal/store"
)

// Snooze removes the entry at index from the stack and defers it until
// now + period.
func Snooze(db *store.DB, index int, period string, now time.Time) error {
        if err := checkIndex(db.Stack, index); err != nil {
                return err
        }
        d, err := ParsePeriod(period)
        if err != nil {
                return err
        }
        id := db.Stack[index]
        db.Stack, _ = Pop(db.Stack, index)
        insertSnooze(db, model.Snooze{Ref: id, Wake: now.Add(d)})
        return nil
}

// insertSnooze keeps db.Snoozed sorted by wake time; entries with equal wake
// times stay in insertion order.
func insertSnooze(db *store.DB, sn model.Snooze) {
        i := sort.Search(len(db.Snoozed), func(i int) bool {
                return db.Snoozed[i].Wake.After(sn.Wake)
        })
        out := make([]model.Snooze, 0, len(db.Snoozed)+1)
        out = append(out, db.Snoozed[:i]...)
        out = append(out, sn)
        db.Snoozed = append(out, db.Snoozed[i:]...)
}

// Wakeup moves due snoozes (wake <= now) to the bottom of the stack in their
// stored order, then parks stack entries outside the active path at the front
// of the snooze list with wake = now, so they return once the scope includes
// them again.
func Wakeup(db *store.DB, now time.Time) {
        var (
                due     []string
                pending = make([]model.Snooze, 0, len(db.Snoozed))
        )
        for _, sn := range db.Snoozed {
                if sn.Wake.After(now) {
                        pending = append(pending, sn)
                        continue
                }
                due = append(due, sn.Ref)
        }
        stack := append(append([]string{}, db.Stack...), due...)

        visible := make([]string, 0, len(stack))
        var parked []model.Snooze
        for _, id := range stack {
                it, ok := db.FindItem(id)
                if !ok || pathutil.InScope(it.Path, db.ActivePath) {
                        visible = append(visible, id)
                        continue
                }
                parked = append(parked, model.Snooze{Ref: id, Wake: now})
        }

        db.Stack = visible
        db.Snoozed = append(parked, pending...)
}
