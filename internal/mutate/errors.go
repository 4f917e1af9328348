package mutate

import (
        "fmt"

        "mmint-cli/internal/model"
)

type NotFoundError struct {
        ID string
}

func (e NotFoundError) Error() string {
        return fmt.Sprintf("item not found: %s", e.ID)
}

// IndexOutOfRangeError reports a stack index outside [0, Len) (or [0, Len]
// for insertion points).
type IndexOutOfRangeError struct {
        Index int
        Len   int
}

func (e IndexOutOfRangeError) Error() string {
        return fmt.Sprintf("index %d out of range (stack has %d items)", e.Index, e.Len)
}

type WrongKindError struct {
        ID   string
        Want model.Kind
        Got  model.Kind
}

func (e WrongKindError) Error() string {
        return fmt.Sprintf("item %s is a %s; must target %ss", e.ID, e.Got, e.Want)
}

type UnknownUnitError struct {
        Unit string
}

func (e UnknownUnitError) Error() string {
        return fmt.Sprintf("unknown snooze period %q (want one of s m h d w M q y)", e.Unit)
}
