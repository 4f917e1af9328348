package command

import (
        "testing"

        "go.uber.org/goleak"
)

func TestMain(m *testing.M) {
        goleak.VerifyTestMain(m)
}
