package cli

import "errors"

var errHistoryDisabled = errors.New("history is disabled (config history: off)")
