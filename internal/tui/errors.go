package tui

import "errors"

var errMissingID = errors.New("record has no id")
