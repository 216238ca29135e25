package pwaux

import "errors"

// ErrConfigNotFound is returned when no .pwaux.yaml exists between the
// starting directory and the filesystem root.
var ErrConfigNotFound = errors.New("pwaux: config file not found")
