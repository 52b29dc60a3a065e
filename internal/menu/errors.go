package menu

import (
	"errors"
	"fmt"
)

var (
	ErrNoWindow             = errors.New("no window to install the menu on")
	ErrInvalidAccelerator   = errors.New("invalid accelerator")
	ErrDuplicateAccelerator = errors.New("accelerator bound twice")
	ErrDuplicateEntry       = errors.New("entry id used twice")
	ErrUnmappedEntry        = errors.New("entry has no dispatch mapping")
)

// MenuError reports a menu the host cannot accept. It is a setup error: the
// application must not start with a half-installed menu.
type MenuError struct {
	Op    string
	Entry string
	Err   error
}

func (e *MenuError) Error() string {
	if e.Entry == "" {
		return fmt.Sprintf("menu %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("menu %s %q: %v", e.Op, e.Entry, e.Err)
}

func (e *MenuError) Unwrap() error {
	return e.Err
}
