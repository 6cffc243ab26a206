package syncer

import (
	"errors"
	"fmt"
)

var (
	ErrBadLocalDir   = errors.New("local path does not exist or is not a readable directory")
	ErrBadRemotePath = errors.New("remote path does not exist or is not the expected type")
	ErrBadPattern    = errors.New("invalid file pattern")
	ErrDeadline      = errors.New("run deadline exceeded")
)

// TransferError reports a failed byte copy or timestamp stamping for a single
// file. In batch mode it is recorded and the run continues; in single-target
// mode it aborts the run.
type TransferError struct {
	Name string
	Err  error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer %s: %v", e.Name, e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }

// PostActionError reports a failed archive rename or delete after a
// successful transfer. It is never propagated as a run failure.
type PostActionError struct {
	Name   string
	Action PostAction
	Err    error
}

func (e *PostActionError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Action, e.Name, e.Err)
}

func (e *PostActionError) Unwrap() error { return e.Err }
