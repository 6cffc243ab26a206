package syncer

import (
	"log/slog"
	"path"
)

// archiveTarget computes the sibling Archive/ path for a transferred file.
func archiveTarget(remotePath string) string {
	return path.Join(path.Dir(remotePath), "Archive", path.Base(remotePath))
}

// applyPostAction runs the configured remote-side mutation after a
// successful transfer. The returned error is best-effort reporting only:
// the transfer is already the operation of record, so the caller logs it as
// a warning and never fails the file or the run because of it. If an
// archive rename fails (missing Archive directory, permissions, collision)
// the remote original stays in place.
func (s *Syncer) applyPostAction(f RemoteFile) *PostActionError {
	switch s.opts.Action {
	case ActionArchive:
		target := archiveTarget(f.Path)
		if err := s.remote.Rename(f.Path, target); err != nil {
			slog.Warn("sync", "op", "archive", "file", f.Name, "target", target, "error", err)
			return &PostActionError{Name: f.Name, Action: ActionArchive, Err: err}
		}
		slog.Debug("sync", "op", "archive", "file", f.Name, "target", target)
	case ActionDelete:
		if err := s.remote.Remove(f.Path); err != nil {
			slog.Warn("sync", "op", "delete", "file", f.Name, "error", err)
			return &PostActionError{Name: f.Name, Action: ActionDelete, Err: err}
		}
		slog.Debug("sync", "op", "delete", "file", f.Name)
	}
	return nil
}
