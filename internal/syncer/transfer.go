package syncer

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
)

// transferFile streams the remote bytes to a temporary file in the
// destination directory, then atomically renames it over localPath and
// stamps the remote modification time on it. On any failure the
// pre-existing local file is left untouched and the temp file removed.
// The stamped mtime is what makes the next run's skip decision correct.
func (s *Syncer) transferFile(f RemoteFile, localPath string) error {
	src, err := s.remote.Open(f.Path)
	if err != nil {
		return fmt.Errorf("open remote: %w", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp(filepath.Dir(localPath), "."+filepath.Base(localPath)+".part-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := io.Copy(tmp, src); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, localPath); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	success = true

	if err := os.Chtimes(localPath, f.ModTime, f.ModTime); err != nil {
		return fmt.Errorf("stamp mtime: %w", err)
	}

	slog.Info("sync", "op", "transfer", "file", f.Name, "size", humanize.Bytes(uint64(f.Size)))
	return nil
}
