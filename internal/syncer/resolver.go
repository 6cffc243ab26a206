package syncer

import (
	"os"
	"path/filepath"
)

// Decision classifies one remote/local file pair. It is recomputed every
// run; the stamped modification time is the only durable state.
type Decision int

const (
	DecisionTransfer Decision = iota
	DecisionSkip
)

// resolve computes the expected local counterpart path and decides skip vs
// transfer. Skip holds iff a regular file exists at the path with a
// modification time equal to the remote's at whole-second granularity.
// Content is never compared; a remote rewrite that preserves mtime is
// treated as already synced.
func resolve(f RemoteFile, localDir string) (string, Decision) {
	localPath := filepath.Join(localDir, f.Name)
	info, err := os.Stat(localPath)
	if err != nil || !info.Mode().IsRegular() {
		return localPath, DecisionTransfer
	}
	if info.ModTime().Unix() == f.ModTime.Unix() {
		return localPath, DecisionSkip
	}
	return localPath, DecisionTransfer
}
