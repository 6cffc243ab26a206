package syncer

import (
	"io"
	"os"
	"path"
	"time"
)

// Remote is the subset of SFTP session operations the sync engine needs.
// *sftpclient.Client is the production implementation; tests use an
// in-memory fake.
type Remote interface {
	Stat(path string) (os.FileInfo, error)
	List(dir string) ([]os.FileInfo, error)
	Open(path string) (io.ReadCloser, error)
	Rename(oldPath, newPath string) error
	Remove(path string) error
	Realpath(path string) (string, error)
}

// RemoteFile is one candidate entry from the remote listing. Identity is the
// full remote path for the duration of the run.
type RemoteFile struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

func remoteFileAt(fullPath string, info os.FileInfo) RemoteFile {
	return RemoteFile{
		Name:    path.Base(fullPath),
		Path:    fullPath,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
}
