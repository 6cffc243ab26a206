package syncer

import (
	"bytes"
	"io"
	"os"
	"path"
	"sync"
	"time"
)

// fakeRemote is an in-memory Remote with injectable failures, used to
// exercise the engine without a server.
type fakeRemote struct {
	mu      sync.Mutex
	entries map[string]*fakeEntry
	order   []string

	renameErr error
	removeErr error
	openErrs  map[string]error
	readErrs  map[string]error

	renames [][2]string
	removes []string
}

type fakeEntry struct {
	data  []byte
	mtime time.Time
	dir   bool
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		entries:  make(map[string]*fakeEntry),
		openErrs: make(map[string]error),
		readErrs: make(map[string]error),
	}
}

func (r *fakeRemote) addDir(p string) {
	r.entries[p] = &fakeEntry{dir: true}
	r.order = append(r.order, p)
}

func (r *fakeRemote) addFile(p string, data []byte, mtime time.Time) {
	r.entries[p] = &fakeEntry{data: data, mtime: mtime}
	r.order = append(r.order, p)
}

func (r *fakeRemote) has(p string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[p]
	return ok
}

func (r *fakeRemote) Stat(p string) (os.FileInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[p]
	if !ok {
		return nil, os.ErrNotExist
	}
	return e.info(path.Base(p)), nil
}

func (r *fakeRemote) List(dir string) ([]os.FileInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var infos []os.FileInfo
	for _, p := range r.order {
		if path.Dir(p) != dir || p == dir {
			continue
		}
		if e, ok := r.entries[p]; ok {
			infos = append(infos, e.info(path.Base(p)))
		}
	}
	return infos, nil
}

func (r *fakeRemote) Open(p string) (io.ReadCloser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.openErrs[p]; ok {
		return nil, err
	}
	if err, ok := r.readErrs[p]; ok {
		return &failingReader{err: err}, nil
	}
	e, ok := r.entries[p]
	if !ok || e.dir {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(e.data)), nil
}

func (r *fakeRemote) Rename(oldPath, newPath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.renameErr != nil {
		return r.renameErr
	}
	e, ok := r.entries[oldPath]
	if !ok {
		return os.ErrNotExist
	}
	delete(r.entries, oldPath)
	r.entries[newPath] = e
	r.renames = append(r.renames, [2]string{oldPath, newPath})
	return nil
}

func (r *fakeRemote) Remove(p string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.removeErr != nil {
		return r.removeErr
	}
	if _, ok := r.entries[p]; !ok {
		return os.ErrNotExist
	}
	delete(r.entries, p)
	r.removes = append(r.removes, p)
	return nil
}

func (r *fakeRemote) Realpath(p string) (string, error) {
	return path.Clean(p), nil
}

func (e *fakeEntry) info(name string) os.FileInfo {
	return &fakeInfo{name: name, size: int64(len(e.data)), mtime: e.mtime, dir: e.dir}
}

type fakeInfo struct {
	name  string
	size  int64
	mtime time.Time
	dir   bool
}

func (i *fakeInfo) Name() string { return i.name }
func (i *fakeInfo) Size() int64  { return i.size }
func (i *fakeInfo) Mode() os.FileMode {
	if i.dir {
		return os.ModeDir | 0o755
	}
	return 0o644
}
func (i *fakeInfo) ModTime() time.Time { return i.mtime }
func (i *fakeInfo) IsDir() bool        { return i.dir }
func (i *fakeInfo) Sys() any           { return nil }

type failingReader struct{ err error }

func (r *failingReader) Read(p []byte) (int, error) { return 0, r.err }
func (r *failingReader) Close() error               { return nil }
