package syncer

import (
	"fmt"
	"path"

	"github.com/bmatcuk/doublestar/v4"
)

// candidates produces the set of remote files a run will consider. Fetch
// mode stats the one exact path; get/find list the directory and filter base
// names with the glob, case-sensitively and non-recursively. Directories in
// the listing are never candidates. Listing order is preserved as returned
// by the remote enumeration.
func (s *Syncer) candidates() ([]RemoteFile, error) {
	if s.opts.Mode == ModeFetch {
		info, err := s.remote.Stat(s.opts.RemotePath)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadRemotePath, s.opts.RemotePath)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%w: %s is a directory", ErrBadRemotePath, s.opts.RemotePath)
		}
		return []RemoteFile{remoteFileAt(s.opts.RemotePath, info)}, nil
	}

	if !doublestar.ValidatePattern(s.opts.Pattern) {
		return nil, fmt.Errorf("%w: %q", ErrBadPattern, s.opts.Pattern)
	}

	info, err := s.remote.Stat(s.opts.RemotePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadRemotePath, s.opts.RemotePath)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrBadRemotePath, s.opts.RemotePath)
	}

	entries, err := s.remote.List(s.opts.RemotePath)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.opts.RemotePath, err)
	}

	var files []RemoteFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ok, _ := doublestar.Match(s.opts.Pattern, e.Name())
		if !ok {
			continue
		}
		files = append(files, remoteFileAt(path.Join(s.opts.RemotePath, e.Name()), e))
	}
	return files, nil
}
