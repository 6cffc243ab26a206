package syncer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
)

// Mode selects which of the three operations a run performs.
type Mode int

const (
	// ModeFetch syncs one exact remote file path.
	ModeFetch Mode = iota
	// ModeGet syncs every file in a remote directory matching a pattern.
	ModeGet
	// ModeFind lists and matches only, with no transfer and no post-action.
	ModeFind
)

// PostAction is the optional remote-side mutation applied to every
// transferred file.
type PostAction int

const (
	ActionNone PostAction = iota
	ActionArchive
	ActionDelete
)

func (a PostAction) String() string {
	switch a {
	case ActionArchive:
		return "archive"
	case ActionDelete:
		return "delete"
	default:
		return "none"
	}
}

type Options struct {
	Mode       Mode
	RemotePath string // remote file (fetch) or remote directory (get/find)
	Pattern    string // base-name glob, get/find only, empty means "*"
	LocalDir   string // destination directory, must pre-exist
	Action     PostAction
	DryRun     bool // compute the decision set with zero mutation
	Workers    int  // batch transfer parallelism, <=1 means sequential
}

// FileError is a per-file transfer failure recorded in the result.
type FileError struct {
	Name string
	Err  error
}

// Result is the outcome of one run. Processed and Skipped preserve the
// remote listing order. On a mid-run fatal error the partially filled
// Result is returned alongside the error.
type Result struct {
	Changed     bool
	RemotePath  string
	Pattern     string
	LocalDir    string
	Processed   []RemoteFile
	Skipped     []RemoteFile
	Failed      []FileError
	Warnings    []string
	BytesCopied int64
	Started     time.Time
	Duration    time.Duration

	// Find-only mode output: matched entries and their normalized
	// absolute remote paths.
	Matched []RemoteFile
	Found   []string
}

// Syncer drives one sync run over a connected remote session. The session is
// owned by the caller and must stay open for the duration of Run.
type Syncer struct {
	remote Remote
	opts   Options
}

func New(remote Remote, opts Options) *Syncer {
	if opts.Pattern == "" {
		opts.Pattern = "*"
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Syncer{remote: remote, opts: opts}
}

// Run executes the configured operation. It fails fatally only on a bad
// local destination, a bad remote path, or a listing failure; per-file
// transfer errors in batch mode are recorded and processing continues.
func (s *Syncer) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	res := &Result{
		RemotePath: s.opts.RemotePath,
		Pattern:    s.opts.Pattern,
		LocalDir:   s.opts.LocalDir,
		Started:    start,
	}
	defer func() {
		res.Duration = time.Since(start)
	}()

	if s.opts.Mode != ModeFind {
		if err := checkLocalDir(s.opts.LocalDir); err != nil {
			return nil, err
		}
	}

	files, err := s.candidates()
	if err != nil {
		return nil, err
	}

	if s.opts.Mode == ModeFind {
		for _, f := range files {
			res.Matched = append(res.Matched, f)
			res.Found = append(res.Found, s.normalize(f.Path))
		}
		return res, nil
	}

	if s.opts.Mode == ModeGet && s.opts.Workers > 1 {
		return s.runConcurrent(ctx, files, res)
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("%w: %v", ErrDeadline, err)
		}
		o := s.processFile(f)
		s.record(res, o)
		if o.err != nil && s.opts.Mode == ModeFetch {
			return res, o.err
		}
	}
	return res, nil
}

// outcome is the terminal state of one file:
// Discovered -> Skipped, or Discovered -> Transferred with an optional
// swallowed post-action warning, or a per-file transfer error.
type outcome struct {
	file     RemoteFile
	decision Decision
	warning  string
	err      error
}

func (s *Syncer) processFile(f RemoteFile) outcome {
	localPath, dec := resolve(f, s.opts.LocalDir)
	o := outcome{file: f, decision: dec}
	if dec == DecisionSkip {
		slog.Debug("sync", "op", "skip", "file", f.Name)
		return o
	}
	if s.opts.DryRun {
		slog.Debug("sync", "op", "would-transfer", "file", f.Name)
		return o
	}
	if err := s.transferFile(f, localPath); err != nil {
		o.err = &TransferError{Name: f.Name, Err: err}
		return o
	}
	if s.opts.Action != ActionNone {
		if err := s.applyPostAction(f); err != nil {
			o.warning = err.Error()
		}
	}
	return o
}

func (s *Syncer) record(res *Result, o outcome) {
	switch {
	case o.err != nil:
		slog.Error("sync", "op", "transfer", "file", o.file.Name, "error", o.err)
		res.Failed = append(res.Failed, FileError{Name: o.file.Name, Err: o.err})
	case o.decision == DecisionSkip:
		res.Skipped = append(res.Skipped, o.file)
	default:
		res.Processed = append(res.Processed, o.file)
		res.BytesCopied += o.file.Size
		res.Changed = true
		if o.warning != "" {
			res.Warnings = append(res.Warnings, o.warning)
		}
	}
}

// runConcurrent processes independent files on a bounded worker pool sharing
// the single session; pkg/sftp multiplexes concurrent requests on one
// connection. Outcomes are merged in discovery order after all workers
// finish, and a per-file failure never cancels sibling work.
func (s *Syncer) runConcurrent(ctx context.Context, files []RemoteFile, res *Result) (*Result, error) {
	outcomes := make([]outcome, len(files))
	g := new(errgroup.Group)
	g.SetLimit(s.opts.Workers)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i] = outcome{file: f, err: fmt.Errorf("%w: %v", ErrDeadline, err)}
				return nil
			}
			outcomes[i] = s.processFile(f)
			return nil
		})
	}
	g.Wait()

	for _, o := range outcomes {
		s.record(res, o)
	}
	if err := ctx.Err(); err != nil {
		return res, fmt.Errorf("%w: %v", ErrDeadline, err)
	}
	return res, nil
}

func (s *Syncer) normalize(p string) string {
	if real, err := s.remote.Realpath(p); err == nil {
		return real
	}
	return p
}

// checkLocalDir validates the destination root before any transfer begins.
func checkLocalDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBadLocalDir, dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrBadLocalDir, dir)
	}
	f, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("%w: %s is not readable", ErrBadLocalDir, dir)
	}
	f.Close()
	return nil
}
