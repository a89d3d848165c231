package scan

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/boyter/gocodewalker"

	"todoscan/internal/config"
	"todoscan/pkg/comments"
)

// Scanner walks one source tree and feeds every recognized source file
// through the comment extractor into a single Tracker. It owns the tracker
// for the whole run; files are processed strictly one at a time in traversal
// order.
type Scanner struct {
	root     string
	cfg      *config.Config
	tracker  *comments.Tracker
	warn     io.Writer
	progress io.Writer

	noticedTarget bool
}

// New returns a Scanner over the tree rooted at root. Warnings (skipped
// entries, unreadable files, unterminated comments) go to warn; per-file
// "reading" lines go to progress. Either writer may be nil.
func New(root string, cfg *config.Config, warn, progress io.Writer) *Scanner {
	if warn == nil {
		warn = io.Discard
	}
	if progress == nil {
		progress = io.Discard
	}
	return &Scanner{
		root:     root,
		cfg:      cfg,
		tracker:  comments.NewTracker(cfg.Markers),
		warn:     warn,
		progress: progress,
	}
}

// Tracker exposes the accumulated label index. Meaningful after Run.
func (s *Scanner) Tracker() *comments.Tracker {
	return s.tracker
}

// Run walks the tree and processes every candidate file. All per-entry and
// per-file failures are reported to the warn writer and never abort the
// walk, so Run itself does not fail on them.
func (s *Scanner) Run() error {
	fileListQueue := make(chan *gocodewalker.File, 100)

	walker := gocodewalker.NewFileWalker(s.root, fileListQueue)
	walker.IncludeHidden = true
	walker.IgnoreGitIgnore = true
	walker.IgnoreIgnoreFile = true
	walker.SetErrorHandler(func(err error) bool {
		fmt.Fprintf(s.warn, "warn: walking tree: %v\n", err)
		return true
	})

	errChan := make(chan error)

	go func() {
		errChan <- walker.Start()
		close(errChan)
	}()

	for file := range fileListQueue {
		rel := s.relPath(file.Location)
		if s.inRootTargetDir(rel) {
			if !s.noticedTarget {
				fmt.Fprintf(s.warn, "skipping %s (looks like \"target\" directory)\n", filepath.Join(s.root, "target"))
				s.noticedTarget = true
			}
			continue
		}
		if s.ignored(rel) {
			continue
		}
		if err := s.processFile(file.Location); err != nil {
			fmt.Fprintf(s.warn, "warn: %v\n", err)
		}
	}

	if err := <-errChan; err != nil {
		// A failed walk (e.g. a nonexistent root) still produces a valid,
		// possibly empty, report.
		fmt.Fprintf(s.warn, "warn: walking tree: %v\n", err)
	}
	return nil
}

// processFile runs the extract-and-classify pipeline over one file. Files
// with an unrecognized extension and non-regular files are a no-op; open,
// stat, and read failures are returned for the caller to surface as
// warnings.
func (s *Scanner) processFile(path string) error {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if !slices.Contains(s.cfg.Extensions, ext) {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil
	}

	fmt.Fprintf(s.progress, "reading %s\n", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	warn := &prefixedWriter{w: s.warn, prefix: fmt.Sprintf("warn: %s: ", path)}
	extractor := comments.NewExtractor(string(data), warn)
	for {
		block, ok := extractor.Next()
		if !ok {
			break
		}
		s.tracker.Observe(block.Text, path, block.StartLine)
	}
	return nil
}

func (s *Scanner) relPath(location string) string {
	rel, err := filepath.Rel(s.root, location)
	if err != nil {
		return location
	}
	return filepath.ToSlash(rel)
}

// inRootTargetDir reports whether rel sits under a directory literally named
// "target" at depth 1 of the tree. A deeper target directory, or a plain
// file named target at the root, is scanned normally.
func (s *Scanner) inRootTargetDir(rel string) bool {
	first, rest, found := strings.Cut(rel, "/")
	return found && rest != "" && first == "target"
}

func (s *Scanner) ignored(rel string) bool {
	for _, pattern := range s.cfg.Ignore {
		if matched, err := doublestar.Match(pattern, rel); err == nil && matched {
			return true
		}
	}
	return false
}

// prefixedWriter stamps a per-file prefix onto each diagnostic the extractor
// writes, so warnings identify the file they came from.
type prefixedWriter struct {
	w      io.Writer
	prefix string
}

func (pw *prefixedWriter) Write(p []byte) (int, error) {
	if _, err := io.WriteString(pw.w, pw.prefix); err != nil {
		return 0, err
	}
	return pw.w.Write(p)
}
