package output

import (
	"fmt"
	"path/filepath"

	"github.com/gowebpki/jcs"

	"github.com/vvka-141/metsgen/internal/files/filesystem"
	"github.com/vvka-141/metsgen/internal/logging"
	"github.com/vvka-141/metsgen/pkg/metsgen"
)

const filePerm = 0o644

// Writer writes run artifacts beneath one output directory.
type Writer struct {
	fsys   filesystem.FileSystem
	dir    string
	logger metsgen.Logger
}

// Option configures a Writer.
type Option func(*Writer)

// WithFileSystem replaces the OS filesystem.
func WithFileSystem(fsys filesystem.FileSystem) Option {
	return func(w *Writer) {
		w.fsys = fsys
	}
}

// WithLogger sets the logger used for fallback warnings.
func WithLogger(l metsgen.Logger) Option {
	return func(w *Writer) {
		w.logger = l
	}
}

// NewWriter creates a Writer for dir. An empty dir, or one that does not
// exist as a directory, falls back to the working directory with a warning.
func NewWriter(dir string, opts ...Option) (*Writer, error) {
	w := &Writer{
		fsys:   filesystem.NewOSFileSystem(),
		logger: logging.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(w)
	}

	resolved, err := w.resolveDir(dir)
	if err != nil {
		return nil, err
	}
	w.dir = resolved
	return w, nil
}

func (w *Writer) resolveDir(dir string) (string, error) {
	if dir != "" && filesystem.IsDir(w.fsys, dir) {
		return dir, nil
	}

	cwd, err := w.fsys.Getwd()
	if err != nil {
		return "", fmt.Errorf("%w: determine working directory: %w", metsgen.ErrOutputFailed, err)
	}
	if dir != "" {
		w.logger.Warn("Output directory %s does not exist, writing to %s", dir, cwd)
	}
	return cwd, nil
}

// Dir returns the resolved output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// WriteDocument writes a serialized METS document as name and returns its path.
func (w *Writer) WriteDocument(name string, data []byte) (string, error) {
	path := filepath.Join(w.dir, name)
	if err := w.fsys.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("%w: %s: %w", metsgen.ErrOutputFailed, path, err)
	}
	w.logger.Verbose("Wrote %s (%d bytes)", path, len(data))
	return path, nil
}

// WriteSnapshot stores the node and members documents fetched for nodeID in
// <dir>/<nodeID>/ in RFC 8785 canonical form, so that the directory can be
// passed back as --md_dir. Empty members bodies are stored as [].
func (w *Writer) WriteSnapshot(nodeID string, node, members []byte) (string, error) {
	snapshotDir := filepath.Join(w.dir, nodeID)
	if err := w.fsys.MkdirAll(snapshotDir); err != nil {
		return "", fmt.Errorf("%w: create %s: %w", metsgen.ErrOutputFailed, snapshotDir, err)
	}

	if len(members) == 0 {
		members = []byte("[]")
	}
	for _, doc := range []struct {
		name string
		body []byte
	}{
		{metsgen.NodeFileName, node},
		{metsgen.MembersFileName, members},
	} {
		name := doc.name
		canonical, err := jcs.Transform(doc.body)
		if err != nil {
			return "", fmt.Errorf("%w: canonicalize %s for node %s: %w", metsgen.ErrMalformedInput, name, nodeID, err)
		}
		path := filepath.Join(snapshotDir, name)
		if err := w.fsys.WriteFile(path, canonical, filePerm); err != nil {
			return "", fmt.Errorf("%w: %s: %w", metsgen.ErrOutputFailed, path, err)
		}
	}
	w.logger.Verbose("Saved JSON snapshot for node %s in %s", nodeID, snapshotDir)
	return snapshotDir, nil
}
