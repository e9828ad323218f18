package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryFile struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystem for in-memory testing.
// Paths use forward slashes; relative paths resolve against the root.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	files map[string]*memoryFile // absolute path -> entry
	root  string                 // working directory
}

// NewMemoryFileSystem creates a new in-memory filesystem whose working
// directory is root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  path.Clean(filepath.ToSlash(root)),
	}
	mfs.addDir(mfs.root)
	return mfs
}

func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// AddFile adds a file and its parent directories.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.put(mfs.abs(filePath), []byte(content), 0o644)
}

// AddDir adds a directory and its parents.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.addDir(mfs.abs(dirPath))
}

// Files lists the regular files, sorted by path.
func (mfs *MemoryFileSystem) Files() []string {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	var paths []string
	for p, f := range mfs.files {
		if !f.info.isDir {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}

func (mfs *MemoryFileSystem) put(absPath string, content []byte, perm fs.FileMode) {
	mfs.files[absPath] = &memoryFile{
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    perm,
			modTime: time.Now(),
		},
	}
	mfs.addDir(path.Dir(absPath))
}

// addDir creates directory entries for dir and all of its parents.
func (mfs *MemoryFileSystem) addDir(dir string) {
	for {
		if _, exists := mfs.files[dir]; exists {
			return
		}
		mfs.files[dir] = &memoryFile{
			info: &memoryFileInfo{
				name:    path.Base(dir),
				mode:    0o755 | fs.ModeDir,
				modTime: time.Now(),
				isDir:   true,
			},
		}
		parent := path.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

// ReadFile implements FileSystem.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	file, exists := mfs.files[mfs.abs(filePath)]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	if file.info.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	out := make([]byte, len(file.content))
	copy(out, file.content)
	return out, nil
}

// Stat implements FileSystem.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	file, exists := mfs.files[mfs.abs(statPath)]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
	}
	return file.info, nil
}

// MkdirAll implements FileSystem.MkdirAll
func (mfs *MemoryFileSystem) MkdirAll(dirPath string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.abs(dirPath)
	for p := absPath; ; p = path.Dir(p) {
		if f, ok := mfs.files[p]; ok && !f.info.isDir {
			return fmt.Errorf("mkdir %s: %s is not a directory", dirPath, p)
		}
		if p == path.Dir(p) {
			break
		}
	}
	mfs.addDir(absPath)
	return nil
}

// WriteFile implements FileSystem.WriteFile. The parent directory must exist.
func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte, perm fs.FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.abs(filePath)
	parent, ok := mfs.files[path.Dir(absPath)]
	if !ok || !parent.info.isDir {
		return &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	if existing, ok := mfs.files[absPath]; ok && existing.info.isDir {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	content := make([]byte, len(data))
	copy(content, data)
	mfs.put(absPath, content, perm)
	return nil
}

// Getwd implements FileSystem.Getwd
func (mfs *MemoryFileSystem) Getwd() (string, error) {
	return mfs.root, nil
}

var _ FileSystem = (*MemoryFileSystem)(nil)
