// Package filesystem provides the filesystem abstraction used to read
// exported metadata and write METS documents.
//
// Key interface:
//   - FileSystem: read, stat, create directories and replace files
//
// Implementations:
//   - OSFileSystem: production implementation; WriteFile is atomic
//   - MemoryFileSystem: in-memory implementation for testing
package filesystem
