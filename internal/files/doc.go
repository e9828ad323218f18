// Package files groups file-related functionality.
//
// Sub-packages:
//   - filesystem: filesystem abstraction with OS and in-memory implementations
package files
