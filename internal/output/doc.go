// Package output places generated METS documents and JSON snapshots on
// disk.
package output
