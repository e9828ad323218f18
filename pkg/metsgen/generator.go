package metsgen

import "context"

// Generator is the main interface for producing METS documents.
type Generator interface {
	// Generate runs the configured mode to completion and returns one
	// summary per object attempted. In fetch mode a failing node does not
	// stop the run; the returned error is the first failure encountered.
	Generate(ctx context.Context, config RunConfig) ([]ObjectSummary, error)
}

// Documents are the raw JSON documents describing one object.
type Documents struct {
	Node    []byte
	Members []byte

	// NodeSource and MembersSource name where the documents came from
	// (file path or URL) for error messages.
	NodeSource    string
	MembersSource string
}

// DocumentSource supplies the node and members documents for an object.
//
// Implementations:
//   - pipeline.LocalSource: node.json and members.json in a directory
//   - pipeline.FetchSource: /node/{id} and /node/{id}/members over HTTP
type DocumentSource interface {
	// Documents returns the documents for nodeID. Local sources ignore
	// nodeID.
	Documents(ctx context.Context, nodeID string) (Documents, error)
}

// ModelResolver maps a field_model reference to the model's external URI.
type ModelResolver interface {
	Resolve(ctx context.Context, modelPath string) (string, error)
}

// ParentFetcher retrieves the node document of a parent referenced by
// field_member_of.
type ParentFetcher interface {
	Parent(ctx context.Context, path string) ([]byte, error)
}

// ObjectSummary reports what was generated for one object.
type ObjectSummary struct {
	NodeID     string // empty in local-file mode
	UUID       string
	Members    int
	Parents    int
	Groups     int
	Unresolved int // model lookups replaced by InvalidModel
	Skipped    int // parents omitted after a failed fetch
	Path       string
	Err        error

	// NonStandardUUIDs lists identifiers that do not parse as RFC 4122
	// UUIDs. They are still used unchanged.
	NonStandardUUIDs []string
}
