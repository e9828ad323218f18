package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vvka-141/metsgen/internal/files/filesystem"
	"github.com/vvka-141/metsgen/internal/repository"
	"github.com/vvka-141/metsgen/pkg/metsgen"
)

// LocalSource reads node.json and members.json from an export directory.
type LocalSource struct {
	fsys filesystem.FileSystem
	dir  string
}

// NewLocalSource creates a LocalSource for dir.
func NewLocalSource(fsys filesystem.FileSystem, dir string) *LocalSource {
	if fsys == nil {
		panic("fsys cannot be nil")
	}
	return &LocalSource{fsys: fsys, dir: dir}
}

// Documents reads both files. The node ID is ignored.
func (s *LocalSource) Documents(_ context.Context, _ string) (metsgen.Documents, error) {
	nodePath := filepath.Join(s.dir, metsgen.NodeFileName)
	membersPath := filepath.Join(s.dir, metsgen.MembersFileName)

	node, err := s.fsys.ReadFile(nodePath)
	if err != nil {
		return metsgen.Documents{}, fmt.Errorf("%w: read %s: %w", metsgen.ErrMalformedInput, nodePath, err)
	}
	members, err := s.fsys.ReadFile(membersPath)
	if err != nil {
		return metsgen.Documents{}, fmt.Errorf("%w: read %s: %w", metsgen.ErrMalformedInput, membersPath, err)
	}

	return metsgen.Documents{
		Node:          node,
		Members:       members,
		NodeSource:    nodePath,
		MembersSource: membersPath,
	}, nil
}

// FetchSource downloads node and members documents with credentials.
type FetchSource struct {
	client *repository.Client
}

// NewFetchSource creates a FetchSource backed by client.
func NewFetchSource(client *repository.Client) *FetchSource {
	if client == nil {
		panic("client cannot be nil")
	}
	return &FetchSource{client: client}
}

// Documents fetches /node/{nodeID} and /node/{nodeID}/members.
func (s *FetchSource) Documents(ctx context.Context, nodeID string) (metsgen.Documents, error) {
	node, err := s.client.Node(ctx, nodeID)
	if err != nil {
		return metsgen.Documents{}, fmt.Errorf("fetch node %s: %w", nodeID, err)
	}
	members, err := s.client.Members(ctx, nodeID)
	if err != nil {
		return metsgen.Documents{}, fmt.Errorf("fetch members of node %s: %w", nodeID, err)
	}

	return metsgen.Documents{
		Node:          node,
		Members:       members,
		NodeSource:    s.client.URL("/node/" + nodeID),
		MembersSource: s.client.URL("/node/" + nodeID + "/members"),
	}, nil
}

var (
	_ metsgen.DocumentSource = (*LocalSource)(nil)
	_ metsgen.DocumentSource = (*FetchSource)(nil)
)
