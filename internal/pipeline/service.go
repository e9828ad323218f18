package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/vvka-141/metsgen/internal/ingest"
	"github.com/vvka-141/metsgen/internal/mets"
	"github.com/vvka-141/metsgen/internal/output"
	"github.com/vvka-141/metsgen/pkg/metsgen"
)

// Service implements metsgen.Generator.
// Thread-Safety: NOT safe for concurrent Generate() calls on the same instance.
type Service struct {
	source   metsgen.DocumentSource
	resolver metsgen.ModelResolver
	parents  metsgen.ParentFetcher
	writer   *output.Writer
	logger   metsgen.Logger
}

// NewService creates a Service with all dependencies injected.
// Panics on nil dependencies.
func NewService(
	source metsgen.DocumentSource,
	resolver metsgen.ModelResolver,
	parents metsgen.ParentFetcher,
	writer *output.Writer,
	logger metsgen.Logger,
) *Service {
	if source == nil {
		panic("source cannot be nil")
	}
	if resolver == nil {
		panic("resolver cannot be nil")
	}
	if parents == nil {
		panic("parents cannot be nil")
	}
	if writer == nil {
		panic("writer cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Service{
		source:   source,
		resolver: resolver,
		parents:  parents,
		writer:   writer,
		logger:   logger,
	}
}

// Generate processes the object in local mode, or every node ID in fetch
// mode. A failing node is logged and the next one is processed; the first
// failure is returned once all nodes have been attempted. Cancellation
// stops the run before the next node.
func (s *Service) Generate(ctx context.Context, config metsgen.RunConfig) ([]metsgen.ObjectSummary, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	nodeIDs := config.NodeIDs
	if config.Mode == metsgen.ModeLocal {
		nodeIDs = []string{""}
	}
	scheme := mets.NewIdentifierScheme(config.Mode, config.NamingAuthority)

	var (
		summaries []metsgen.ObjectSummary
		firstErr  error
	)
	for _, nodeID := range nodeIDs {
		if err := ctx.Err(); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			break
		}

		summary := s.generateObject(ctx, config, scheme, nodeID)
		summaries = append(summaries, summary)
		if summary.Err != nil {
			s.logger.Error("%s: %v", describe(summary), summary.Err)
			if firstErr == nil {
				firstErr = summary.Err
			}
			continue
		}
		s.logger.Info("%s: wrote %s (%d members, %d parents, %d file groups)",
			describe(summary), summary.Path, summary.Members, summary.Parents, summary.Groups)
		if n := len(summary.NonStandardUUIDs); n > 0 {
			s.logger.Info("%s: %d of %d identifiers are not RFC 4122 UUIDs",
				describe(summary), n, 1+summary.Members+summary.Parents)
		}
	}

	return summaries, firstErr
}

func describe(summary metsgen.ObjectSummary) string {
	switch {
	case summary.NodeID != "" && summary.UUID != "":
		return fmt.Sprintf("node %s (%s)", summary.NodeID, summary.UUID)
	case summary.NodeID != "":
		return "node " + summary.NodeID
	case summary.UUID != "":
		return summary.UUID
	default:
		return "object"
	}
}

func (s *Service) generateObject(ctx context.Context, config metsgen.RunConfig, scheme mets.IdentifierScheme, nodeID string) metsgen.ObjectSummary {
	summary := metsgen.ObjectSummary{NodeID: nodeID}

	docs, err := s.source.Documents(ctx, nodeID)
	if err != nil {
		summary.Err = err
		return summary
	}

	if config.SaveJSON {
		dir, err := s.writer.WriteSnapshot(nodeID, docs.Node, docs.Members)
		if err != nil {
			summary.Err = err
			return summary
		}
		s.logger.Verbose("Saved node %s documents to %s", nodeID, dir)
	}

	object, err := ingest.ParseNode(docs.Node, docs.NodeSource)
	if err != nil {
		summary.Err = err
		return summary
	}
	summary.UUID = object.UUID

	members, err := ingest.ParseMembers(docs.Members, docs.MembersSource)
	if err != nil {
		summary.Err = err
		return summary
	}

	builder := mets.NewBuilder(scheme)
	if err := s.assemble(ctx, config, builder, object, members, &summary); err != nil {
		summary.Err = err
		return summary
	}
	summary.Groups = builder.GroupCount()

	data, err := mets.Marshal(builder.Document())
	if err != nil {
		summary.Err = fmt.Errorf("%w: serialize METS for %s: %w", metsgen.ErrOutputFailed, object.UUID, err)
		return summary
	}

	path, err := s.writer.WriteDocument(config.Mode.OutputFileName(nodeID), data)
	if err != nil {
		summary.Err = err
		return summary
	}
	summary.Path = path
	return summary
}

// assemble adds the object, then its members in source order, then its
// parents in field_member_of order. The order fixes the file group order.
func (s *Service) assemble(
	ctx context.Context,
	config metsgen.RunConfig,
	builder *mets.Builder,
	object metsgen.ObjectRecord,
	members []metsgen.ObjectRecord,
	summary *metsgen.ObjectSummary,
) error {
	model, err := s.resolveModel(ctx, config, object, summary)
	if err != nil {
		return err
	}
	builder.AddObject(object.UUID, model)

	for _, member := range members {
		model, err := s.resolveModel(ctx, config, member, summary)
		if err != nil {
			return err
		}
		builder.AddMember(member.UUID, model)
		summary.Members++
	}

	for _, parentPath := range object.MemberOf {
		body, err := s.parents.Parent(ctx, parentPath)
		if err != nil {
			if config.Strict || ctx.Err() != nil {
				return fmt.Errorf("fetch parent %s: %w", parentPath, err)
			}
			s.logger.Warn("Skipping parent %s of %s: %v", parentPath, object.UUID, err)
			summary.Skipped++
			continue
		}

		parent, err := ingest.ParseNode(body, parentPath)
		if err != nil {
			return err
		}
		model, err := s.resolveModel(ctx, config, parent, summary)
		if err != nil {
			return err
		}
		builder.AddParent(parent.UUID, model)
		summary.Parents++
	}

	return nil
}

// resolveModel returns the model URI for record. In best-effort mode a
// failed lookup yields metsgen.InvalidModel. Malformed taxonomy documents
// and cancellation always fail.
func (s *Service) resolveModel(
	ctx context.Context,
	config metsgen.RunConfig,
	record metsgen.ObjectRecord,
	summary *metsgen.ObjectSummary,
) (string, error) {
	if !mets.IsRFC4122(record.UUID) {
		s.logger.Verbose("UUID %q is not an RFC 4122 UUID, using it unchanged", record.UUID)
		summary.NonStandardUUIDs = append(summary.NonStandardUUIDs, record.UUID)
	}

	model, err := s.resolver.Resolve(ctx, record.ModelURL)
	if err == nil {
		return model, nil
	}
	if config.Strict || ctx.Err() != nil || !errors.Is(err, metsgen.ErrModelLookup) {
		return "", fmt.Errorf("resolve model of %s: %w", record.UUID, err)
	}

	s.logger.Warn("Model lookup for %s failed, using %q: %v", record.UUID, metsgen.InvalidModel, err)
	summary.Unresolved++
	return metsgen.InvalidModel, nil
}

var _ metsgen.Generator = (*Service)(nil)
