package mets

import "github.com/vvka-141/metsgen/pkg/metsgen"

// Builder assembles a Document. File groups are keyed by model name:
// the first object with a given model creates the group and fixes its
// position in the fileSec; later objects with the same model append to it.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	scheme   IdentifierScheme
	groups   []FileGrp
	groupIdx map[string]int
	root     Div
	hasPart  *Div
	isPartOf *Div
}

// NewBuilder creates a Builder using scheme for identifiers.
func NewBuilder(scheme IdentifierScheme) *Builder {
	return &Builder{
		scheme:   scheme,
		groupIdx: make(map[string]int),
	}
}

// AddObject records the object the document describes.
func (b *Builder) AddObject(uuid, model string) {
	b.root.Fptrs = append(b.root.Fptrs, b.addFile(uuid, model))
}

// AddMember records a child of the object. Members must be added in
// source order.
func (b *Builder) AddMember(uuid, model string) {
	if b.hasPart == nil {
		b.hasPart = &Div{Type: metsgen.DivTypeHasPart}
	}
	b.hasPart.Fptrs = append(b.hasPart.Fptrs, b.addFile(uuid, model))
}

// AddParent records a collection or compound object the object belongs to.
func (b *Builder) AddParent(uuid, model string) {
	if b.isPartOf == nil {
		b.isPartOf = &Div{Type: metsgen.DivTypeIsPartOf}
	}
	b.isPartOf.Fptrs = append(b.isPartOf.Fptrs, b.addFile(uuid, model))
}

// GroupCount returns the number of distinct models seen so far.
func (b *Builder) GroupCount() int {
	return len(b.groups)
}

func (b *Builder) addFile(uuid, model string) Fptr {
	id := b.scheme.ElementID(uuid)
	file := File{
		ID: id,
		FLocat: FLocat{
			Href:    b.scheme.ARK(uuid),
			LocType: metsgen.LocTypeARK,
		},
	}

	idx, ok := b.groupIdx[model]
	if !ok {
		idx = len(b.groups)
		b.groups = append(b.groups, FileGrp{Use: model})
		b.groupIdx[model] = idx
	}
	b.groups[idx].Files = append(b.groups[idx].Files, file)

	return Fptr{FileID: id}
}

// Document returns the assembled document. Divisions without entries are
// left out. The Builder must not be used afterwards.
func (b *Builder) Document() *Document {
	root := b.root
	if b.hasPart != nil {
		root.Divs = append(root.Divs, *b.hasPart)
	}
	if b.isPartOf != nil {
		root.Divs = append(root.Divs, *b.isPartOf)
	}

	return &Document{
		XMLNSMets:  metsgen.NamespaceMETS,
		XMLNSXLink: metsgen.NamespaceXLink,
		FileSec:    FileSec{Groups: b.groups},
		StructMap: StructMap{
			Type: metsgen.StructMapTypeLogical,
			Div:  root,
		},
	}
}
