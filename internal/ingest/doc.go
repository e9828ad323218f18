// Package ingest turns repository JSON documents into metsgen.ObjectRecord
// values.
//
// Repository (Drupal) field values are arrays of objects, so the node UUID
// lives at uuid[0].value and the model reference at field_model[0].url.
// Two fields are shape-polymorphic and are normalized here, at the
// boundary, so nothing downstream branches on shape:
//
//   - members.json holds a list of nodes, a single bare node, null, or
//     nothing at all.
//   - field_member_of holds a list of references, a single reference
//     object, a bare URL string, or null.
//
// Node and taxonomy documents are checked against embedded JSON Schemas
// before decoding; failures are reported as *InputError values that wrap
// metsgen.ErrMalformedInput.
package ingest
