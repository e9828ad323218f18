// Package pipeline turns repository metadata into METS documents.
//
// For each object the Service loads the node and members documents from a
// DocumentSource, resolves every model reference, fetches each parent,
// assembles the METS tree and writes it. Objects are processed one at a
// time; in fetch mode each node is written before the next is started.
package pipeline
