// Package index answers package queries over a parsed dpkg status file.
//
// # Queries
//
// Two queries are supported:
//
//   - [Names]: every stanza's package name, in file order, duplicates kept
//   - [Query]: one package's summary, description, resolved dependencies and
//     dependents (packages whose Depends mention it)
//
// Both are computed from scratch over the full record list: there is no
// persistent index. [Service] adds the file read and an optional
// read-through cache keyed on the file's size and modification time, so a
// result always reflects the current file contents.
//
// # Semantics
//
// When several stanzas share the queried name, the last one wins. Dependency
// tokens keep their source order; alternation dividers ("|") are resolved
// like any other token and normally come back with Found=false. Querying an
// unknown name is not an error: it yields an empty detail whose dependents
// may still be non-empty.
package index
