// Package pkg holds the libraries behind dpkgview.
//
// # Overview
//
// dpkgview reads the dpkg status database and answers two questions: which
// packages are installed, and for one package, what it depends on and what
// depends on it.
//
// # Data Flow
//
//	/var/lib/dpkg/status
//	         ↓
//	    [control] load, split into stanzas, extract fields, tokenize Depends
//	         ↓
//	    [index] names query, detail query (dependencies + dependents)
//	         ↓
//	    CLI, HTTP [server], interactive browser
//
// [graph] builds the whole-file dependency graph for export. [cache] stores
// parsed stanzas keyed on the file's size and modification time, and [watch]
// purges it when dpkg rewrites the file.
//
// # Supporting Packages
//
//   - [config]: TOML configuration
//   - [errors]: error codes shared by the CLI and the HTTP API
//   - [observability]: hooks with a Prometheus implementation
//   - [buildinfo]: version information
//
// [control]: github.com/matzehuels/dpkgview/pkg/control
// [index]: github.com/matzehuels/dpkgview/pkg/index
// [server]: github.com/matzehuels/dpkgview/pkg/server
// [graph]: github.com/matzehuels/dpkgview/pkg/graph
// [cache]: github.com/matzehuels/dpkgview/pkg/cache
// [watch]: github.com/matzehuels/dpkgview/pkg/watch
// [config]: github.com/matzehuels/dpkgview/pkg/config
// [errors]: github.com/matzehuels/dpkgview/pkg/errors
// [observability]: github.com/matzehuels/dpkgview/pkg/observability
// [buildinfo]: github.com/matzehuels/dpkgview/pkg/buildinfo
package pkg
