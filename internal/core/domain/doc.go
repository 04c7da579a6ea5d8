// Package domain defines the core business entities for pestsearch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - LinkTable: An immutable crop name to reference URL mapping
//   - PesticideRecord: A registration row in the canonical 22-field schema
//   - Schema: Declarative mapping of canonical fields to header aliases
//   - Query / ResultSet: A lookup request and its ordered matches
//   - LookupEntry: One recorded lookup and its outcome
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
