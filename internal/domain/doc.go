// Package domain contains the core domain model for LASIF iterations.
//
// The domain is persistence-agnostic: it does not depend on XML or YAML parsing
// or on the filesystem. Infra/adapters map into/from these types.
package domain
