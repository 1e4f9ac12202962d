// Package cli provides common utilities for the subformer command-line
// tool.
//
// This package includes:
//   - Configuration management (kubectl-style contexts)
//   - Output formatting (YAML, JSON, raw)
//   - Request file loading (YAML/JSON)
//
// Configuration is stored in ~/.subformer/config.yaml, supporting multiple
// named contexts similar to kubectl.
package cli
