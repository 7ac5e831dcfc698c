// Package tools wraps the external formatter and linter binaries behind
// capability interfaces. Each tool is an opaque collaborator: docsmith passes
// its output through unmodified and only interprets the exit code. The
// interfaces exist so the pipeline's ordering and aggregation logic can be
// tested against fakes without the real binaries installed.
package tools
