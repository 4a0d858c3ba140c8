// Package errx provides the error taxonomy and classification logic
// shared by OARC command-line tools.
//
// The taxonomy is a closed table of named error kinds, each with:
//   - A stable name (e.g. "NetworkError")
//   - A category description
//   - An exit code (0 in the table means "default", which resolves to 1)
//   - A domain flag marking membership in the known-domain hierarchy
//
// Errors are created through New/Wrap or the per-kind helpers and carry
// a kind tag, a user-facing message, optional structured context, and
// an optional cause.
//
// Classify maps any error to a structured Result - classification
// bucket, message, type name, exit code, and (when verbose) a stack
// trace - without printing or terminating. CLI boundaries consume the
// Result to render diagnostics and pick the process exit status.
//
// Two kinds are deliberately outside the domain hierarchy: Transport
// and MCP. They are named in the table so tooling can list them, but
// Classify files them under the unexpected bucket with exit code 1.
//
// Example usage:
//
//	err := errx.WrapNetwork("failed to reach registry", cause).
//		WithContext("url", "registry.example.com")
//
//	res := errx.Classify(err, false)
//	// res.ErrorType == "NetworkError", res.ExitCode == 2
//
//	fmt.Println(errx.UserString(err))  // User-friendly message
//	fmt.Println(errx.DebugString(err)) // Full debug details
package errx
