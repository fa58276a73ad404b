// Package logging provides logging utilities for dockgen.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("rendering artifact", "name", name, "image", image)
//	logging.Warn("port already customized", "port", port)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Scaffolding %s project...", projectType)
//	logging.UserSuccess("Wrote %s", path)
//	logging.UserWarning("Skipping existing %s", path)
//	logging.UserError("Failed to patch %s: %v", file, err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
