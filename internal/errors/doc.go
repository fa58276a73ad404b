// Package errors provides typed errors with exit codes for dockgen.
//
// # Error Types
//
// DockgenError is the base error type that wraps an error with an exit code:
//
//	type DockgenError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess         = 0  // Success
//	ExitGeneralError    = 1  // General/unknown errors
//	ExitProjectNotFound = 2  // Project directory does not exist
//	ExitUnknownImage    = 3  // Base image or project type not recognized
//	ExitPatchFailed     = 4  // Manifest/entry-point patch failed
//	ExitConfigError     = 5  // Configuration error
//	ExitCancelled       = 6  // Wizard cancelled by the user
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.ProjectNotFound("/path/to/project")
//	errors.UnknownImage("aspnet:9.9")
//	errors.PatchFailed("project.json", err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
