// Package tui implements the interactive scaffolding wizard.
//
// The wizard walks through project path, project type, base image,
// service name and port, then asks for confirmation before returning
// the collected options. It is built on bubbletea and is only used
// when the scaffold command runs without --non-interactive.
package tui
