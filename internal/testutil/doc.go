// Package testutil provides shared helpers for command and integration
// tests: a TestEnv that swaps the default app for one backed by a mock
// filesystem, and embedded project fixtures (project.json and
// Program.cs variants) used by the patcher and generator tests.
package testutil
