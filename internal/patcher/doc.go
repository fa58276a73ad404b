// Package patcher makes existing .NET project files container-ready.
//
// Two patch styles exist, selected by the chosen base image:
//
//   - Manifest style (RC1-era images): the project.json command mapping
//     gets a "web" entry running Kestrel bound to port 80, unless one
//     already exists.
//   - Entry-point style (RC2-era images): Program.cs gets a
//     .UseUrls("http://*:80") call inserted into the WebHostBuilder
//     chain, unless a .UseUrls call is already present.
//
// The decision logic is pure: PatchProjectManifest and PatchEntryPoint
// map original content to (new content, changed) without side effects.
// Apply performs the two file-system effects around them: copying the
// original to a .backup path before the first modification, and
// replacing the file via write-then-rename.
//
// A backup copy exists exactly when the corresponding original was
// modified; files that already carry a server directive are never
// rewritten and never backed up. Apply is idempotent.
package patcher
