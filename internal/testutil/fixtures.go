package testutil

import (
	"embed"
	"encoding/json"
)

//go:embed fixtures/*.json fixtures/*.cs
var fixturesFS embed.FS

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// LoadManifestFixture loads a project.json fixture and unmarshals it.
func LoadManifestFixture(name string) (map[string]json.RawMessage, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	var manifest map[string]json.RawMessage
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}
	return manifest, nil
}

// BasicManifest returns the RC1 manifest fixture without a web command.
func BasicManifest() ([]byte, error) {
	return LoadFixture("project_basic.json")
}

// ManifestWithWebCommand returns the manifest fixture that already
// carries a web command.
func ManifestWithWebCommand() ([]byte, error) {
	return LoadFixture("project_with_web.json")
}

// KestrelEntryPoint returns the unpatched Program.cs fixture.
func KestrelEntryPoint() ([]byte, error) {
	return LoadFixture("program_kestrel.cs")
}

// PatchedEntryPoint returns the Program.cs fixture with the UseUrls call.
func PatchedEntryPoint() ([]byte, error) {
	return LoadFixture("program_patched.cs")
}
