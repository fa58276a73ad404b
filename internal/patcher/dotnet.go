package patcher

import (
	"encoding/json"
	"fmt"
	"strings"
)

// File names of the patchable .NET project files.
const (
	ManifestFileName   = "project.json"
	EntryPointFileName = "Program.cs"
)

// KestrelWebCommand is the server-start directive injected into the
// project.json command mapping of RC1-era projects.
const KestrelWebCommand = "Microsoft.AspNet.Server.Kestrel --server.urls http://*:80"

// UseUrlsCall is the URL-binding call injected into the host builder
// chain of RC2-era entry-point files.
const UseUrlsCall = `.UseUrls("http://*:80")`

// PatchProjectManifest ensures the manifest's command mapping contains a
// "web" entry. Returns the (possibly rewritten) content and whether the
// manifest changed. An existing "web" command is preserved verbatim: the
// original bytes are returned unmodified.
func PatchProjectManifest(content []byte) ([]byte, bool, error) {
	var manifest map[string]json.RawMessage
	if err := json.Unmarshal(content, &manifest); err != nil {
		return nil, false, fmt.Errorf("invalid manifest: %w", err)
	}

	commands := make(map[string]json.RawMessage)
	if raw, ok := manifest["commands"]; ok {
		if err := json.Unmarshal(raw, &commands); err != nil {
			return nil, false, fmt.Errorf("invalid commands mapping: %w", err)
		}
	}

	if _, ok := commands["web"]; ok {
		return content, false, nil
	}

	webCmd, err := json.Marshal(KestrelWebCommand)
	if err != nil {
		return nil, false, err
	}
	commands["web"] = webCmd

	rawCommands, err := json.Marshal(commands)
	if err != nil {
		return nil, false, err
	}
	manifest["commands"] = rawCommands

	patched, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, false, err
	}
	patched = append(patched, '\n')

	return patched, true, nil
}

// PatchEntryPoint ensures the entry-point source contains a URL-binding
// call. If any .UseUrls call is already present the content is returned
// unmodified. Otherwise a bind-to-all-interfaces call is inserted into
// the host builder chain, after .UseKestrel() when present or directly
// after the builder construction.
func PatchEntryPoint(content []byte) ([]byte, bool) {
	text := string(content)

	if strings.Contains(text, ".UseUrls(") {
		return content, false
	}

	for _, marker := range []string{".UseKestrel()", "new WebHostBuilder()"} {
		idx := strings.Index(text, marker)
		if idx < 0 {
			continue
		}
		insertAt := idx + len(marker)
		insert := "\n" + lineIndent(text, idx) + "    " + UseUrlsCall
		return []byte(text[:insertAt] + insert + text[insertAt:]), true
	}

	return content, false
}

// lineIndent returns the leading whitespace of the line containing pos.
func lineIndent(text string, pos int) string {
	start := strings.LastIndexByte(text[:pos], '\n') + 1
	end := start
	for end < len(text) && (text[end] == ' ' || text[end] == '\t') {
		end++
	}
	return text[start:end]
}
