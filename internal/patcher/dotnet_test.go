package patcher

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPatchProjectManifest_AddsWebCommand(t *testing.T) {
	original := []byte(`{"commands":{"ef":"EntityFramework.Commands"}}`)

	patched, changed, err := PatchProjectManifest(original)
	if err != nil {
		t.Fatalf("PatchProjectManifest failed: %v", err)
	}
	if !changed {
		t.Fatal("manifest without web command should be changed")
	}

	var manifest struct {
		Commands map[string]string `json:"commands"`
	}
	if err := json.Unmarshal(patched, &manifest); err != nil {
		t.Fatalf("patched manifest is not valid JSON: %v", err)
	}

	if manifest.Commands["web"] != KestrelWebCommand {
		t.Errorf("web command = %q, want %q", manifest.Commands["web"], KestrelWebCommand)
	}
	if manifest.Commands["ef"] != "EntityFramework.Commands" {
		t.Errorf("ef command = %q, should be preserved", manifest.Commands["ef"])
	}
}

func TestPatchProjectManifest_ExistingWebPreserved(t *testing.T) {
	original := []byte(`{"commands":{"web":"EXISTING_WEB_COMMAND"}}`)

	patched, changed, err := PatchProjectManifest(original)
	if err != nil {
		t.Fatalf("PatchProjectManifest failed: %v", err)
	}
	if changed {
		t.Error("manifest with existing web command should not be changed")
	}
	if string(patched) != string(original) {
		t.Error("original bytes should be returned verbatim")
	}
}

func TestPatchProjectManifest_NoCommandsBlock(t *testing.T) {
	original := []byte(`{"dependencies":{"Microsoft.AspNet.Server.Kestrel":"1.0.0-rc1-final"}}`)

	patched, changed, err := PatchProjectManifest(original)
	if err != nil {
		t.Fatalf("PatchProjectManifest failed: %v", err)
	}
	if !changed {
		t.Fatal("manifest without commands block should be changed")
	}

	var manifest struct {
		Commands     map[string]string          `json:"commands"`
		Dependencies map[string]json.RawMessage `json:"dependencies"`
	}
	if err := json.Unmarshal(patched, &manifest); err != nil {
		t.Fatalf("patched manifest is not valid JSON: %v", err)
	}
	if manifest.Commands["web"] != KestrelWebCommand {
		t.Errorf("web command = %q", manifest.Commands["web"])
	}
	if _, ok := manifest.Dependencies["Microsoft.AspNet.Server.Kestrel"]; !ok {
		t.Error("dependencies block should be preserved")
	}
}

func TestPatchProjectManifest_Idempotent(t *testing.T) {
	original := []byte(`{"commands":{"ef":"EntityFramework.Commands"}}`)

	once, changed, err := PatchProjectManifest(original)
	if err != nil || !changed {
		t.Fatalf("first patch: changed=%v err=%v", changed, err)
	}

	twice, changed, err := PatchProjectManifest(once)
	if err != nil {
		t.Fatalf("second patch failed: %v", err)
	}
	if changed {
		t.Error("second patch should report no change")
	}
	if string(twice) != string(once) {
		t.Error("second patch should return content unmodified")
	}
}

func TestPatchProjectManifest_Malformed(t *testing.T) {
	if _, _, err := PatchProjectManifest([]byte(`{not json`)); err == nil {
		t.Error("malformed manifest should error")
	}
	if _, _, err := PatchProjectManifest([]byte(`{"commands": 42}`)); err == nil {
		t.Error("non-object commands mapping should error")
	}
}

const rc2Program = `using Microsoft.AspNetCore.Hosting;

public class Program
{
    public static void Main(string[] args)
    {
        var host = new WebHostBuilder()
            .UseKestrel()
            .UseContentRoot(Directory.GetCurrentDirectory())
            .UseStartup<Startup>()
            .Build();

        host.Run();
    }
}
`

func TestPatchEntryPoint_InsertsUseUrls(t *testing.T) {
	patched, changed := PatchEntryPoint([]byte(rc2Program))
	if !changed {
		t.Fatal("entry point without UseUrls should be changed")
	}

	text := string(patched)
	if got := strings.Count(text, UseUrlsCall); got != 1 {
		t.Errorf("UseUrls call count = %d, want exactly 1", got)
	}

	// Inserted into the chain right after UseKestrel
	kestrelIdx := strings.Index(text, ".UseKestrel()")
	urlsIdx := strings.Index(text, UseUrlsCall)
	if urlsIdx < kestrelIdx {
		t.Error("UseUrls should come after UseKestrel in the chain")
	}

	// Chain must still terminate correctly
	if !strings.Contains(text, ".Build();") {
		t.Error("builder chain should still end with Build()")
	}
}

func TestPatchEntryPoint_NoKestrelCall(t *testing.T) {
	src := `var host = new WebHostBuilder()
    .UseStartup<Startup>()
    .Build();
`
	patched, changed := PatchEntryPoint([]byte(src))
	if !changed {
		t.Fatal("should insert after builder construction")
	}

	text := string(patched)
	builderIdx := strings.Index(text, "new WebHostBuilder()")
	urlsIdx := strings.Index(text, UseUrlsCall)
	startupIdx := strings.Index(text, ".UseStartup")
	if !(builderIdx < urlsIdx && urlsIdx < startupIdx) {
		t.Errorf("UseUrls should be inserted directly after the builder construction:\n%s", text)
	}
}

func TestPatchEntryPoint_ExistingBindingPreserved(t *testing.T) {
	src := strings.Replace(rc2Program,
		".UseKestrel()",
		".UseKestrel()\n            .UseUrls(\"http://localhost:5000\")", 1)

	patched, changed := PatchEntryPoint([]byte(src))
	if changed {
		t.Error("entry point with existing UseUrls should not be changed")
	}
	if strings.Contains(string(patched), UseUrlsCall) {
		t.Error("bind-to-all-interfaces call should be absent when a binding exists")
	}
	if string(patched) != src {
		t.Error("content should be returned verbatim")
	}
}

func TestPatchEntryPoint_Idempotent(t *testing.T) {
	once, changed := PatchEntryPoint([]byte(rc2Program))
	if !changed {
		t.Fatal("first patch should change the file")
	}

	twice, changed := PatchEntryPoint(once)
	if changed {
		t.Error("second patch should report no change")
	}
	if strings.Count(string(twice), UseUrlsCall) != 1 {
		t.Error("second patch must not duplicate the directive")
	}
}

func TestPatchEntryPoint_NoBuilder(t *testing.T) {
	src := `class Program { static void Main() {} }`
	patched, changed := PatchEntryPoint([]byte(src))
	if changed {
		t.Error("console program without a host builder should not be changed")
	}
	if string(patched) != src {
		t.Error("content should be returned verbatim")
	}
}

func TestLineIndent(t *testing.T) {
	text := "foo\n        var host = new WebHostBuilder()\n"
	idx := strings.Index(text, "new WebHostBuilder()")
	if got := lineIndent(text, idx); got != "        " {
		t.Errorf("lineIndent = %q, want 8 spaces", got)
	}
}
