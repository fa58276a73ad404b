package project

import (
	"testing"

	"github.com/dockgen-io/dockgen/internal/system"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		wantType string
		wantOK   bool
	}{
		{"rc1 dotnet", []string{"project.json", "Startup.cs"}, "dotnet", true},
		{"rc2 dotnet", []string{"Program.cs"}, "dotnet", true},
		{"msbuild dotnet", []string{"app.csproj"}, "dotnet", true},
		{"xproj dotnet", []string{"app.xproj"}, "dotnet", true},
		{"node", []string{"package.json", "index.js"}, "nodejs", true},
		{"go module", []string{"go.mod", "main.go"}, "golang", true},
		{"bare go source", []string{"main.go"}, "golang", true},
		{"dotnet wins over node", []string{"project.json", "package.json"}, "dotnet", true},
		{"nothing", []string{"README.md"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := system.NewMockFS()
			fs.AddDir("/project")
			for _, f := range tt.files {
				fs.AddFile("/project/"+f, []byte("x"), 0644)
			}

			got, ok := Detect(fs, "/project")
			if ok != tt.wantOK || got != tt.wantType {
				t.Errorf("Detect() = (%q, %v), want (%q, %v)", got, ok, tt.wantType, tt.wantOK)
			}
		})
	}
}

func TestDetect_MissingDir(t *testing.T) {
	fs := system.NewMockFS()
	if _, ok := Detect(fs, "/missing"); ok {
		t.Error("missing directory should not detect a type")
	}
}

func TestIsWeb(t *testing.T) {
	t.Run("non-dotnet defaults to web", func(t *testing.T) {
		fs := system.NewMockFS()
		if !IsWeb(fs, "/project", "nodejs") {
			t.Error("nodejs should default to web")
		}
	})

	t.Run("startup file marks web", func(t *testing.T) {
		fs := system.NewMockFS()
		fs.AddFile("/project/Startup.cs", []byte("public class Startup {}"), 0644)
		if !IsWeb(fs, "/project", "dotnet") {
			t.Error("Startup.cs should mark a web project")
		}
	})

	t.Run("kestrel dependency marks web", func(t *testing.T) {
		fs := system.NewMockFS()
		fs.AddFile("/project/project.json", []byte(`{"dependencies":{"Microsoft.AspNet.Server.Kestrel":"1.0.0-rc1-final"}}`), 0644)
		if !IsWeb(fs, "/project", "dotnet") {
			t.Error("Kestrel dependency should mark a web project")
		}
	})

	t.Run("host builder marks web", func(t *testing.T) {
		fs := system.NewMockFS()
		fs.AddFile("/project/Program.cs", []byte("var host = new WebHostBuilder()"), 0644)
		if !IsWeb(fs, "/project", "dotnet") {
			t.Error("WebHostBuilder should mark a web project")
		}
	})

	t.Run("console project is not web", func(t *testing.T) {
		fs := system.NewMockFS()
		fs.AddFile("/project/Program.cs", []byte("class Program { static void Main() {} }"), 0644)
		if IsWeb(fs, "/project", "dotnet") {
			t.Error("console project should not be web")
		}
	})
}
