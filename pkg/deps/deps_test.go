package deps

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestParseRequirements(t *testing.T) {
	content := []byte(`# runtime deps
requests>=2.31
flask==3.0.0
pydantic~=2.5
numpy[extra]>=1.26
-r base.txt

click
`)
	d := Parse("requirements.txt", content)
	want := []string{"requests", "flask", "pydantic", "numpy", "click"}
	if !slices.Equal(d.Direct, want) {
		t.Errorf("Direct = %v, want %v", d.Direct, want)
	}
	if len(d.Dev) != 0 {
		t.Errorf("Dev = %v, want empty", d.Dev)
	}
}

func TestParseRequirementsDev(t *testing.T) {
	d := Parse("requirements-dev.txt", []byte("pytest>=8\nblack\n"))
	want := []string{"pytest", "black"}
	if !slices.Equal(d.Dev, want) {
		t.Errorf("Dev = %v, want %v", d.Dev, want)
	}
}

func TestParsePackageJSON(t *testing.T) {
	content := []byte(`{
  "name": "app",
  "dependencies": {"react": "^18.0.0", "axios": "^1.6.0"},
  "devDependencies": {"vitest": "^1.0.0"},
  "optionalDependencies": {"fsevents": "^2.3.0"}
}`)
	d := Parse("package.json", content)
	if !slices.Equal(d.Direct, []string{"axios", "react"}) {
		t.Errorf("Direct = %v", d.Direct)
	}
	if !slices.Equal(d.Dev, []string{"vitest"}) {
		t.Errorf("Dev = %v", d.Dev)
	}
	if !slices.Equal(d.Optional, []string{"fsevents"}) {
		t.Errorf("Optional = %v", d.Optional)
	}
}

func TestParsePackageJSONInvalid(t *testing.T) {
	d := Parse("package.json", []byte("{not json"))
	if len(d.Direct)+len(d.Dev)+len(d.Optional) != 0 {
		t.Errorf("invalid manifest should contribute nothing, got %+v", d)
	}
}

func TestParsePipfile(t *testing.T) {
	content := []byte(`[[source]]
url = "https://pypi.org/simple"

[packages]
requests = "*"
"flask" = ">=3.0"

[dev-packages]
pytest = "*"
`)
	d := Parse("Pipfile", content)
	if !slices.Equal(d.Direct, []string{"requests", "flask"}) {
		t.Errorf("Direct = %v", d.Direct)
	}
	if !slices.Equal(d.Dev, []string{"pytest"}) {
		t.Errorf("Dev = %v", d.Dev)
	}
}

func TestParsePyproject(t *testing.T) {
	content := []byte(`[tool.poetry]
name = "app"

[tool.poetry.dependencies]
python = "^3.11"
httpx = "^0.26"

[tool.poetry.group.dev.dependencies]
ruff = "^0.1"
`)
	d := Parse("pyproject.toml", content)
	if !slices.Contains(d.Direct, "httpx") {
		t.Errorf("Direct = %v, want httpx", d.Direct)
	}
	if slices.Contains(d.Direct, "python") {
		t.Error("python itself should not be listed as a dependency")
	}
	if !slices.Contains(d.Dev, "ruff") {
		t.Errorf("Dev = %v, want ruff", d.Dev)
	}
}

func TestParseGoMod(t *testing.T) {
	content := []byte(`module example.com/app

go 1.22

require (
	github.com/spf13/cobra v1.8.0
	gopkg.in/yaml.v3 v3.0.1 // indirect
)

require github.com/fatih/color v1.16.0
`)
	d := Parse("go.mod", content)
	want := []string{"github.com/spf13/cobra", "gopkg.in/yaml.v3", "github.com/fatih/color"}
	if !slices.Equal(d.Direct, want) {
		t.Errorf("Direct = %v, want %v", d.Direct, want)
	}
}

func TestParseCargoTOML(t *testing.T) {
	content := []byte(`[package]
name = "app"

[dependencies]
serde = "1.0"
tokio = { version = "1", features = ["full"] }

[dev-dependencies]
criterion = "0.5"
`)
	d := Parse("Cargo.toml", content)
	if !slices.Contains(d.Direct, "serde") || !slices.Contains(d.Direct, "tokio") {
		t.Errorf("Direct = %v", d.Direct)
	}
	if !slices.Contains(d.Dev, "criterion") {
		t.Errorf("Dev = %v", d.Dev)
	}
}

func TestScanMergesManifests(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "requirements.txt", "requests>=2\nflask\n")
	writeFile(t, dir, "package.json", `{"dependencies": {"react": "*"}, "devDependencies": {"vitest": "*"}}`)
	writeFile(t, dir, "requirements-dev.txt", "pytest\n")

	d := Scan(dir)
	if !slices.Equal(d.Direct, []string{"flask", "react", "requests"}) {
		t.Errorf("Direct = %v", d.Direct)
	}
	if !slices.Equal(d.Dev, []string{"pytest", "vitest"}) {
		t.Errorf("Dev = %v", d.Dev)
	}
}

func TestScanDeduplicates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "requirements.txt", "requests\n")
	writeFile(t, dir, "requirements.in", "requests\n")

	d := Scan(dir)
	if !slices.Equal(d.Direct, []string{"requests"}) {
		t.Errorf("Direct = %v, want single requests entry", d.Direct)
	}
}

func TestScanEmptyDir(t *testing.T) {
	d := Scan(t.TempDir())
	if d.Direct != nil || d.Dev != nil || d.Optional != nil {
		t.Errorf("empty dir should yield no dependencies, got %+v", d)
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
