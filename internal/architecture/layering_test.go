// Where: internal/architecture/layering_test.go
// What: Layer dependency guard tests for internal packages.
// Why: Keep the pure policy core free of orchestration and adapter imports.
package architecture

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

const internalImportPrefix = "github.com/websmith/websmith/internal/"

// Layers, inner to outer. The policy core (value, graph, manifest,
// website, accountcfg) must stay importable without pulling in adapters
// or the CLI; adapters (provisioner) must not reach into orchestration.
var forbiddenLayerImports = map[string][]string{
	"value":       {"graph", "manifest", "website", "accountcfg", "ports", "emit", "provisioner", "workflows", "ui", "app"},
	"graph":       {"manifest", "website", "accountcfg", "ports", "emit", "provisioner", "workflows", "ui", "app"},
	"manifest":    {"website", "accountcfg", "ports", "emit", "provisioner", "workflows", "ui", "app"},
	"website":     {"accountcfg", "emit", "provisioner", "workflows", "ui", "app"},
	"accountcfg":  {"website", "graph", "emit", "provisioner", "workflows", "ui", "app"},
	"ports":       {"website", "accountcfg", "emit", "provisioner", "workflows", "ui", "app"},
	"emit":        {"website", "accountcfg", "provisioner", "workflows", "ui", "app"},
	"provisioner": {"website", "accountcfg", "emit", "workflows", "ui", "app"},
	"workflows":   {"provisioner", "ui", "app"},
	"ui":          {"workflows", "provisioner", "app"},
}

func TestLayeringRules(t *testing.T) {
	t.Parallel()

	internalRoot := resolveInternalRoot(t)
	fset := token.NewFileSet()
	violations := []string{}

	err := filepath.WalkDir(internalRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".go") || strings.HasSuffix(d.Name(), "_test.go") {
			return nil
		}
		rel, err := filepath.Rel(internalRoot, path)
		if err != nil {
			return err
		}
		sourceLayer := topLayer(rel)
		forbidden, guarded := forbiddenLayerImports[sourceLayer]
		if !guarded {
			return nil
		}

		file, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		for _, imp := range file.Imports {
			importPath := strings.Trim(imp.Path.Value, "\"")
			importLayer := topLayerFromImport(importPath)
			if importLayer == "" {
				continue
			}
			for _, banned := range forbidden {
				if importLayer == banned {
					violations = append(violations, rel+" -> "+importPath)
				}
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("scan internal packages: %v", err)
	}

	if len(violations) > 0 {
		sort.Strings(violations)
		t.Fatalf("layering rule violations:\n%s", strings.Join(violations, "\n"))
	}
}

func resolveInternalRoot(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	root := filepath.Clean(filepath.Join(wd, "..", ".."))
	return filepath.Join(root, "internal")
}

func topLayer(relPath string) string {
	parts := strings.Split(filepath.ToSlash(relPath), "/")
	if len(parts) == 0 {
		return ""
	}
	return strings.TrimSpace(parts[0])
}

func topLayerFromImport(importPath string) string {
	if !strings.HasPrefix(importPath, internalImportPrefix) {
		return ""
	}
	rest := strings.TrimPrefix(importPath, internalImportPrefix)
	parts := strings.Split(rest, "/")
	if len(parts) == 0 {
		return ""
	}
	return strings.TrimSpace(parts[0])
}
