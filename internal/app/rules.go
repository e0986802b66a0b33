package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/maggie-reiter/hops-sensory-analysis/sensory"
)

// EnsureRuleFiles writes the built-in acronym and category rules to the
// configured paths when those files do not exist yet, giving users a
// starting point for editing rules outside the binary.
func EnsureRuleFiles(cfg sensory.Config) {
	ensureYAMLFile(cfg.AcronymsPath, sensory.DefaultAcronyms())
	ensureYAMLFile(cfg.CategoriesPath, sensory.DefaultCategories())
}

func ensureYAMLFile(path string, defaults any) {
	clean := strings.TrimSpace(path)
	if clean == "" {
		return
	}
	clean = filepath.Clean(clean)
	if _, err := os.Stat(clean); err == nil {
		return
	} else if !errors.Is(err, os.ErrNotExist) {
		fmt.Println("rule file check error:", err)
		return
	}
	dir := filepath.Dir(clean)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Println("rule file dir error:", err)
			return
		}
	}
	data, err := yaml.Marshal(defaults)
	if err != nil {
		fmt.Println("rule file encode error:", err)
		return
	}
	if err := os.WriteFile(clean, data, 0o644); err != nil {
		fmt.Println("rule file write error:", err)
	}
}
