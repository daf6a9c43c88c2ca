package themes

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

// LoadTemplates parses every theme's page templates under dir into a single
// template tree. Each template is addressable by its path relative to dir,
// e.g. "generic/list.html", which is the form TemplatePath produces.
//
// Gin's ParseGlob cannot be used directly: it names templates by base name,
// so every theme's list.html would collide.
func LoadTemplates(dir string) (*template.Template, error) {
	funcMap := template.FuncMap{
		// str renders an optional field, mapping NULL to the empty string.
		"str": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
	}

	pages, err := filepath.Glob(filepath.Join(dir, "*", "*.html"))
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no templates found under %s", dir)
	}

	root := template.New("").Funcs(funcMap)
	for _, page := range pages {
		rel, err := filepath.Rel(dir, page)
		if err != nil {
			return nil, err
		}
		content, err := os.ReadFile(page)
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", rel, err)
		}
		name := filepath.ToSlash(rel)
		if _, err := root.New(name).Parse(string(content)); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
	}
	return root, nil
}
