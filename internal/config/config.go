// Package config contains the loader and strongly typed model for catalog.yaml.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KevinLozano-bot/arcadectl/internal/env"
)

// CatalogConfig represents the declarative description of a machine
// catalog. It mirrors the structure of catalog.yaml after template
// rendering.
type CatalogConfig struct {
	// Catalog is the short catalog name used in logs and reports.
	Catalog string `yaml:"catalog"`
	// EnvFiles lists .env files to load before rendering.
	EnvFiles []string `yaml:"envFiles,omitempty"`
	// Machines lists the machines to build and register, in order.
	Machines []MachineSpec `yaml:"machines"`
}

// MachineSpec describes a single machine declaration.
type MachineSpec struct {
	// Name is the unique label used to address the machine.
	Name string `yaml:"name"`
	// Type is the predefined machine type key, matched case-sensitively.
	Type string `yaml:"type"`
	// Material is the free-form material label. Materials with a pricing
	// rule additionally adjust weight, price and power consumption.
	Material string `yaml:"material"`
	// Color is the free-form cabinet color.
	Color string `yaml:"color,omitempty"`
	// Videogames lists the games to install after construction, in order.
	Videogames []VideogameSpec `yaml:"videogames,omitempty"`
}

// VideogameSpec describes a videogame declaration.
type VideogameSpec struct {
	// Name is the game title.
	Name string `yaml:"name"`
	// Storytelling credits the author of the game's story.
	Storytelling string `yaml:"storytelling,omitempty"`
	// Graphics credits the author of the game's visuals.
	Graphics string `yaml:"graphics,omitempty"`
	// Category is the free-form genre label.
	Category string `yaml:"category,omitempty"`
	// Price is the list price before any high-definition markup.
	Price float64 `yaml:"price"`
	// Year is the release year.
	Year int `yaml:"year,omitempty"`
	// HighDefinition marks HD titles, which carry a 10% markup.
	HighDefinition bool `yaml:"highDefinition,omitempty"`
}

// LoadOptions describes parameters that influence template rendering of catalog.yaml.
type LoadOptions struct {
	// UserVars are inline variables for template rendering.
	UserVars env.Vars
	// VarFiles lists additional var-files to load.
	VarFiles []string
}

// TemplateContext represents the data exposed to Go-templates when rendering catalog.yaml.
type TemplateContext struct {
	// Catalog is the catalog name from the unrendered header.
	Catalog string
	// BaseDir is the directory containing the catalog file.
	BaseDir string
	// Now is the timestamp captured for template rendering.
	Now time.Time
	// UserVars contains inline user variables.
	UserVars env.Vars
	// EnvMap merges OS env, envFiles, var-files and user variables.
	EnvMap env.Vars
}

// rawHeader is a minimal struct used to extract top-level fields before templating.
type rawHeader struct {
	Catalog  string   `yaml:"catalog"`
	EnvFiles []string `yaml:"envFiles"`
}

// LoadAndRender reads catalog.yaml, merges the variable sources and
// renders the file as a Go-template, returning the rendered bytes and
// the template context used.
func LoadAndRender(path string, opts LoadOptions) ([]byte, TemplateContext, error) {
	var zeroCtx TemplateContext

	if path == "" {
		return nil, zeroCtx, fmt.Errorf("catalog path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, zeroCtx, fmt.Errorf("resolve catalog path: %w", err)
	}

	rawBytes, err := os.ReadFile(absPath)
	if err != nil {
		return nil, zeroCtx, fmt.Errorf("read catalog %q: %w", absPath, err)
	}

	var header rawHeader
	if err := yaml.Unmarshal(rawBytes, &header); err != nil {
		return nil, zeroCtx, fmt.Errorf("parse top-level catalog fields: %w", err)
	}

	baseDir := filepath.Dir(absPath)
	osVars := env.FromOS()

	envFileVars, err := env.LoadEnvFiles(baseDir, header.EnvFiles)
	if err != nil {
		return nil, zeroCtx, err
	}

	varFileVars := make(env.Vars)
	for _, vf := range opts.VarFiles {
		if strings.TrimSpace(vf) == "" {
			continue
		}
		vars, err := env.LoadVarFile(vf)
		if err != nil {
			return nil, zeroCtx, fmt.Errorf("load var-file %q: %w", vf, err)
		}
		varFileVars = env.Merge(varFileVars, vars)
	}

	ctx := TemplateContext{
		Catalog:  header.Catalog,
		BaseDir:  baseDir,
		Now:      time.Now().UTC(),
		UserVars: opts.UserVars,
		EnvMap:   env.Merge(osVars, envFileVars, varFileVars, opts.UserVars),
	}

	rendered, err := executeTemplate(rawBytes, ctx)
	if err != nil {
		return nil, zeroCtx, err
	}

	return rendered, ctx, nil
}

// LoadCatalogConfig loads, templates and parses catalog.yaml into a
// validated CatalogConfig and the TemplateContext used for rendering.
func LoadCatalogConfig(path string, opts LoadOptions) (*CatalogConfig, TemplateContext, error) {
	rendered, ctx, err := LoadAndRender(path, opts)
	if err != nil {
		return nil, TemplateContext{}, err
	}

	var cfg CatalogConfig
	if err := yaml.Unmarshal(rendered, &cfg); err != nil {
		return nil, TemplateContext{}, fmt.Errorf("parse rendered catalog.yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, TemplateContext{}, err
	}

	return &cfg, ctx, nil
}

// Validate checks the structural rules of a catalog definition: every
// machine needs a name and a type, and names must be unique.
func (c *CatalogConfig) Validate() error {
	if c == nil {
		return fmt.Errorf("catalog config is nil")
	}

	seen := make(map[string]struct{}, len(c.Machines))
	for i, machine := range c.Machines {
		name := strings.TrimSpace(machine.Name)
		if name == "" {
			return fmt.Errorf("machine %d: name is required", i)
		}
		if strings.TrimSpace(machine.Type) == "" {
			return fmt.Errorf("machine %q: type is required", name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("duplicate machine name %q", name)
		}
		seen[name] = struct{}{}

		for j, game := range machine.Videogames {
			if strings.TrimSpace(game.Name) == "" {
				return fmt.Errorf("machine %q: videogame %d: name is required", name, j)
			}
		}
	}
	return nil
}

// executeTemplate renders the given YAML content using the catalog template context.
func executeTemplate(raw []byte, ctx TemplateContext) ([]byte, error) {
	funcs := buildFuncMap(ctx)

	tmpl, err := template.New("catalog.yaml").Funcs(funcs).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	return buf.Bytes(), nil
}

// buildFuncMap constructs the set of template functions available in catalog.yaml.
func buildFuncMap(ctx TemplateContext) template.FuncMap {
	return template.FuncMap{
		"default":    funcDef,
		"toLower":    strings.ToLower,
		"slug":       funcSlug,
		"envOr":      funcEnvOr(ctx.EnvMap),
		"ternary":    funcTernary,
		"now":        func() time.Time { return ctx.Now },
		"join":       funcJoin,
		"trimPrefix": funcTrimPrefix,
	}
}

// funcDef returns def when value is empty or whitespace, otherwise value.
func funcDef(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

// funcSlug normalizes a value into a lower-case dash-separated slug.
func funcSlug(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	v = strings.ReplaceAll(v, " ", "-")
	v = strings.ReplaceAll(v, "_", "-")
	return v
}

// funcEnvOr returns a function that looks up a key in envMap and falls back to def.
func funcEnvOr(envMap env.Vars) func(key, def string) string {
	return func(key, def string) string {
		if v, ok := envMap[key]; ok && v != "" {
			return v
		}
		return def
	}
}

// funcTernary returns a when cond is true, otherwise b.
func funcTernary(cond bool, a, b any) any {
	if cond {
		return a
	}
	return b
}

// funcJoin joins a slice of strings with the given separator.
func funcJoin(values []string, sep string) string {
	return strings.Join(values, sep)
}

// funcTrimPrefix removes the prefix from value when present.
func funcTrimPrefix(value, prefix string) string {
	return strings.TrimPrefix(value, prefix)
}
