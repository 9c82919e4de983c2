package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"wsld/internal/common/fsutil"
	"wsld/pkg/types"
)

// Source produces the definition mapping. Load runs at most once per
// successful catalog lifetime; a failed load is retried on the next access.
type Source interface {
	Load(ctx context.Context) (map[string]types.Definition, error)
}

// defFile is the on-disk shape of a definitions file.
type defFile struct {
	Definitions []types.Definition `json:"definitions" yaml:"definitions" toml:"definitions"`
}

// FileSource loads definitions from a yaml/json/toml file on disk. Logo
// paths resolve relative to the file's directory.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) (map[string]types.Definition, error) {
	p, err := fsutil.ExpandHome(s.Path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	defs, err := parseDefinitions(b, filepath.Ext(p))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	dir := filepath.Dir(p)
	return index(defs, func(rel string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, rel))
	})
}

// fsSource loads definitions from an fs.FS; used for the embedded default.
type fsSource struct {
	fsys fs.FS
	path string
}

func (s fsSource) Load(ctx context.Context) (map[string]types.Definition, error) {
	b, err := fs.ReadFile(s.fsys, s.path)
	if err != nil {
		return nil, err
	}
	defs, err := parseDefinitions(b, path.Ext(s.path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	dir := path.Dir(s.path)
	return index(defs, func(rel string) ([]byte, error) {
		return fs.ReadFile(s.fsys, path.Join(dir, rel))
	})
}

// parseDefinitions decodes a definitions file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func parseDefinitions(b []byte, ext string) ([]types.Definition, error) {
	var f defFile
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &f); err != nil {
			return nil, err
		}
	case ".json":
		if err := json.Unmarshal(b, &f); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &f); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported definitions extension: %s", ext)
	}
	return f.Definitions, nil
}

// index builds the name-keyed mapping and loads each logo payload. Any
// malformed entry or unreadable logo fails the whole load; the catalog never
// caches a partial mapping.
func index(defs []types.Definition, readLogo func(string) ([]byte, error)) (map[string]types.Definition, error) {
	m := make(map[string]types.Definition, len(defs))
	for _, d := range defs {
		if strings.TrimSpace(d.Name) == "" {
			return nil, fmt.Errorf("definition with empty name")
		}
		if _, dup := m[d.Name]; dup {
			return nil, fmt.Errorf("duplicate definition name: %s", d.Name)
		}
		if d.LogoFile != "" {
			logo, err := readLogo(d.LogoFile)
			if err != nil {
				return nil, fmt.Errorf("definition %s: logo: %w", d.Name, err)
			}
			d.Logo = logo
		}
		m[d.Name] = d
	}
	return m, nil
}
