package metrics

import "io"
import "io/fs"
import "fmt"
import "bytes"
import "errors"
import "strings"
import "path"

import "github.com/pelletier/go-toml/v2"
import "gopkg.in/yaml.v3"

// A font manifest lists the fonts an application wants to register
// at startup. Manifests can be written in TOML:
//   [[font]]
//   name = "lantern"
//   metrics = "fonts/Lantern/metrics.json"
//   atlas = "fonts/Lantern/atlas.png"
// Or in YAML:
//   font:
//     - name: lantern
//       metrics: fonts/Lantern/metrics.json
//       atlas: fonts/Lantern/atlas.png
//
// Metrics paths are resolved relative to the manifest directory.
// Atlas paths are kept as written, since they are handed to the
// image loader, which may use a different root.
type Manifest struct {
	Fonts []ManifestEntry `toml:"font" yaml:"font"`
}

type ManifestEntry struct {
	Name    string `toml:"name"    yaml:"name"`
	Metrics string `toml:"metrics" yaml:"metrics"`
	Atlas   string `toml:"atlas"   yaml:"atlas"`
}

// A manifest entry with its metrics already loaded and validated.
type ManifestFont struct {
	Name string
	Metrics *FontMetrics
	AtlasPath string
}

var ErrUnknownManifestFormat = errors.New("unknown manifest format (expected .toml, .yaml or .yml)")

// Parses a manifest. The format is chosen from the file extension
// of the given name.
func ParseManifest(name string, reader io.Reader) (*Manifest, error) {
	data, err := io.ReadAll(reader)
	if err != nil { return nil, err }

	var manifest Manifest
	switch strings.ToLower(path.Ext(name)) {
	case ".toml":
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		err = decoder.Decode(&manifest)
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		err = decoder.Decode(&manifest)
		if errors.Is(err, io.EOF) { err = nil } // empty document
	default:
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownManifestFormat)
	}
	if err != nil { return nil, fmt.Errorf("%s: %w", name, err) }

	seen := make(map[string]struct{}, len(manifest.Fonts))
	for i, entry := range manifest.Fonts {
		if entry.Name == "" { return nil, fmt.Errorf("%s: font #%d has no name", name, i) }
		if entry.Metrics == "" { return nil, fmt.Errorf("%s: font %q has no metrics path", name, entry.Name) }
		if entry.Atlas == "" { return nil, fmt.Errorf("%s: font %q has no atlas path", name, entry.Name) }
		if _, found := seen[entry.Name]; found {
			return nil, fmt.Errorf("%s: font %q listed more than once", name, entry.Name)
		}
		seen[entry.Name] = struct{}{}
	}
	return &manifest, nil
}

// Reads the manifest at the given path and loads and validates the
// metrics for each listed font.
func LoadManifest(fsys fs.FS, manifestPath string) ([]ManifestFont, error) {
	file, err := fsys.Open(manifestPath)
	if err != nil { return nil, err }
	manifest, err := ParseManifest(manifestPath, file)
	_ = file.Close()
	if err != nil { return nil, err }

	dir := path.Dir(manifestPath)
	fonts := make([]ManifestFont, 0, len(manifest.Fonts))
	for _, entry := range manifest.Fonts {
		fontMetrics, err := LoadFile(fsys, path.Join(dir, entry.Metrics))
		if err != nil { return nil, err }
		err = fontMetrics.Validate()
		if err != nil { return nil, fmt.Errorf("%s: font %q: %w", manifestPath, entry.Name, err) }
		fonts = append(fonts, ManifestFont{
			Name: entry.Name,
			Metrics: fontMetrics,
			AtlasPath: entry.Atlas,
		})
	}
	return fonts, nil
}
