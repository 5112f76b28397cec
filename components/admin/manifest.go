package admin

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ManifestVersion is the only document version this package understands.
const ManifestVersion = "1"

// ResourceManifestDocument is the YAML document host applications ship to
// declare admin resources without code.
type ResourceManifestDocument struct {
	Version   string             `yaml:"version"`
	Name      string             `yaml:"name"`
	Package   string             `yaml:"package,omitempty"`
	Homepage  string             `yaml:"homepage,omitempty"`
	Resources []ManifestResource `yaml:"resources"`

	// Source records the file the document was loaded from.
	Source string `yaml:"-"`
}

// ManifestResource is one resource declaration inside a manifest.
type ManifestResource struct {
	ID             string            `yaml:"id"`
	Label          string            `yaml:"label,omitempty"`
	LabelLocalized map[string]string `yaml:"label_localized,omitempty"`
	NavGroup       string            `yaml:"nav_group,omitempty"`
	Icon           string            `yaml:"icon,omitempty"`
	TitleProperty  string            `yaml:"title_property,omitempty"`
	Properties     []Property        `yaml:"properties"`
	Actions        []Action          `yaml:"actions,omitempty"`
	Maintainers    []string          `yaml:"maintainers,omitempty"`
	Tags           []string          `yaml:"tags,omitempty"`
}

// Resource converts the manifest declaration into a registrable resource,
// nesting dotted property paths under mixed parents.
func (m ManifestResource) Resource() Resource {
	return Resource{
		ID:             m.ID,
		Label:          m.Label,
		LabelLocalized: m.LabelLocalized,
		NavGroup:       m.NavGroup,
		Icon:           m.Icon,
		TitleProperty:  m.TitleProperty,
		Properties:     DecorateProperties(m.Properties),
		Actions:        m.Actions,
	}
}

// LoadManifestFile reads and validates a manifest from disk.
func LoadManifestFile(path string) (ResourceManifestDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return ResourceManifestDocument{}, fmt.Errorf("admin: open manifest: %w", err)
	}
	defer f.Close()

	doc, err := ReadManifest(f)
	if err != nil {
		return ResourceManifestDocument{}, fmt.Errorf("admin: manifest %s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// ReadManifest decodes and validates a manifest from a reader.
func ReadManifest(r io.Reader) (ResourceManifestDocument, error) {
	doc, err := DecodeManifest(r)
	if err != nil {
		return ResourceManifestDocument{}, err
	}
	return doc, nil
}

// DecodeManifest decodes a manifest document, rejecting unknown fields,
// filling defaults, and validating the result.
func DecodeManifest(r io.Reader) (ResourceManifestDocument, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc ResourceManifestDocument
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return ResourceManifestDocument{}, errors.New("manifest is empty")
		}
		return ResourceManifestDocument{}, fmt.Errorf("decode manifest: %w", err)
	}
	doc.applyDefaults()
	if err := doc.Validate(); err != nil {
		return ResourceManifestDocument{}, err
	}
	return doc, nil
}

func (d *ResourceManifestDocument) applyDefaults() {
	if d.Version == "" {
		d.Version = ManifestVersion
	}
	for i := range d.Resources {
		res := &d.Resources[i]
		for j := range res.Properties {
			prop := &res.Properties[j]
			if prop.Type == "" {
				prop.Type = PropertyString
			}
			if prop.Availability == (PropertyAvailability{}) {
				prop.Availability = EverywhereAvailable()
			}
		}
	}
}

// Validate checks the structural rules a document must satisfy before its
// resources can be registered.
func (d ResourceManifestDocument) Validate() error {
	if d.Version != ManifestVersion {
		return fmt.Errorf("manifest version %q is unsupported", d.Version)
	}
	if len(d.Resources) == 0 {
		return errors.New("manifest declares no resources")
	}
	seen := make(map[string]struct{}, len(d.Resources))
	for i, res := range d.Resources {
		if res.ID == "" {
			return fmt.Errorf("resource %d is missing an id", i)
		}
		if _, ok := seen[res.ID]; ok {
			return fmt.Errorf("manifest %s duplicates resource id %q", d.Name, res.ID)
		}
		seen[res.ID] = struct{}{}
		for j, prop := range res.Properties {
			if prop.Path == "" {
				return fmt.Errorf("resource %q property %d is missing a path", res.ID, j)
			}
		}
		for j, action := range res.Actions {
			if action.Name == "" {
				return fmt.Errorf("resource %q action %d is missing a name", res.ID, j)
			}
		}
	}
	return nil
}
