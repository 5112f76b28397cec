package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/ettle/strcase"
	"gopkg.in/yaml.v3"

	admin "github.com/goliatone/go-admin/components/admin"
)

type cli struct {
	Scaffold scaffoldCmd `cmd:"" help:"Scaffold a resource entry in an admin manifest."`
	Validate validateCmd `cmd:"" help:"Validate admin manifest files."`
}

type scaffoldCmd struct {
	ID            string   `required:"" help:"Resource id (e.g. Users)."`
	Label         string   `help:"Display label (defaults to the start-cased id)."`
	NavGroup      string   `help:"Navigation group the resource is listed under."`
	Icon          string   `help:"Icon name shown next to the nav entry."`
	TitleProperty string   `help:"Property used as the record title (defaults to the first property)."`
	Property      []string `help:"Property declaration as path[:type] (use multiple --property flags). Types: string, number, float, boolean, date, datetime, reference, richtext, textarea, password, currency, uuid, key-value, mixed."`
	ManifestPath  string   `required:"" type:"path" help:"Path to the resource manifest YAML file to update."`
	Tag           []string `help:"Optional tags to include in the manifest (use multiple --tag flags)."`
	Maintainer    []string `help:"Maintainers to record in the manifest."`
	Overwrite     bool     `help:"Overwrite an existing resource entry if present."`
}

type validateCmd struct {
	Paths []string `arg:"" type:"path" help:"Manifest files to validate."`
}

func main() {
	ctx := kong.Parse(&cli{},
		kong.Description("Resource manifest utility for go-admin panels."),
		kong.UsageOnError(),
	)
	err := ctx.Run(context.Background())
	ctx.FatalIfErrorf(err)
}

func (cmd *scaffoldCmd) Run(_ context.Context) error {
	properties, err := cmd.parseProperties()
	if err != nil {
		return err
	}
	manifestPath, err := filepath.Abs(cmd.ManifestPath)
	if err != nil {
		return fmt.Errorf("adminctl: resolve manifest path: %w", err)
	}
	doc, err := loadOrInitManifest(manifestPath)
	if err != nil {
		return err
	}
	if !cmd.Overwrite {
		for _, resource := range doc.Resources {
			if resource.ID == cmd.ID {
				return fmt.Errorf("adminctl: manifest already defines resource %s (use --overwrite to replace)", cmd.ID)
			}
		}
	}

	label := cmd.Label
	if label == "" {
		label = admin.StartCase(cmd.ID)
	}
	titleProperty := cmd.TitleProperty
	if titleProperty == "" && len(properties) > 0 {
		titleProperty = properties[0].Path
	}

	entry := admin.ManifestResource{
		ID:            cmd.ID,
		Label:         label,
		NavGroup:      cmd.NavGroup,
		Icon:          cmd.Icon,
		TitleProperty: titleProperty,
		Properties:    properties,
		Maintainers:   cmd.Maintainer,
		Tags:          cmd.Tag,
	}

	if cmd.Overwrite {
		replaced := false
		for idx := range doc.Resources {
			if doc.Resources[idx].ID == cmd.ID {
				doc.Resources[idx] = entry
				replaced = true
				break
			}
		}
		if !replaced {
			doc.Resources = append(doc.Resources, entry)
		}
	} else {
		doc.Resources = append(doc.Resources, entry)
	}

	sort.Slice(doc.Resources, func(i, j int) bool {
		return doc.Resources[i].ID < doc.Resources[j].ID
	})

	if err := doc.Validate(); err != nil {
		return fmt.Errorf("adminctl: manifest would be invalid: %w", err)
	}
	if err := writeManifest(manifestPath, doc); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Added %s to %s (%d properties)\n", cmd.ID, manifestPath, len(properties))
	return nil
}

// parseProperties expands --property path[:type] declarations. An omitted
// type falls back to string, matching manifest decoding defaults.
func (cmd *scaffoldCmd) parseProperties() ([]admin.Property, error) {
	if len(cmd.Property) == 0 {
		return nil, errors.New("adminctl: at least one --property is required")
	}
	properties := make([]admin.Property, 0, len(cmd.Property))
	seen := make(map[string]struct{}, len(cmd.Property))
	for position, declaration := range cmd.Property {
		path, typeName, _ := strings.Cut(strings.TrimSpace(declaration), ":")
		if path == "" {
			return nil, fmt.Errorf("adminctl: property declaration %q is missing a path", declaration)
		}
		if _, ok := seen[path]; ok {
			return nil, fmt.Errorf("adminctl: property %s declared twice", path)
		}
		seen[path] = struct{}{}
		propertyType := admin.PropertyType(typeName)
		if typeName == "" {
			propertyType = admin.PropertyString
		} else if !knownPropertyType(propertyType) {
			return nil, fmt.Errorf("adminctl: property %s has unknown type %q", path, typeName)
		}
		segments := strings.Split(path, ".")
		properties = append(properties, admin.Property{
			Path:         path,
			Type:         propertyType,
			Label:        strcase.ToCase(segments[len(segments)-1], strcase.TitleCase, ' '),
			Position:     position + 1,
			Availability: admin.EverywhereAvailable(),
		})
	}
	return properties, nil
}

func knownPropertyType(t admin.PropertyType) bool {
	switch t {
	case admin.PropertyString, admin.PropertyNumber, admin.PropertyFloat,
		admin.PropertyBoolean, admin.PropertyDate, admin.PropertyDatetime,
		admin.PropertyReference, admin.PropertyRichtext, admin.PropertyTextarea,
		admin.PropertyPassword, admin.PropertyCurrency, admin.PropertyUUID,
		admin.PropertyKeyValue, admin.PropertyMixed:
		return true
	}
	return false
}

func loadOrInitManifest(path string) (admin.ResourceManifestDocument, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return admin.ResourceManifestDocument{
				Version: admin.ManifestVersion,
				Name:    manifestName(path),
				Source:  path,
			}, nil
		}
		return admin.ResourceManifestDocument{}, fmt.Errorf("adminctl: stat manifest: %w", err)
	}
	return admin.LoadManifestFile(path)
}

func manifestName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func writeManifest(path string, doc admin.ResourceManifestDocument) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("adminctl: mkdir %s: %w", filepath.Dir(path), err)
	}
	file, err := os.Create(path) //nolint:gosec
	if err != nil {
		return fmt.Errorf("adminctl: create manifest %s: %w", path, err)
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	defer encoder.Close()
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("adminctl: write manifest: %w", err)
	}
	return nil
}

func (cmd *validateCmd) Run(_ context.Context) error {
	var errs []error
	for _, path := range cmd.Paths {
		doc, err := admin.LoadManifestFile(path)
		if err != nil {
			errs = append(errs, err)
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
			continue
		}
		properties := 0
		for _, resource := range doc.Resources {
			properties += len(resource.Properties)
		}
		fmt.Fprintf(os.Stdout, "✓ %s: %d resources, %d properties\n", path, len(doc.Resources), properties)
	}
	return errors.Join(errs...)
}
