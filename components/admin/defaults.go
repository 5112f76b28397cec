package admin

// Built-in demo resources. They exercise every property shape the panel
// supports: nested mixed properties, arrays, references, and availability
// that differs per view.

func defaultUserProperties() *DecoratedProperties {
	return DecorateProperties([]Property{
		{Path: "email", Type: PropertyString, IsTitle: true, IsRequired: true, IsSortable: true, Position: 1, Availability: EverywhereAvailable()},
		{Path: "name", Type: PropertyString, Position: 2, Availability: EverywhereAvailable()},
		{Path: "role", Type: PropertyString, Position: 3, Availability: PropertyAvailability{List: true, Show: true, Edit: true, Filter: true}},
		{Path: "active", Type: PropertyBoolean, Position: 4, Availability: PropertyAvailability{List: true, Show: true, Edit: true, Filter: true}},
		{Path: "password", Type: PropertyPassword, Position: 5, Availability: PropertyAvailability{Edit: true}},
		{Path: "createdAt", Type: PropertyDatetime, IsSortable: true, Position: 6, Availability: PropertyAvailability{List: true, Show: true, Filter: true}},
		{Path: "meta.title", Type: PropertyString, Position: 7, Availability: PropertyAvailability{Show: true, Edit: true}},
		{Path: "meta.description", Type: PropertyTextarea, Position: 8, Availability: PropertyAvailability{Show: true, Edit: true}},
		{Path: "meta.flags", Type: PropertyKeyValue, Position: 9, Availability: PropertyAvailability{Show: true, Edit: true}},
	})
}

func defaultArticleProperties() *DecoratedProperties {
	return DecorateProperties([]Property{
		{Path: "title", Type: PropertyString, IsTitle: true, IsRequired: true, IsSortable: true, Position: 1, Availability: EverywhereAvailable()},
		{Path: "status", Type: PropertyString, Position: 2, Availability: PropertyAvailability{List: true, Show: true, Edit: true, Filter: true}},
		{Path: "author", Type: PropertyReference, Reference: "Users", Position: 3, Availability: PropertyAvailability{List: true, Show: true, Edit: true, Filter: true}},
		{Path: "tags", Type: PropertyString, IsArray: true, Position: 4, Availability: PropertyAvailability{List: true, Show: true, Edit: true}},
		{Path: "content", Type: PropertyRichtext, Position: 5, Availability: PropertyAvailability{Show: true, Edit: true}},
		{Path: "publishedAt", Type: PropertyDatetime, IsSortable: true, Position: 6, Availability: PropertyAvailability{List: true, Show: true, Filter: true}},
		{Path: "stats.views", Type: PropertyNumber, Position: 7, Availability: PropertyAvailability{Show: true}},
		{Path: "stats.likes", Type: PropertyNumber, Position: 8, Availability: PropertyAvailability{Show: true}},
	})
}

func defaultResources() []Resource {
	return []Resource{
		{
			ID:    "Users",
			Label: "Users",
			LabelLocalized: map[string]string{
				"es": "Usuarios",
			},
			NavGroup:      "directory",
			Icon:          "users",
			TitleProperty: "email",
			Properties:    defaultUserProperties(),
			Actions:       DefaultActions(),
		},
		{
			ID:    "Articles",
			Label: "Articles",
			LabelLocalized: map[string]string{
				"es": "Artículos",
			},
			NavGroup:      "content",
			Icon:          "file-text",
			TitleProperty: "title",
			Properties:    defaultArticleProperties(),
			Actions:       DefaultActions(),
		},
	}
}

// DefaultResources returns fresh copies of the built-in demo resources.
func DefaultResources() []Resource {
	return defaultResources()
}

var defaultCatalogMessages = map[string]map[string]string{
	"en": {
		"labels.directory":             "Directory",
		"labels.content":               "Content",
		"actions.bulkDelete":           "Delete selected",
		"buttons.save":                 "Save changes",
		"buttons.cancel":               "Cancel",
		"buttons.confirmRemovalMany":   "Confirm the removal of {{count}} records",
		"messages.recordCreated":       "Record created",
		"messages.recordUpdated":       "Record updated",
		"messages.recordDeleted":       "Record deleted",
		"messages.recordsDeleted":      "{{count}} records deleted",
		"messages.confirmDelete":       "Do you really want to remove this item?",
		"messages.confirmBulkDelete":   "Do you really want to remove the selected items?",
		"messages.forbidden":           "You are not allowed to do that",
		"properties.createdAt":         "Created",
		"properties.publishedAt":       "Published",
		"resources.Users.actions.edit": "Edit user",
	},
	"es": {
		"labels.directory":           "Directorio",
		"labels.content":             "Contenido",
		"actions.list":               "Listado",
		"actions.new":                "Crear",
		"actions.edit":               "Editar",
		"actions.delete":             "Eliminar",
		"actions.bulkDelete":         "Eliminar seleccionados",
		"buttons.save":               "Guardar cambios",
		"buttons.cancel":             "Cancelar",
		"messages.recordCreated":     "Registro creado",
		"messages.recordUpdated":     "Registro actualizado",
		"messages.recordDeleted":     "Registro eliminado",
		"messages.recordsDeleted":    "{{count}} registros eliminados",
		"messages.confirmDelete":     "¿Seguro que quieres eliminar este elemento?",
		"messages.confirmBulkDelete": "¿Seguro que quieres eliminar los elementos seleccionados?",
		"messages.forbidden":         "No tienes permiso para hacer eso",
		"properties.createdAt":       "Creado",
		"properties.publishedAt":     "Publicado",
	},
}

// DefaultCatalogMessages returns a copy of the built-in locale tables.
func DefaultCatalogMessages() map[string]map[string]string {
	out := make(map[string]map[string]string, len(defaultCatalogMessages))
	for locale, table := range defaultCatalogMessages {
		copied := make(map[string]string, len(table))
		for key, text := range table {
			copied[key] = text
		}
		out[locale] = copied
	}
	return out
}

// DefaultCatalog builds the built-in catalog for a locale.
func DefaultCatalog(locale string) *Catalog {
	return NewCatalog(locale, DefaultCatalogMessages())
}

var defaultSeedRecords = []CreateRecordInput{
	{
		ResourceID: "Users",
		Params: map[string]any{
			"email":            "ada@example.com",
			"name":             "Ada Lovelace",
			"role":             "admin",
			"active":           true,
			"meta.title":       "Founding admin",
			"meta.description": "First account created on the panel.",
		},
	},
	{
		ResourceID: "Users",
		Params: map[string]any{
			"email":  "grace@example.com",
			"name":   "Grace Hopper",
			"role":   "editor",
			"active": true,
		},
	},
	{
		ResourceID: "Articles",
		Params: map[string]any{
			"title":       "Welcome to the panel",
			"status":      "published",
			"author":      "ada@example.com",
			"tags":        []string{"intro", "docs"},
			"content":     "<p>Everything here is editable.</p>",
			"stats.views": 128,
			"stats.likes": 12,
		},
	},
	{
		ResourceID: "Articles",
		Params: map[string]any{
			"title":  "Draft: roadmap",
			"status": "draft",
			"author": "grace@example.com",
			"tags":   []string{"planning"},
		},
	},
}

// DefaultSeedRecords returns starter record payloads for the demo resources.
func DefaultSeedRecords() []CreateRecordInput {
	out := make([]CreateRecordInput, len(defaultSeedRecords))
	for i, input := range defaultSeedRecords {
		copied := input
		if input.Params != nil {
			params := make(map[string]any, len(input.Params))
			for key, value := range input.Params {
				params[key] = value
			}
			copied.Params = params
		}
		out[i] = copied
	}
	return out
}
