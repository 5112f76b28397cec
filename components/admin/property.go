package admin

// PropertyType identifies how the admin UI renders and validates a property.
type PropertyType string

const (
	PropertyString    PropertyType = "string"
	PropertyNumber    PropertyType = "number"
	PropertyFloat     PropertyType = "float"
	PropertyBoolean   PropertyType = "boolean"
	PropertyDate      PropertyType = "date"
	PropertyDatetime  PropertyType = "datetime"
	PropertyReference PropertyType = "reference"
	PropertyRichtext  PropertyType = "richtext"
	PropertyTextarea  PropertyType = "textarea"
	PropertyPassword  PropertyType = "password"
	PropertyCurrency  PropertyType = "currency"
	PropertyUUID      PropertyType = "uuid"
	PropertyKeyValue  PropertyType = "key-value"
	PropertyMixed     PropertyType = "mixed"
)

// PropertyAvailability controls which admin views surface a property.
type PropertyAvailability struct {
	List   bool `json:"list" yaml:"list"`
	Show   bool `json:"show" yaml:"show"`
	Edit   bool `json:"edit" yaml:"edit"`
	Filter bool `json:"filter" yaml:"filter"`
}

// EverywhereAvailable marks a property visible on every admin view.
func EverywhereAvailable() PropertyAvailability {
	return PropertyAvailability{List: true, Show: true, Edit: true, Filter: true}
}

// Property describes a single resource property for the admin UI. Path is the
// full dotted path of the property; sub-properties of a mixed property carry
// their own full paths as well, never relative segments.
type Property struct {
	Path          string               `json:"path" yaml:"path"`
	Type          PropertyType         `json:"type" yaml:"type"`
	Label         string               `json:"label,omitempty" yaml:"label,omitempty"`
	Reference     string               `json:"reference,omitempty" yaml:"reference,omitempty"`
	Component     string               `json:"component,omitempty" yaml:"component,omitempty"`
	IsTitle       bool                 `json:"is_title,omitempty" yaml:"is_title,omitempty"`
	IsID          bool                 `json:"is_id,omitempty" yaml:"is_id,omitempty"`
	IsSortable    bool                 `json:"is_sortable,omitempty" yaml:"is_sortable,omitempty"`
	IsRequired    bool                 `json:"is_required,omitempty" yaml:"is_required,omitempty"`
	IsArray       bool                 `json:"is_array,omitempty" yaml:"is_array,omitempty"`
	IsDraggable   bool                 `json:"is_draggable,omitempty" yaml:"is_draggable,omitempty"`
	IsVirtual     bool                 `json:"is_virtual,omitempty" yaml:"is_virtual,omitempty"`
	Position      int                  `json:"position,omitempty" yaml:"position,omitempty"`
	Availability  PropertyAvailability `json:"availability" yaml:"availability"`
	Props         map[string]any       `json:"props,omitempty" yaml:"props,omitempty"`
	SubProperties []*Property          `json:"sub_properties,omitempty" yaml:"sub_properties,omitempty"`
}

// DecoratedProperties is an ordered mapping from full dotted path to property.
// A mixed property appears once under its own path; its children live in
// SubProperties. The zero value is not usable, construct through
// NewDecoratedProperties or DecorateProperties.
type DecoratedProperties struct {
	keys  []string
	index map[string]*Property
}

// NewDecoratedProperties builds an ordered property set from already-nested
// properties. Later entries with a duplicate path replace earlier ones while
// keeping the original position.
func NewDecoratedProperties(props ...*Property) *DecoratedProperties {
	dp := &DecoratedProperties{index: make(map[string]*Property, len(props))}
	for _, p := range props {
		dp.Add(p)
	}
	return dp
}

// Add inserts or replaces a property keyed by its path.
func (dp *DecoratedProperties) Add(p *Property) {
	if p == nil || p.Path == "" {
		return
	}
	if _, ok := dp.index[p.Path]; !ok {
		dp.keys = append(dp.keys, p.Path)
	}
	dp.index[p.Path] = p
}

// Get returns the property stored under the exact path.
func (dp *DecoratedProperties) Get(path string) (*Property, bool) {
	if dp == nil {
		return nil, false
	}
	p, ok := dp.index[path]
	return p, ok
}

// Keys returns the property paths in decoration order.
func (dp *DecoratedProperties) Keys() []string {
	if dp == nil {
		return nil
	}
	keys := make([]string, len(dp.keys))
	copy(keys, dp.keys)
	return keys
}

// Len reports the number of top-level properties.
func (dp *DecoratedProperties) Len() int {
	if dp == nil {
		return 0
	}
	return len(dp.keys)
}

// Range walks properties in decoration order until fn returns false.
func (dp *DecoratedProperties) Range(fn func(path string, p *Property) bool) {
	if dp == nil {
		return
	}
	for _, key := range dp.keys {
		if !fn(key, dp.index[key]) {
			return
		}
	}
}

// Visible returns the properties whose availability enables the given view,
// ordered by Position then decoration order.
func (dp *DecoratedProperties) Visible(view string) []*Property {
	if dp == nil {
		return nil
	}
	var out []*Property
	for _, key := range dp.keys {
		p := dp.index[key]
		if propertyVisible(p, view) {
			out = append(out, p)
		}
	}
	sortByPosition(out)
	return out
}

func propertyVisible(p *Property, view string) bool {
	switch view {
	case "list":
		return p.Availability.List
	case "show":
		return p.Availability.Show
	case "edit":
		return p.Availability.Edit
	case "filter":
		return p.Availability.Filter
	default:
		return false
	}
}

func sortByPosition(props []*Property) {
	// Insertion sort keeps decoration order for equal positions.
	for i := 1; i < len(props); i++ {
		for j := i; j > 0 && props[j-1].Position > props[j].Position; j-- {
			props[j-1], props[j] = props[j], props[j-1]
		}
	}
}

// DecorateProperties nests flat, possibly dotted raw columns into an ordered
// property set. A dotted path such as "meta.title" is attached as a
// sub-property of a mixed "meta" parent, synthesizing the parent when the raw
// set does not declare it. When a dotted path crosses a declared non-mixed
// parent, the property is stored top-level under its own full path so exact
// lookups still find it.
func DecorateProperties(raw []Property) *DecoratedProperties {
	dp := NewDecoratedProperties()
	for i := range raw {
		p := raw[i]
		attachProperty(dp, &p)
	}
	return dp
}

func attachProperty(dp *DecoratedProperties, p *Property) {
	parts := PathParts(p.Path)
	if len(parts) < 2 {
		mergeTopLevel(dp, p)
		return
	}
	owner, ok := ensureMixedChain(dp, parts[:len(parts)-1], p)
	if !ok {
		mergeTopLevel(dp, p)
		return
	}
	attachSub(owner, p)
}

func mergeTopLevel(dp *DecoratedProperties, p *Property) {
	if existing, ok := dp.Get(p.Path); ok {
		mergeProperty(existing, p)
		return
	}
	dp.Add(p)
}

// ensureMixedChain walks the cumulative parts, synthesizing mixed parents as
// needed, and returns the deepest owner. It refuses to descend through a
// declared non-mixed property. Ancestors accumulate the availability of the
// attached child so a group surfaces wherever any of its children does, and a
// synthesized parent takes the position of the first child that created it.
func ensureMixedChain(dp *DecoratedProperties, parts []string, child *Property) (*Property, bool) {
	root, ok := dp.Get(parts[0])
	if !ok {
		root = &Property{Path: parts[0], Type: PropertyMixed, Position: child.Position}
		dp.Add(root)
	} else if root.Type != PropertyMixed {
		return nil, false
	}
	root.Availability = mergeAvailability(root.Availability, child.Availability)
	current := root
	for _, part := range parts[1:] {
		next := findSub(current, part)
		if next == nil {
			next = &Property{Path: part, Type: PropertyMixed, Position: child.Position}
			current.SubProperties = append(current.SubProperties, next)
		} else if next.Type != PropertyMixed {
			return nil, false
		}
		next.Availability = mergeAvailability(next.Availability, child.Availability)
		current = next
	}
	return current, true
}

func mergeAvailability(a, b PropertyAvailability) PropertyAvailability {
	return PropertyAvailability{
		List:   a.List || b.List,
		Show:   a.Show || b.Show,
		Edit:   a.Edit || b.Edit,
		Filter: a.Filter || b.Filter,
	}
}

func findSub(p *Property, path string) *Property {
	for _, sub := range p.SubProperties {
		if sub.Path == path {
			return sub
		}
	}
	return nil
}

func attachSub(owner, p *Property) {
	if existing := findSub(owner, p.Path); existing != nil {
		mergeProperty(existing, p)
		return
	}
	owner.SubProperties = append(owner.SubProperties, p)
}

// mergeProperty overlays src onto dst, keeping sub-properties dst accumulated
// before src was declared.
func mergeProperty(dst, src *Property) {
	subs := dst.SubProperties
	*dst = *src
	if len(dst.SubProperties) == 0 {
		dst.SubProperties = subs
		return
	}
	for _, sub := range subs {
		if findSub(dst, sub.Path) == nil {
			dst.SubProperties = append(dst.SubProperties, sub)
		}
	}
}
