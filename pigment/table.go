package pigment

import "github.com/gdamore/tcell/v2"

// Role names the pigment a widget draws with for a given state.
type Role int

const (
	Active Role = iota
	Inactive
	Hilight
	Depressed
	Selected
	Window
	Frame
	Tooltip
	DragItem

	roleCount
)

var roleNames = [roleCount]string{
	Active:    "active",
	Inactive:  "inactive",
	Hilight:   "hilight",
	Depressed: "depressed",
	Selected:  "selected",
	Window:    "window",
	Frame:     "frame",
	Tooltip:   "tooltip",
	DragItem:  "drag-item",
}

// String returns the role name.
func (r Role) String() string {
	if r < 0 || r >= roleCount {
		return "unknown"
	}
	return roleNames[r]
}

// Roles returns every role in declaration order.
func Roles() []Role {
	roles := make([]Role, 0, roleCount)
	for r := Role(0); r < roleCount; r++ {
		roles = append(roles, r)
	}
	return roles
}

// Table holds one pigment per role. It is a value type: With returns a
// modified copy and never touches the receiver.
type Table struct {
	pigments [roleCount]Pigment
}

// DefaultTable returns the built-in theme.
func DefaultTable() Table {
	var t Table
	t.pigments[Window] = New(tcell.ColorSilver, RGB(16, 18, 24))
	t.pigments[Active] = New(tcell.ColorWhite, RGB(40, 60, 100))
	t.pigments[Inactive] = New(tcell.ColorGray, RGB(40, 40, 44))
	t.pigments[Hilight] = New(tcell.ColorWhite, RGB(70, 100, 160))
	t.pigments[Depressed] = New(RGB(16, 18, 24), RGB(150, 170, 210))
	t.pigments[Selected] = New(RGB(16, 18, 24), RGB(230, 200, 90))
	t.pigments[Frame] = New(RGB(150, 160, 180), RGB(40, 60, 100))
	t.pigments[Tooltip] = New(RGB(16, 18, 24), RGB(240, 230, 140))
	t.pigments[DragItem] = New(tcell.ColorWhite, RGB(120, 60, 120))
	return t
}

// Get returns the pigment for a role. Unknown roles yield the zero pigment.
func (t Table) Get(r Role) Pigment {
	if r < 0 || r >= roleCount {
		return Pigment{}
	}
	return t.pigments[r]
}

// With returns a copy of t with one role replaced.
func (t Table) With(r Role, p Pigment) Table {
	if r < 0 || r >= roleCount {
		return t
	}
	t.pigments[r] = p
	return t
}

// Alternatives is a sparse set of per-widget pigment overrides.
type Alternatives map[Role]Pigment

// Map resolves roles against per-widget overrides with fallback to a base table.
type Map struct {
	base Table
	alt  Alternatives
}

// NewMap builds a map over base. The alternatives are copied.
func NewMap(base Table, alt Alternatives) Map {
	m := Map{base: base}
	if len(alt) > 0 {
		m.alt = make(Alternatives, len(alt))
		for role, p := range alt {
			m.alt[role] = p
		}
	}
	return m
}

// Get returns the override for r if present, else the base pigment.
func (m Map) Get(r Role) Pigment {
	if p, ok := m.alt[r]; ok {
		return p
	}
	return m.base.Get(r)
}

// Overridden reports whether r has a per-widget override.
func (m Map) Overridden(r Role) bool {
	_, ok := m.alt[r]
	return ok
}

// Table flattens the map into a table with the overrides applied.
func (m Map) Table() Table {
	t := m.base
	for role, p := range m.alt {
		t = t.With(role, p)
	}
	return t
}

// Base returns the fallback table.
func (m Map) Base() Table {
	return m.base
}

// WithBase returns a map sharing the overrides over a new base table.
func (m Map) WithBase(base Table) Map {
	m.base = base
	return m
}

// With returns a map with one additional override.
func (m Map) With(r Role, p Pigment) Map {
	alt := make(Alternatives, len(m.alt)+1)
	for role, existing := range m.alt {
		alt[role] = existing
	}
	alt[r] = p
	m.alt = alt
	return m
}
