package section

const (
	// DefaultSection is active before the first scroll notification.
	DefaultSection = "home"
	// DefaultBias triggers a section slightly before its top edge reaches
	// the top of the viewport.
	DefaultBias = 100
)

// Section is a named, vertically bounded region of the page.
type Section struct {
	Name   string
	Offset int
	Extent int
}

// Contains reports whether pos falls within [Offset, Offset+Extent).
func (s Section) Contains(pos int) bool {
	return pos >= s.Offset && pos < s.Offset+s.Extent
}

// Layout is a measured table of sections in declaration order.
type Layout []Section

// Find returns the first section containing pos.
func (l Layout) Find(pos int) (Section, bool) {
	for _, s := range l {
		if s.Contains(pos) {
			return s, true
		}
	}
	return Section{}, false
}

// Stack builds a layout from extents laid out top to bottom starting at 0.
func Stack(names []string, extents []int) Layout {
	var (
		l   = make(Layout, 0, len(names))
		off int
	)
	for i, name := range names {
		if i >= len(extents) {
			break
		}
		l = append(l, Section{Name: name, Offset: off, Extent: extents[i]})
		off += extents[i]
	}
	return l
}

// MeasureFunc reports the offset and extent of a named region. ok is false
// when the region is not present or not laid out yet.
type MeasureFunc func(name string) (offset, extent int, ok bool)

type Tracker struct {
	names  []string
	layout Layout
	bias   int
	active string
}

type Option func(*Tracker)

func WithBias(bias int) Option {
	return func(t *Tracker) {
		t.bias = bias
	}
}

func WithInitial(name string) Option {
	return func(t *Tracker) {
		t.active = name
	}
}

// NewTracker declares the ordered section names. Nothing is measured until
// Measure is called.
func NewTracker(names []string, opts ...Option) *Tracker {
	t := &Tracker{
		names:  append([]string(nil), names...),
		bias:   DefaultBias,
		active: DefaultSection,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) Names() []string {
	return append([]string(nil), t.names...)
}

func (t *Tracker) Active() string {
	return t.active
}

func (t *Tracker) Bias() int {
	return t.bias
}

func (t *Tracker) Layout() Layout {
	return append(Layout(nil), t.layout...)
}

// Declared reports whether name is one of the tracked sections.
func (t *Tracker) Declared(name string) bool {
	for _, n := range t.names {
		if n == name {
			return true
		}
	}
	return false
}

// Measure rebuilds the cached layout table. Call it on resize or when the
// content changes, not on every scroll.
func (t *Tracker) Measure(measure MeasureFunc) {
	layout := make(Layout, 0, len(t.names))
	for _, name := range t.names {
		off, ext, ok := measure(name)
		if !ok {
			continue
		}
		layout = append(layout, Section{Name: name, Offset: off, Extent: ext})
	}
	t.layout = layout
}

// SetLayout replaces the cached table with an already measured one. Entries
// for undeclared names are dropped and declaration order is restored.
func (t *Tracker) SetLayout(l Layout) {
	byName := make(map[string]Section, len(l))
	for _, s := range l {
		if _, dup := byName[s.Name]; !dup {
			byName[s.Name] = s
		}
	}
	t.Measure(func(name string) (int, int, bool) {
		s, ok := byName[name]
		return s.Offset, s.Extent, ok
	})
}

// Scroll recomputes the active section for a scroll offset. It reports
// whether the active section changed. With no match the previous value is
// kept.
func (t *Tracker) Scroll(offset int) bool {
	s, ok := t.layout.Find(offset + t.bias)
	if !ok || s.Name == t.active {
		return false
	}
	t.active = s.Name
	return true
}

// Select makes name active right away, without waiting for any scroll.
func (t *Tracker) Select(name string) bool {
	if !t.Declared(name) {
		return false
	}
	t.active = name
	return true
}

// Target returns the offset of the top edge of name.
func (t *Tracker) Target(name string) (int, bool) {
	for _, s := range t.layout {
		if s.Name == name {
			return s.Offset, true
		}
	}
	return 0, false
}
