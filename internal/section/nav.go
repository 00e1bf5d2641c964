package section

// Nav is the navigation state owned by the top-level view: the tracked
// active section plus the collapsed-menu flag.
type Nav struct {
	tracker  *Tracker
	menuOpen bool
}

func NewNav(t *Tracker) *Nav {
	return &Nav{tracker: t}
}

func (n *Nav) Tracker() *Tracker {
	return n.tracker
}

func (n *Nav) Active() string {
	return n.tracker.Active()
}

func (n *Nav) IsActive(name string) bool {
	return n.tracker.Active() == name
}

func (n *Nav) MenuOpen() bool {
	return n.menuOpen
}

func (n *Nav) ToggleMenu() {
	n.menuOpen = !n.menuOpen
}

func (n *Nav) CloseMenu() {
	n.menuOpen = false
}

func (n *Nav) Scroll(offset int) bool {
	return n.tracker.Scroll(offset)
}

// Click handles a navigation link: the target becomes active immediately
// and the menu closes. The returned offset is where the viewport should
// scroll to; measured is false when the target has no layout yet. Unknown
// names leave the state untouched.
func (n *Nav) Click(name string) (offset int, measured bool, ok bool) {
	if !n.tracker.Select(name) {
		return 0, false, false
	}
	n.menuOpen = false
	offset, measured = n.tracker.Target(name)
	return offset, measured, true
}
