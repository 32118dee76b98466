package ui

import "github.com/bnema/nowbar/internal/panel"

// PageModel is the host-side state the panel controller polls: which
// logical page the content view is showing and whether it is mid
// manual-scroll. The content view mutates it; the controller only reads.
//
// Main-loop only, so no locking.
type PageModel struct {
	page            panel.Page
	manualScrolling bool
}

// NewPageModel starts on the home page with manual scroll off.
func NewPageModel() *PageModel {
	return &PageModel{page: panel.PageHome}
}

// Page returns the current logical page.
func (m *PageModel) Page() panel.Page { return m.page }

// SetPage records a page switch.
func (m *PageModel) SetPage(p panel.Page) { m.page = p }

// ManualScrolling reports whether the content view is in manual-scroll
// mode.
func (m *PageModel) ManualScrolling() bool { return m.manualScrolling }

// SetManualScrolling flips manual-scroll mode.
func (m *PageModel) SetManualScrolling(on bool) { m.manualScrolling = on }
