package agent

import (
	"time"

	"github.com/odvcencio/cellui/geom"
)

// Snapshot captures a structured view of the current UI state.
type Snapshot struct {
	Timestamp time.Time    `json:"timestamp"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Text      string       `json:"text,omitempty"`
	Widgets   []WidgetInfo `json:"widgets,omitempty"`
	FocusedID string       `json:"focused_id,omitempty"`
	HoveredID string       `json:"hovered_id,omitempty"`
	Tooltip   string       `json:"tooltip,omitempty"`
	Focused   *WidgetInfo  `json:"focused,omitempty"`
}

// WidgetInfo describes one control of the window, bottom of the z-order
// first.
type WidgetInfo struct {
	ID        string    `json:"id"`
	Kind      string    `json:"type"`
	Label     string    `json:"label,omitempty"`
	Value     string    `json:"value,omitempty"`
	Tooltip   string    `json:"tooltip,omitempty"`
	Bounds    geom.Rect `json:"bounds"`
	Actions   []string  `json:"actions,omitempty"`
	Disabled  bool      `json:"disabled,omitempty"`
	Focusable bool      `json:"focusable,omitempty"`
	Focused   bool      `json:"focused,omitempty"`
	MouseOver bool      `json:"mouse_over,omitempty"`
	Pushed    bool      `json:"pushed,omitempty"`
}
