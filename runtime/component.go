package runtime

import (
	"errors"
	"slices"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/cellui/event"
)

var (
	// ErrScheduleExists is returned when a schedule is added twice.
	ErrScheduleExists = errors.New("schedule already added")
	// ErrNilSchedule is returned when adding a nil schedule.
	ErrNilSchedule = errors.New("nil schedule")
)

// Component receives the message stream through its hooks.
// Embed ComponentBase to get the default hooks; overrides should call the
// embedded hook before or after their own behaviour.
type Component interface {
	ID() ulid.ULID
	IsSetup() bool

	OnSettingUp()
	OnQuitting()
	OnTick(TickMsg)
	OnKeyPressed(KeyData)
	OnKeyReleased(KeyData)
	OnMouseMoved(MouseData)
	OnMouseButtonDown(MouseData)
	OnMouseButtonUp(MouseData)
	OnMouseHoverBegin(MouseData)
	OnMouseHoverEnd(MouseData)
	OnMouseDragBegin(MouseData)
	OnMouseDragEnd(MouseData)
}

// Dispatch delivers msg to the matching hook of c.
// SetupMsg is dropped once c has been set up.
func Dispatch(c Component, msg Message) {
	if c == nil || msg == nil {
		return
	}
	switch m := msg.(type) {
	case SetupMsg:
		if c.IsSetup() {
			return
		}
		c.OnSettingUp()
	case QuitMsg:
		c.OnQuitting()
	case TickMsg:
		c.OnTick(m)
	case KeyPressedMsg:
		c.OnKeyPressed(m.Key)
	case KeyReleasedMsg:
		c.OnKeyReleased(m.Key)
	case MouseMovedMsg:
		c.OnMouseMoved(m.Mouse)
	case MouseButtonDownMsg:
		c.OnMouseButtonDown(m.Mouse)
	case MouseButtonUpMsg:
		c.OnMouseButtonUp(m.Mouse)
	case HoverBeginMsg:
		c.OnMouseHoverBegin(m.Mouse)
	case HoverEndMsg:
		c.OnMouseHoverEnd(m.Mouse)
	case DragBeginMsg:
		c.OnMouseDragBegin(m.Mouse)
	case DragEndMsg:
		c.OnMouseDragEnd(m.Mouse)
	}
}

// ComponentEvents are the observable counterparts of the Component hooks.
type ComponentEvents struct {
	SettingUp       event.Event[struct{}]
	Quitting        event.Event[struct{}]
	Ticked          event.Event[TickMsg]
	KeyPressed      event.Event[KeyData]
	KeyReleased     event.Event[KeyData]
	MouseMoved      event.Event[MouseData]
	MouseButtonDown event.Event[MouseData]
	MouseButtonUp   event.Event[MouseData]
	HoverBegin      event.Event[MouseData]
	HoverEnd        event.Event[MouseData]
	DragBegin       event.Event[MouseData]
	DragEnd         event.Event[MouseData]
}

// ComponentBase implements Component. Its hooks raise the matching event
// and OnTick advances the attached schedules.
type ComponentBase struct {
	id     ulid.ULID
	setup  bool
	events ComponentEvents

	schedules     []*Schedule
	pendingAdd    []*Schedule
	pendingRemove []*Schedule
	ticking       bool

	lastTick time.Time
	ticked   bool
	uptime   time.Duration
}

// ID returns the component identity, allocated on first use.
func (c *ComponentBase) ID() ulid.ULID {
	if c == nil {
		return ulid.ULID{}
	}
	if c.id == (ulid.ULID{}) {
		c.id = ulid.Make()
	}
	return c.id
}

// IsSetup reports whether OnSettingUp has run.
func (c *ComponentBase) IsSetup() bool {
	return c != nil && c.setup
}

// Events returns the component's observable events.
func (c *ComponentBase) Events() *ComponentEvents {
	if c == nil {
		return nil
	}
	return &c.events
}

// Uptime returns the wall-clock time accumulated across ticks.
func (c *ComponentBase) Uptime() time.Duration {
	if c == nil {
		return 0
	}
	return c.uptime
}

// AddSchedule attaches s. While a tick is running the addition is deferred
// until the tick's schedules have all been advanced.
func (c *ComponentBase) AddSchedule(s *Schedule) error {
	if c == nil || s == nil {
		return ErrNilSchedule
	}
	if slices.Contains(c.schedules, s) && !slices.Contains(c.pendingRemove, s) {
		return ErrScheduleExists
	}
	if slices.Contains(c.pendingAdd, s) {
		return ErrScheduleExists
	}
	if c.ticking {
		c.pendingAdd = append(c.pendingAdd, s)
		return nil
	}
	c.schedules = append(c.schedules, s)
	return nil
}

// RemoveSchedule detaches s. Removing an absent schedule is a no-op.
func (c *ComponentBase) RemoveSchedule(s *Schedule) {
	if c == nil || s == nil {
		return
	}
	if i := slices.Index(c.pendingAdd, s); i >= 0 {
		c.pendingAdd = slices.Delete(c.pendingAdd, i, i+1)
		return
	}
	if !slices.Contains(c.schedules, s) {
		return
	}
	if c.ticking {
		if !slices.Contains(c.pendingRemove, s) {
			c.pendingRemove = append(c.pendingRemove, s)
		}
		return
	}
	c.schedules = slices.DeleteFunc(c.schedules, func(x *Schedule) bool { return x == s })
}

// Schedules returns the active schedules in insertion order.
func (c *ComponentBase) Schedules() []*Schedule {
	if c == nil {
		return nil
	}
	return slices.Clone(c.schedules)
}

// OnSettingUp marks the component as set up.
func (c *ComponentBase) OnSettingUp() {
	c.setup = true
	c.events.SettingUp.Emit(struct{}{})
}

// OnQuitting raises Quitting.
func (c *ComponentBase) OnQuitting() {
	c.events.Quitting.Emit(struct{}{})
}

// OnTick measures the time since the previous tick, raises Ticked, then
// advances every schedule in insertion order. Schedules added or removed
// meanwhile are applied afterwards: removals first, then additions.
func (c *ComponentBase) OnTick(msg TickMsg) {
	var elapsed time.Duration
	if c.ticked {
		elapsed = max(0, msg.Time.Sub(c.lastTick))
	}
	c.lastTick = msg.Time
	c.ticked = true
	c.uptime += elapsed

	c.events.Ticked.Emit(msg)

	c.ticking = true
	for _, s := range c.schedules {
		s.Update(elapsed)
	}
	c.ticking = false

	for _, s := range c.pendingRemove {
		c.schedules = slices.DeleteFunc(c.schedules, func(x *Schedule) bool { return x == s })
	}
	c.pendingRemove = nil
	c.schedules = append(c.schedules, c.pendingAdd...)
	c.pendingAdd = nil
}

// The remaining hooks only raise their event.

func (c *ComponentBase) OnKeyPressed(k KeyData) { c.events.KeyPressed.Emit(k) }
func (c *ComponentBase) OnKeyReleased(k KeyData) { c.events.KeyReleased.Emit(k) }
func (c *ComponentBase) OnMouseMoved(m MouseData) { c.events.MouseMoved.Emit(m) }
func (c *ComponentBase) OnMouseButtonDown(m MouseData) { c.events.MouseButtonDown.Emit(m) }
func (c *ComponentBase) OnMouseButtonUp(m MouseData) { c.events.MouseButtonUp.Emit(m) }
func (c *ComponentBase) OnMouseHoverBegin(m MouseData) { c.events.HoverBegin.Emit(m) }
func (c *ComponentBase) OnMouseHoverEnd(m MouseData) { c.events.HoverEnd.Emit(m) }
func (c *ComponentBase) OnMouseDragBegin(m MouseData) { c.events.DragBegin.Emit(m) }
func (c *ComponentBase) OnMouseDragEnd(m MouseData) { c.events.DragEnd.Emit(m) }

var _ Component = (*ComponentBase)(nil)
