package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/cellui/runtime"
)

// Manager observes the same message stream as the controls of its window
// without being drawn. Implementations embed ManagerBase.
type Manager interface {
	runtime.Component
	Window() *Window

	managerBase() *ManagerBase
}

// ManagerBase implements Manager.
type ManagerBase struct {
	runtime.ComponentBase
	window *Window
}

// Window returns the window the manager is attached to.
func (m *ManagerBase) Window() *Window {
	if m == nil {
		return nil
	}
	return m.window
}

func (m *ManagerBase) managerBase() *ManagerBase { return m }

type keyBinding struct {
	key  tcell.Key
	r    rune
	mods tcell.ModMask
	fn   func()
}

func (b keyBinding) matches(k runtime.KeyData) bool {
	if b.mods != k.Mods || b.key != k.Key {
		return false
	}
	return b.key != tcell.KeyRune || b.r == k.Rune
}

// KeyBindings runs callbacks for key presses anywhere in its window,
// whichever control has the focus.
type KeyBindings struct {
	ManagerBase
	bindings []keyBinding
}

// NewKeyBindings returns an empty set of bindings.
func NewKeyBindings() *KeyBindings {
	return &KeyBindings{}
}

// Bind runs fn when key is pressed with exactly mods held.
func (k *KeyBindings) Bind(key tcell.Key, mods tcell.ModMask, fn func()) {
	if k == nil || fn == nil {
		return
	}
	k.bindings = append(k.bindings, keyBinding{key: key, mods: mods, fn: fn})
}

// BindRune runs fn when r is typed with exactly mods held.
func (k *KeyBindings) BindRune(r rune, mods tcell.ModMask, fn func()) {
	if k == nil || fn == nil {
		return
	}
	k.bindings = append(k.bindings, keyBinding{key: tcell.KeyRune, r: r, mods: mods, fn: fn})
}

// Len returns the number of bindings.
func (k *KeyBindings) Len() int {
	if k == nil {
		return 0
	}
	return len(k.bindings)
}

// OnKeyPressed runs every matching binding in the order they were bound.
func (k *KeyBindings) OnKeyPressed(d runtime.KeyData) {
	k.ManagerBase.OnKeyPressed(d)
	for _, b := range k.bindings {
		if b.matches(d) {
			b.fn()
		}
	}
}

var _ Manager = (*KeyBindings)(nil)
