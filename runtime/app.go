package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/odvcencio/cellui/backend"
)

// DefaultFrameRate is the frame rate used when AppConfig leaves it unset.
const DefaultFrameRate = 30

var (
	// ErrNoConsole is returned when an application has no console.
	ErrNoConsole = errors.New("console is required")
	// ErrNoWindow is returned when Run starts without a window.
	ErrNoWindow = errors.New("window is required")
)

// Root is the single window an Application drives.
type Root interface {
	Component
	OnDraw(target backend.Console) error
	Dispose() bool
}

// AppConfig configures an Application. Zero values select defaults.
type AppConfig struct {
	Console backend.Console
	// Input is polled once per frame. Nil disables input.
	Input     backend.InputSource
	Window    Root
	FrameRate int
	// Clock supplies frame times; defaults to time.Now.
	Clock  func() time.Time
	Logger *slog.Logger
}

// Application owns the active window and drives the update/draw loop.
type Application struct {
	console backend.Console
	input   *InputManager
	window  Root
	frame   time.Duration
	clock   func() time.Time
	logger  *slog.Logger
	queue   Queue

	lastUpdate time.Time
	updated    bool

	quitOnce sync.Once
	quit     chan struct{}

	taskCancel context.CancelFunc

	// pendingMu guards taskCtx and pendingEffects.
	pendingMu      sync.Mutex
	taskCtx        context.Context
	pendingEffects []Effect
}

// NewApplication creates an application from cfg.
func NewApplication(cfg AppConfig) (*Application, error) {
	if cfg.Console == nil {
		return nil, ErrNoConsole
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	rate := cfg.FrameRate
	if rate <= 0 {
		rate = DefaultFrameRate
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	app := &Application{
		console: cfg.Console,
		input:   NewInputManager(cfg.Input, logger),
		frame:   time.Second / time.Duration(rate),
		clock:   clock,
		logger:  logger,
		quit:    make(chan struct{}),
	}
	if cfg.Window != nil {
		app.SetWindow(cfg.Window)
	}
	return app, nil
}

// Window returns the active window.
func (a *Application) Window() Root {
	if a == nil {
		return nil
	}
	return a.window
}

// Input returns the input manager.
func (a *Application) Input() *InputManager {
	if a == nil {
		return nil
	}
	return a.input
}

// Console returns the console the application draws to.
func (a *Application) Console() backend.Console {
	if a == nil {
		return nil
	}
	return a.console
}

// FrameInterval returns the time between frames.
func (a *Application) FrameInterval() time.Duration {
	if a == nil {
		return 0
	}
	return a.frame
}

// SetWindow makes w the active window, sets it up and attaches input to
// it. The previous window is not disposed.
func (a *Application) SetWindow(w Root) {
	if a == nil {
		return
	}
	a.window = w
	a.input.Attach(w)
	if w != nil {
		Dispatch(w, SetupMsg{})
	}
}

// Post queues fn to run on the UI goroutine at the next Update.
// Safe to call from any goroutine.
func (a *Application) Post(fn func()) bool {
	if a == nil {
		return false
	}
	return a.queue.Post(fn)
}

// Spawn starts an effect with the application task context.
// Before Run starts the effect is held until it does. Safe to call from any
// goroutine.
func (a *Application) Spawn(effect Effect) {
	if a == nil || effect.Run == nil {
		return
	}
	a.pendingMu.Lock()
	ctx := a.taskCtx
	if ctx == nil {
		a.pendingEffects = append(a.pendingEffects, effect)
	}
	a.pendingMu.Unlock()
	if ctx != nil {
		a.runEffect(ctx, effect)
	}
}

// After runs fn on the UI goroutine after a delay.
func (a *Application) After(delay time.Duration, fn func()) {
	a.Spawn(After(delay, fn))
}

// Every runs fn on the UI goroutine on a fixed interval.
func (a *Application) Every(interval time.Duration, fn func(time.Time)) {
	a.Spawn(Every(interval, fn))
}

// Quit stops Run after the current frame. Safe to call more than once and
// from any goroutine.
func (a *Application) Quit() {
	if a == nil {
		return
	}
	a.quitOnce.Do(func() { close(a.quit) })
}

// Update runs posted callbacks, polls input and ticks the window.
func (a *Application) Update() {
	if a == nil {
		return
	}
	now := a.clock()
	var elapsed time.Duration
	if a.updated {
		elapsed = max(0, now.Sub(a.lastUpdate))
	}
	a.lastUpdate, a.updated = now, true

	a.queue.Flush()
	a.input.Update(elapsed)
	if a.window != nil {
		Dispatch(a.window, TickMsg{Time: now})
	}
}

// Draw renders the window and presents the console.
func (a *Application) Draw() error {
	if a == nil || a.window == nil {
		return nil
	}
	if err := a.window.OnDraw(a.console); err != nil {
		return fmt.Errorf("draw window: %w", err)
	}
	a.console.Show()
	return nil
}

// Step runs one Update and one Draw.
func (a *Application) Step() error {
	a.Update()
	return a.Draw()
}

// Run drives frames until Quit or context cancellation, then delivers
// QuitMsg and disposes the window.
func (a *Application) Run(ctx context.Context) error {
	if a == nil {
		return ErrNoConsole
	}
	if a.window == nil {
		return ErrNoWindow
	}
	if ctx == nil {
		ctx = context.Background()
	}
	taskCtx, taskCancel := context.WithCancel(ctx)
	a.taskCancel = taskCancel
	defer func() {
		taskCancel()
		a.queue.Close()
	}()

	Dispatch(a.window, SetupMsg{})
	a.startEffects(taskCtx)
	a.logger.Info("application started", "frame", a.frame)

	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()

	if err := a.Draw(); err != nil {
		a.shutdown()
		return err
	}
	for {
		select {
		case <-ctx.Done():
			a.shutdown()
			return ctx.Err()
		case <-a.quit:
			a.shutdown()
			return nil
		case <-ticker.C:
			if err := a.Step(); err != nil {
				a.shutdown()
				return err
			}
		}
	}
}

func (a *Application) shutdown() {
	if a.taskCancel != nil {
		a.taskCancel()
	}
	Dispatch(a.window, QuitMsg{})
	a.window.Dispose()
	a.logger.Info("application stopped")
}

func (a *Application) runEffect(ctx context.Context, effect Effect) {
	go effect.Run(ctx, a.queue.Post)
}

// startEffects publishes ctx and starts the held effects. Both happen under
// pendingMu, so a concurrent Spawn either lands in the held list or sees ctx.
func (a *Application) startEffects(ctx context.Context) {
	a.pendingMu.Lock()
	a.taskCtx = ctx
	effects := a.pendingEffects
	a.pendingEffects = nil
	a.pendingMu.Unlock()
	for _, effect := range effects {
		a.runEffect(ctx, effect)
	}
}
