// Package ui assembles the GTK application: the panel window, the input
// controllers feeding the panel controller, and config-driven retuning.
package ui

import (
	"context"

	"github.com/jwijenbergh/puregotk/v4/gio"
	"github.com/jwijenbergh/puregotk/v4/gtk"

	"github.com/bnema/nowbar/internal/config"
	"github.com/bnema/nowbar/internal/logging"
	"github.com/bnema/nowbar/internal/panel"
	"github.com/bnema/nowbar/internal/ui/input"
	"github.com/bnema/nowbar/internal/ui/mainloop"
	"github.com/bnema/nowbar/internal/ui/window"
)

// App is the GTK application shell.
type App struct {
	gtkApp *gtk.Application

	win        *window.PanelWindow
	controller *panel.Controller
	pages      *PageModel
	ticker     *mainloop.FrameTicker
	coalescer  *mainloop.Coalescer

	pointer *input.PointerHandler
	motion  *input.MotionHandler
	scroll  *input.ScrollHandler

	configManager *config.Manager

	// Callback retention: must stay reachable by Go GC.
	activateCb func(gio.Application)
	shutdownCb func(gio.Application)
}

// NewApp creates the application shell around a loaded config manager.
func NewApp(configManager *config.Manager) *App {
	return &App{
		configManager: configManager,
		pages:         NewPageModel(),
	}
}

// Run starts the GTK application and blocks until it exits.
// Returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating GTK application")

	a.gtkApp = gtk.NewApplication("", gio.GApplicationFlagsNoneValue)
	if a.gtkApp == nil {
		log.Error().Msg("failed to create GTK application")
		return 1
	}
	defer a.gtkApp.Unref()

	a.activateCb = func(_ gio.Application) {
		a.onActivate(ctx)
	}
	a.gtkApp.ConnectActivate(&a.activateCb)

	a.shutdownCb = func(_ gio.Application) {
		a.onShutdown(ctx)
	}
	a.gtkApp.ConnectShutdown(&a.shutdownCb)

	log.Info().Msg("starting GTK main loop")
	return int(a.gtkApp.Run(int32(len(args)), args))
}

// onActivate builds the window and wires the panel controller.
func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application activated")

	win, err := window.New(ctx, a.gtkApp)
	if err != nil {
		log.Error().Err(err).Msg("failed to create panel window")
		return
	}
	a.win = win

	a.ticker = mainloop.NewFrameTicker()
	a.coalescer = mainloop.NewIdleCoalescer()

	cfg := a.configManager.Get()
	a.controller = panel.New(ctx, win, a.ticker, cfg.PanelOptions(), panel.Hooks{
		OnDragStateChanged:    a.onDragStateChanged,
		OnEdgeHiddenChanged:   a.onEdgeHiddenChanged,
		OnTriggerManualScroll: func() { a.pages.SetManualScrolling(true) },
		CurrentPage:           a.pages.Page,
		IsManualScrolling:     a.pages.ManualScrolling,
		IsInteractiveAt:       win.IsInteractiveAt,
	})

	canvas := &win.Canvas().Widget
	a.pointer = input.NewPointerHandler(ctx, a.controller)
	a.pointer.AttachTo(canvas)
	a.motion = input.NewMotionHandler(ctx, a.controller)
	a.motion.AttachTo(canvas)
	a.scroll = input.NewScrollHandler(ctx, a.controller)
	a.scroll.AttachTo(&win.Body().Widget)

	// Config file edits retune the controller live. The reload arrives on
	// the watcher goroutine; the coalescer hops it onto the GTK loop and
	// collapses editor save bursts.
	a.configManager.OnConfigChange(func(c *config.Config) {
		opts := c.PanelOptions()
		a.coalescer.Post("panel-reconfigure", func() {
			a.controller.Apply(opts)
		})
	})

	win.Show()
}

// onDragStateChanged suppresses hover-only chrome while the user is
// manipulating the window.
func (a *App) onDragStateChanged(isHovering bool) {
	if a.win == nil {
		return
	}
	if isHovering {
		a.win.Body().AddCssClass("hovering")
	} else {
		a.win.Body().RemoveCssClass("hovering")
	}
}

// onEdgeHiddenChanged dims the panel chrome while parked at an edge.
func (a *App) onEdgeHiddenChanged(isHidden bool) {
	if a.win == nil {
		return
	}
	if isHidden {
		a.win.Body().AddCssClass("edge-hidden")
	} else {
		a.win.Body().RemoveCssClass("edge-hidden")
	}
}

// onShutdown tears down in reverse construction order.
func (a *App) onShutdown(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application shutting down")

	if a.scroll != nil {
		a.scroll.Detach()
	}
	if a.motion != nil {
		a.motion.Detach()
	}
	if a.pointer != nil {
		a.pointer.Detach()
	}
	if a.ticker != nil {
		a.ticker.Stop()
	}
	if a.coalescer != nil {
		a.coalescer.Destroy()
	}
	if a.win != nil {
		a.win.Destroy()
		a.win = nil
	}
}
