package engine

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/buschmd967/traveling-salesman/internal/model"
)

// ControllerOptions configures a Controller.
type ControllerOptions struct {
	// RedrawInterval is the minimum time between redraw requests while
	// searching. Zero uses the manager's setting.
	RedrawInterval time.Duration
	// OnRedraw is called when the display should be refreshed. It runs on
	// the controller goroutine or the goroutine calling SetMode.
	OnRedraw func()
	Logger   logrus.FieldLogger
}

// retryInterval is how long a searching controller waits before retrying a
// step that produced no candidate, e.g. a perturbation mode with no best tour.
const retryInterval = 25 * time.Millisecond

// Controller repeats the search step of the selected mode until the mode
// changes. Idle blocks until the next transition.
type Controller struct {
	manager  *PointManager
	log      logrus.FieldLogger
	onRedraw func()
	interval time.Duration
	wake     chan struct{}

	// mu is held for each step so a transition never interleaves with one.
	mu        sync.Mutex
	mode      model.RunMode
	swapCount int
	runID     string
	runSteps  uint64
	runStart  time.Time
}

func NewController(manager *PointManager, opts ControllerOptions) *Controller {
	settings := manager.Settings()
	interval := opts.RedrawInterval
	if interval <= 0 {
		interval = settings.RedrawInterval
	}
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		log = l
	}
	return &Controller{
		manager:   manager,
		log:       log,
		onRedraw:  opts.OnRedraw,
		interval:  interval,
		wake:      make(chan struct{}, 1),
		mode:      model.ModeIdle,
		swapCount: settings.SwapCount,
	}
}

// Manager returns the point manager driven by the controller.
func (c *Controller) Manager() *PointManager {
	return c.manager
}

// Mode returns the active run mode.
func (c *Controller) Mode() model.RunMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// SwapCount returns the number of moves applied per step.
func (c *Controller) SwapCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.swapCount
}

// SetSwapCount stores n clamped to [0, 5] and returns the stored value.
func (c *Controller) SetSwapCount(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.swapCount = model.ClampSwapCount(n)
	return c.swapCount
}

// RunID returns the id of the active search run, or "" when idle.
func (c *Controller) RunID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.runID
}

// SetMode switches to mode. Every transition clears the current tour.
func (c *Controller) SetMode(mode model.RunMode) {
	c.mu.Lock()
	prev := c.mode
	if prev.Searching() {
		c.log.WithFields(logrus.Fields{
			"run_id":     c.runID,
			"mode":       prev.Key(),
			"steps":      c.runSteps,
			"best_score": c.manager.BestScore(),
			"elapsed":    time.Since(c.runStart).Round(time.Millisecond).String(),
		}).Info("search run finished")
	}
	c.mode = mode
	c.runID = ""
	c.runSteps = 0
	if mode.Searching() {
		c.runID = uuid.New().String()[:8]
		c.runStart = time.Now()
		c.log.WithFields(logrus.Fields{
			"run_id":     c.runID,
			"mode":       mode.Key(),
			"swap_count": c.swapCount,
		}).Info("search run started")
	}
	c.manager.ClearCurrent()
	c.mu.Unlock()

	select {
	case c.wake <- struct{}{}:
	default:
	}
	c.redraw()
}

// Run drives the search until ctx is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	var lastRedraw time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		searching, produced := c.step()
		if !produced {
			var retry <-chan time.Time
			if searching {
				retry = time.After(retryInterval)
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-c.wake:
			case <-retry:
			}
			continue
		}

		if now := time.Now(); now.Sub(lastRedraw) >= c.interval {
			lastRedraw = now
			c.redraw()
		}
	}
}

// step runs one search step of the active mode. It reports whether a
// search mode is active and whether the step produced a candidate.
func (c *Controller) step() (searching, produced bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.mode.Searching() {
		return false, false
	}
	if !c.manager.Step(c.mode, c.swapCount) {
		return true, false
	}
	c.runSteps++
	return true, true
}

func (c *Controller) redraw() {
	if c.onRedraw != nil {
		c.onRedraw()
	}
}
