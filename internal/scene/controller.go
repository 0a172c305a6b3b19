// Package scene holds the game loop: Earth, obstacle spawning, collision
// counting and the game-over/restart cycle. It knows nothing about drawing;
// the host calls Tick once per frame and reads the state back.
package scene

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"earthdodge/internal/logger"
)

// Options configure a Controller. Nil collaborators are replaced by no-ops.
type Options struct {
	Rules         Rules
	Width, Height float64
	Rand          *rand.Rand
	Haptics       Haptics
	Prompter      Prompter
	Logger        logger.Logger

	// Sandbox runs without obstacles: only scaling and rotation.
	Sandbox bool
}

// Controller owns one game session at a time.
type Controller struct {
	rules         Rules
	width, height float64
	haptics       Haptics
	prompter      Prompter
	baseLog       logger.Logger
	log           logger.Logger
	sandbox       bool

	spawner   *spawner
	scheduler Scheduler
	spawnTask *Task

	state     State
	hits      int
	earth     *Earth
	obstacles []*Obstacle
	nextID    uint64
	session   string
	stats     Stats
}

func NewController(opts Options) (*Controller, error) {
	if err := opts.Rules.Validate(); err != nil {
		return nil, err
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Haptics == nil {
		opts.Haptics = nopHaptics{}
	}
	if opts.Prompter == nil {
		opts.Prompter = nopPrompter{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}
	base := opts.Logger.Named("scene")

	return &Controller{
		rules:    opts.Rules,
		width:    opts.Width,
		height:   opts.Height,
		haptics:  opts.Haptics,
		prompter: opts.Prompter,
		baseLog:  base,
		log:      base,
		sandbox:  opts.Sandbox,
		spawner: &spawner{
			rules:  opts.Rules,
			rng:    opts.Rand,
			width:  opts.Width,
			height: opts.Height,
		},
	}, nil
}

// StartSession resets everything and begins spawning. The first obstacle is
// spawned on the first tick.
func (c *Controller) StartSession() {
	c.clearObstacles()
	c.scheduler.Stop()

	c.session = uuid.NewString()
	c.log = c.baseLog.With(logger.Field{Key: "session", Value: c.session})
	c.hits = 0
	c.state = Playing
	c.stats.Sessions++
	c.stats.Hits = 0

	c.earth = newEarth(c.width/2, c.height/2, c.rules.EarthSize, c.rules.EarthSpinPeriod)

	c.spawnTask = nil
	if !c.sandbox {
		c.spawnTask = c.scheduler.Every(0, c.spawner.interval, c.spawnFromTimer)
	}

	c.log.Info("session started",
		logger.Field{Key: "sandbox", Value: c.sandbox},
		logger.Field{Key: "hit_limit", Value: c.rules.HitLimit},
	)
}

// Restart is only valid after game over.
func (c *Controller) Restart() error {
	if c.state != GameOver {
		return ErrNotGameOver
	}
	c.StartSession()
	return nil
}

// SetSandbox switches between the full game and the scale/rotate-only variant.
// It takes effect on the next StartSession.
func (c *Controller) SetSandbox(sandbox bool) {
	c.sandbox = sandbox
}

func (c *Controller) ScaleEarth(dir Direction) {
	if c.state != Playing || c.earth == nil {
		return
	}
	if c.earth.scaleBy(dir, c.rules) {
		c.log.Debug("earth scaled",
			logger.Field{Key: "direction", Value: dir},
			logger.Field{Key: "scale", Value: c.earth.scale},
		)
	}
}

// Tick advances one frame. It does nothing once the session is over or when
// dt is not positive.
func (c *Controller) Tick(dt time.Duration) {
	if c.state != Playing || c.earth == nil || dt <= 0 {
		return
	}
	c.scheduler.Advance(dt)
	c.earth.advance(dt)

	kept := c.obstacles[:0]
	for _, o := range c.obstacles {
		o.advance(dt)
		if o.exited() {
			c.stats.Dodged++
			continue
		}
		syncCollider(o.collider, o.Bounds())
		kept = append(kept, o)
	}
	clear(c.obstacles[len(kept):])
	c.obstacles = kept

	c.CheckCollisions()
}

func (c *Controller) spawnFromTimer() {
	if _, err := c.SpawnObstacle(); err != nil {
		c.log.Warn("obstacle spawn skipped", logger.Field{Key: "error", Value: err})
	}
}

// SpawnObstacle draws a random obstacle and adds it just off the right edge.
func (c *Controller) SpawnObstacle() (*Obstacle, error) {
	if c.earth == nil {
		return nil, ErrNoSpawnLane
	}
	spec, err := c.spawner.sample(c.earth.Y)
	if err != nil {
		return nil, err
	}
	return c.Spawn(spec)
}

// Spawn adds an obstacle at an explicit position. Widths outside the spawn
// range are rejected and nothing is added.
func (c *Controller) Spawn(spec ObstacleSpec) (*Obstacle, error) {
	if err := c.rules.checkWidth(spec.Width, c.width); err != nil {
		return nil, err
	}
	// Every obstacle moves at the speed of a full traversal from just off the
	// right edge to just off the left one, wherever it starts.
	endX := -spec.Width
	speed := (c.width + 1.5*spec.Width) / c.rules.TraversalDuration.Seconds()
	travel := time.Duration(math.Max(spec.X-endX, 0) / speed * float64(time.Second))

	c.nextID++
	o := &Obstacle{
		ID:     c.nextID,
		Color:  spec.Color,
		x:      spec.X,
		y:      spec.Y,
		width:  spec.Width,
		height: c.rules.ObstacleHeight,
		scale:  (c.rules.PulseMin + c.rules.PulseMax) / 2,
		travel: gween.New(float32(spec.X), float32(endX), seconds(travel), ease.Linear),
		pulse:  pulsing(c.rules.PulseMin, c.rules.PulseMax, c.rules.PulseHalfPeriod),
	}
	o.collider = newCollider(o.Bounds(), tagObstacle)
	c.obstacles = append(c.obstacles, o)
	c.stats.Spawned++

	c.log.Debug("obstacle spawned",
		logger.Field{Key: "obstacle", Value: o.ID},
		logger.Field{Key: "y", Value: spec.Y},
		logger.Field{Key: "width", Value: spec.Width},
	)
	return o, nil
}

// CheckCollisions tests obstacles in spawn order against Earth. Evaluation
// stops as soon as the hit limit is reached; later obstacles stay put.
func (c *Controller) CheckCollisions() {
	if c.earth == nil || c.hits >= c.rules.HitLimit {
		return
	}
	syncCollider(c.earth.collider, c.earth.Bounds())

	kept := c.obstacles[:0]
	for _, o := range c.obstacles {
		if c.hits >= c.rules.HitLimit || !c.earth.collider.Overlaps(o.collider) {
			kept = append(kept, o)
			continue
		}
		c.hits++
		c.stats.Hits = c.hits
		c.log.Info("obstacle hit",
			logger.Field{Key: "obstacle", Value: o.ID},
			logger.Field{Key: "hits", Value: c.hits},
		)
		if err := c.haptics.Pulse(); err != nil {
			c.log.Warn("haptic pulse failed", logger.Field{Key: "error", Value: err})
		}
	}
	clear(c.obstacles[len(kept):])
	c.obstacles = kept

	if c.hits >= c.rules.HitLimit {
		c.gameOver()
	}
}

func (c *Controller) gameOver() {
	c.state = GameOver
	c.scheduler.Stop()
	c.spawnTask = nil
	c.log.Info("game over",
		logger.Field{Key: "hits", Value: c.hits},
		logger.Field{Key: "obstacles_left", Value: len(c.obstacles)},
	)
	c.prompter.PresentRestartPrompt(func() {
		if err := c.Restart(); err != nil {
			c.log.Warn("restart ignored", logger.Field{Key: "error", Value: err})
		}
	})
}

func (c *Controller) clearObstacles() {
	clear(c.obstacles)
	c.obstacles = c.obstacles[:0]
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Hits() int { return c.hits }

func (c *Controller) Rules() Rules { return c.rules }

func (c *Controller) Session() string { return c.session }

func (c *Controller) Stats() Stats { return c.stats }

// Earth is nil until the first StartSession.
func (c *Controller) Earth() *Earth { return c.earth }

// Obstacles returns the active obstacles in spawn order. The slice is shared;
// callers must not keep it across ticks.
func (c *Controller) Obstacles() []*Obstacle { return c.obstacles }

// Spawning reports whether the spawn timer is running.
func (c *Controller) Spawning() bool {
	return c.spawnTask != nil && !c.spawnTask.Canceled()
}
