package progress

import (
	"math"
	"sync"
	"time"
)

type Stage string

const (
	StageList    Stage = "list"
	StageRewrite Stage = "rewrite"
)

type Snapshot struct {
	Stage     Stage         `json:"stage"`
	Total     int           `json:"total"`
	Done      int           `json:"done"`
	Remaining int           `json:"remaining"`
	Rate      float64       `json:"rate_per_sec"`
	ETA       time.Duration `json:"eta"`
	Warmup    bool          `json:"warmup"`
	Elapsed   time.Duration `json:"elapsed"`
}

type Config struct {
	Alpha          float64
	WarmupSamples  int
	NotifyInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		Alpha:          0.2,
		WarmupSamples:  8,
		NotifyInterval: 200 * time.Millisecond,
	}
}

// Estimator tracks completed files and smooths the per-second rate with an
// exponential moving average. Safe for concurrent use.
type Estimator struct {
	mu         sync.Mutex
	cfg        Config
	now        func() time.Time
	start      time.Time
	lastUpdate time.Time
	lastNotify time.Time
	stage      Stage
	total      int
	done       int
	ema        float64
}

func NewEstimator(total int, cfg Config) *Estimator {
	base := DefaultConfig()
	if cfg.Alpha > 0 && cfg.Alpha <= 1 {
		base.Alpha = cfg.Alpha
	}
	if cfg.WarmupSamples > 0 {
		base.WarmupSamples = cfg.WarmupSamples
	}
	if cfg.NotifyInterval > 0 {
		base.NotifyInterval = cfg.NotifyInterval
	}
	e := &Estimator{cfg: base, now: time.Now, stage: StageList, total: total}
	e.start = e.now()
	e.lastUpdate = e.start
	return e
}

// Stage switches to a new stage with a fresh total. It reports whether the
// stage changed.
func (e *Estimator) Stage(stage Stage, total int) (Snapshot, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()
	if stage == e.stage {
		return e.snapshotLocked(now), false
	}
	e.stage = stage
	e.total = total
	e.done = 0
	e.ema = 0
	e.lastUpdate = now
	e.lastNotify = now
	return e.snapshotLocked(now), true
}

// Advance records delta completed units. The bool is true when observers
// should be notified.
func (e *Estimator) Advance(delta int) (Snapshot, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.advanceLocked(delta)
}

// AdvancePublish is Advance followed by obs.Publish when due. Publishing
// happens under the estimator lock so observers see Done grow monotonically.
func (e *Estimator) AdvancePublish(delta int, obs Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if snap, notify := e.advanceLocked(delta); notify && obs != nil {
		obs.Publish(snap)
	}
}

func (e *Estimator) advanceLocked(delta int) (Snapshot, bool) {
	now := e.now()
	if delta <= 0 {
		return e.snapshotLocked(now), false
	}
	if now.Before(e.lastUpdate) {
		now = e.lastUpdate
	}
	dt := now.Sub(e.lastUpdate).Seconds()
	if dt <= 0 {
		dt = 1e-6
	}
	e.done += delta
	instant := float64(delta) / dt
	if math.IsNaN(instant) || math.IsInf(instant, 0) {
		instant = 0
	}
	if e.ema == 0 {
		e.ema = instant
	} else {
		e.ema = e.cfg.Alpha*instant + (1-e.cfg.Alpha)*e.ema
	}
	e.lastUpdate = now
	snap := e.snapshotLocked(now)
	notify := now.Sub(e.lastNotify) >= e.cfg.NotifyInterval || snap.Remaining == 0
	if notify {
		e.lastNotify = now
	}
	return snap, notify
}

func (e *Estimator) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked(e.now())
}

func (e *Estimator) Complete() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.done < e.total {
		e.done = e.total
	}
	return e.snapshotLocked(e.now())
}

func (e *Estimator) snapshotLocked(now time.Time) Snapshot {
	remain := e.total - e.done
	if remain < 0 {
		remain = 0
	}
	warm := e.done < e.cfg.WarmupSamples
	var eta time.Duration
	if !warm && remain > 0 {
		eta = durationFrom(float64(remain), e.ema)
	}
	return Snapshot{
		Stage:     e.stage,
		Total:     e.total,
		Done:      e.done,
		Remaining: remain,
		Rate:      e.ema,
		ETA:       eta,
		Warmup:    warm,
		Elapsed:   now.Sub(e.start),
	}
}

func durationFrom(count, rate float64) time.Duration {
	if rate <= 0 {
		return 0
	}
	seconds := count / rate
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return 0
	}
	if seconds > float64(math.MaxInt64/int64(time.Second)) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(seconds * float64(time.Second))
}
