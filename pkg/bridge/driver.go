package bridge

import (
	"sync/atomic"
	"time"

	"github.com/teslashibe/go-valkyrie/internal/log"
	"github.com/teslashibe/go-valkyrie/pkg/ihmc"
)

// Publisher delivers assembled commands to the downstream transport.
type Publisher interface {
	PublishWholeBody(msg *ihmc.WholeBodyTrajectory) error
	PublishGoHome(msg ihmc.GoHome) error
}

// Driver polls the aggregator and status controller at a fixed rate and
// publishes whenever the derived flags allow it. In streaming mode it
// runs until stopped; in one-shot mode it publishes a single whole-body
// command once ready and returns.
type Driver struct {
	agg    *Aggregator
	status *StatusController
	pub    Publisher

	streaming bool
	rate      time.Duration
	params    ihmc.MessageParameters

	stop chan struct{}

	wholeBodyCount atomic.Uint64
	goHomeCount    atomic.Uint64
	errorCount     atomic.Uint64
	lastErrorTime  atomic.Int64
}

// NewDriver creates a driver ticking at the given rate. Typical rate is
// 100ms (10Hz), matching the upstream controller cadence.
func NewDriver(agg *Aggregator, status *StatusController, pub Publisher, streaming bool, rate time.Duration) *Driver {
	params := ihmc.DefaultParameters()
	if streaming {
		params = params.ForStreaming()
	}
	return &Driver{
		agg:       agg,
		status:    status,
		pub:       pub,
		streaming: streaming,
		rate:      rate,
		params:    params,
		stop:      make(chan struct{}),
	}
}

// Run starts the publish loop. Blocks until Stop is called, or until the
// single command has gone out in one-shot mode.
func (d *Driver) Run() {
	ticker := time.NewTicker(d.rate)
	defer ticker.Stop()

	for {
		select {
		case <-d.stop:
			return
		case <-ticker.C:
			if done := d.tick(); done {
				return
			}
		}
	}
}

// Stop halts the publish loop.
func (d *Driver) Stop() {
	close(d.stop)
}

// WholeBodyCount returns how many whole-body commands have been published.
func (d *Driver) WholeBodyCount() uint64 { return d.wholeBodyCount.Load() }

// GoHomeCount returns how many go-home commands have been published.
func (d *Driver) GoHomeCount() uint64 { return d.goHomeCount.Load() }

// tick executes one publish cycle. Returns true when the driver is done
// (one-shot command published).
func (d *Driver) tick() bool {
	if d.streaming {
		if d.agg.CanPublish() {
			d.publishWholeBody()
		}
		if d.status != nil && d.status.PublishHomeRequested() {
			d.publishGoHome()
		}
		return false
	}

	// One-shot: wait until the single pose and joint update have both
	// landed, publish once, and finish.
	if d.agg.CanPublish() && d.agg.ShouldStop() {
		d.publishWholeBody()
		log.Info("published whole-body message, all done")
		return true
	}
	return false
}

func (d *Driver) publishWholeBody() {
	q, links, err := d.agg.Snapshot()
	if err != nil {
		// CanPublish was checked, so this only races a concurrent reset.
		return
	}

	msg, err := ihmc.NewWholeBodyTrajectory(q, links, d.params)
	if err != nil {
		d.reportError("failed to assemble whole-body message", err)
		return
	}

	if err := d.pub.PublishWholeBody(msg); err != nil {
		d.reportError("failed to publish whole-body message", err)
		return
	}
	d.wholeBodyCount.Add(1)
}

func (d *Driver) publishGoHome() {
	cmds, err := d.status.DrainHomeCommands(d.params)
	if err != nil {
		// Raced another drain; nothing pending anymore.
		return
	}
	for _, cmd := range cmds {
		if err := d.pub.PublishGoHome(cmd); err != nil {
			d.reportError("failed to publish go-home message", err)
			continue
		}
		d.goHomeCount.Add(1)
	}
}

// reportError counts failures and logs at most once per five seconds to
// avoid flooding when the broker is down.
func (d *Driver) reportError(msg string, err error) {
	d.errorCount.Add(1)
	now := time.Now().UnixNano()
	last := d.lastErrorTime.Load()
	if now-last > int64(5*time.Second) && d.lastErrorTime.CompareAndSwap(last, now) {
		log.Error(msg, "error", err, "total_errors", d.errorCount.Load())
	}
}
