package verify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cbodonnell/tictaccube/pkg/game/constants"
	"github.com/cbodonnell/tictaccube/pkg/log"
	"github.com/cbodonnell/tictaccube/pkg/queue"
	"github.com/cbodonnell/tictaccube/pkg/schedule"
)

// checkResult is posted by a check goroutine for the poller to pick up.
type checkResult struct {
	gen          uint64
	verification Verification
	err          error
}

// Poller repeatedly checks a session token until it is confirmed or the
// attempts run out. Checks run off the caller's goroutine and their results
// are applied by Update, so every state change happens where Update is called.
type Poller struct {
	scheduler   schedule.Scheduler
	checker     Checker
	results     queue.Queue
	goFn        func(func())
	token       string
	interval    time.Duration
	timeout     time.Duration
	maxAttempts int

	onConfirmed func(chatID int64)
	onBypassed  func()
	onFailed    func()

	// lost holds checks whose result could not be enqueued. Written by check
	// goroutines, drained by Update.
	lostLock sync.Mutex
	lost     []checkResult

	status   Status
	attempts int
	inFlight bool
	chatID   int64
	gen      uint64
}

type NewPollerOptions struct {
	Scheduler schedule.Scheduler
	// Checker asks the messaging service. Without one the poller bypasses verification.
	Checker Checker
	// Results carries finished checks to Update. Defaults to an in-memory queue.
	Results queue.Queue
	// Go runs a check. Defaults to starting a goroutine.
	Go func(func())
	// Token defaults to NewSessionToken.
	Token string
	// Interval defaults to constants.VerifyInterval.
	Interval time.Duration
	// Timeout defaults to constants.VerifyTimeout.
	Timeout time.Duration
	// MaxAttempts defaults to constants.VerifyMaxAttempts.
	MaxAttempts int

	OnConfirmed func(chatID int64)
	OnBypassed  func()
	OnFailed    func()
}

func NewPoller(opts NewPollerOptions) *Poller {
	p := &Poller{
		scheduler:   opts.Scheduler,
		checker:     opts.Checker,
		results:     opts.Results,
		goFn:        opts.Go,
		token:       opts.Token,
		interval:    opts.Interval,
		timeout:     opts.Timeout,
		maxAttempts: opts.MaxAttempts,
		onConfirmed: opts.OnConfirmed,
		onBypassed:  opts.OnBypassed,
		onFailed:    opts.OnFailed,
	}
	if p.results == nil {
		p.results = queue.NewInMemoryQueue(8)
	}
	if p.goFn == nil {
		p.goFn = func(fn func()) { go fn() }
	}
	if p.token == "" {
		p.token = NewSessionToken()
	}
	if p.interval <= 0 {
		p.interval = constants.VerifyInterval
	}
	if p.timeout <= 0 {
		p.timeout = constants.VerifyTimeout
	}
	if p.maxAttempts <= 0 {
		p.maxAttempts = constants.VerifyMaxAttempts
	}
	if p.onConfirmed == nil {
		p.onConfirmed = func(int64) {}
	}
	if p.onBypassed == nil {
		p.onBypassed = func() {}
	}
	if p.onFailed == nil {
		p.onFailed = func() {}
	}
	return p
}

func (p *Poller) Status() Status {
	return p.status
}

func (p *Poller) Token() string {
	return p.token
}

// Attempts returns the number of checks started since the last Start.
func (p *Poller) Attempts() int {
	return p.attempts
}

func (p *Poller) MaxAttempts() int {
	return p.maxAttempts
}

// ChatID returns the confirmed chat, or 0.
func (p *Poller) ChatID() int64 {
	return p.chatID
}

// Start begins polling from the first attempt. It does nothing once the
// session is confirmed or bypassed.
func (p *Poller) Start() {
	switch p.status {
	case StatusConfirmed, StatusBypassed:
		return
	}
	if p.checker == nil {
		log.Warn("No verification service configured, verification bypassed")
		p.status = StatusBypassed
		p.onBypassed()
		return
	}

	p.gen++
	p.status = StatusPolling
	p.attempts = 0
	p.inFlight = false
	p.results.ClearQueue()
	log.Info("Polling verification for session %s", p.token)
	p.schedulePoll()
}

// Retry starts over after a failure.
func (p *Poller) Retry() {
	if p.status != StatusFailed {
		return
	}
	p.Start()
}

// Stop abandons polling. Checks in flight are ignored when they finish.
func (p *Poller) Stop() {
	if p.status != StatusPolling {
		return
	}
	p.gen++
	p.status = StatusIdle
	p.inFlight = false
}

func (p *Poller) schedulePoll() {
	gen := p.gen
	p.scheduler.After(p.interval, func() {
		p.poll(gen)
	})
}

func (p *Poller) poll(gen uint64) {
	if gen != p.gen || p.status != StatusPolling || p.inFlight {
		return
	}
	p.attempts++
	p.inFlight = true
	log.Debug("Verification attempt %d/%d", p.attempts, p.maxAttempts)

	checker, token, timeout, results := p.checker, p.token, p.timeout, p.results
	p.goFn(func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		v, err := checker.Check(ctx, token)
		if err := results.Enqueue(checkResult{gen: gen, verification: v, err: err}); err != nil {
			log.Error("Failed to enqueue verification result: %v", err)
			p.lostLock.Lock()
			p.lost = append(p.lost, checkResult{gen: gen, err: fmt.Errorf("failed to enqueue result: %v", err)})
			p.lostLock.Unlock()
		}
	})
}

// Update applies the checks that finished since the last call.
func (p *Poller) Update() {
	p.lostLock.Lock()
	lost := p.lost
	p.lost = nil
	p.lostLock.Unlock()
	for _, res := range lost {
		p.apply(res)
	}

	items, err := p.results.ReadAllMessages()
	if err != nil {
		log.Error("Failed to read verification results: %v", err)
		return
	}
	for _, item := range items {
		res, ok := item.(checkResult)
		if !ok {
			log.Error("Unexpected verification result type: %T", item)
			continue
		}
		p.apply(res)
	}
}

func (p *Poller) apply(res checkResult) {
	if res.gen != p.gen || p.status != StatusPolling {
		return
	}
	p.inFlight = false

	switch Classify(res.verification, res.err) {
	case ResultConfirmed:
		log.Info("Session %s confirmed by chat %d", p.token, res.verification.ChatID)
		p.status = StatusConfirmed
		p.chatID = res.verification.ChatID
		p.onConfirmed(p.chatID)
		return
	case ResultError:
		log.Warn("Verification check failed: %v", res.err)
	}

	if p.attempts >= p.maxAttempts {
		log.Warn("Verification gave up after %d attempts", p.attempts)
		p.status = StatusFailed
		p.onFailed()
		return
	}
	p.schedulePoll()
}
