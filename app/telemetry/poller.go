// Package telemetry polls the local REST interface of a running racing
// simulator and keeps the latest decoded payloads in a snapshot store.
// Simulators are discovered by process name; each detected session is polled
// until the sim stops responding, then the store resets to disconnected.
package telemetry

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater"
	"github.com/go-pkgz/repeater/strategy"
	"github.com/go-pkgz/syncs"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/detector.go -pkg mocks -skip-ensure -fmt goimports . Detector

// Fetcher pulls one REST resource from the simulator.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (any, error)
}

// Detector reports the running simulator, if any.
type Detector interface {
	Detect(ctx context.Context) (SimConfig, bool)
}

// sessions end after this many poll cycles with every endpoint failing
const disconnectAfter = 3

// Poller keeps the snapshot store in sync with the running simulator. It
// alternates between process detection and endpoint polling, one session at
// a time.
type Poller struct {
	Store        *Store
	Detector     Detector
	Fetcher      Fetcher       // optional, overrides the per-sim REST client
	Interval     time.Duration // delay between poll cycles, default 1s
	DetectEvery  time.Duration // process scan interval while disconnected, default 5s
	Concurrency  int           // parallel endpoint fetches per cycle, default 4
	MaxRetries   int           // connection attempts per endpoint on session start, default 3
	RetryDelay   time.Duration // delay between connection attempts, default 1s
	Timeout      time.Duration // per-request budget, default 2s
	OnConnect    func(sim SimConfig)
	OnDisconnect func(sim SimConfig)
}

// Run blocks until ctx is done, detecting simulators and polling the detected
// one. Always returns ctx.Err().
func (p *Poller) Run(ctx context.Context) error {
	p.setDefaults()
	log.Printf("[INFO] telemetry poller started, interval %v", p.Interval)
	for {
		sim, ok := p.Detector.Detect(ctx)
		if !ok {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.DetectEvery):
			}
			continue
		}

		log.Printf("[INFO] %s detected, polling %d endpoints on port %d", sim.Name, len(sim.Endpoints), sim.Port)
		p.Store.Connect(sim.Name)
		if p.OnConnect != nil {
			p.OnConnect(sim)
		}

		p.pollSession(ctx, sim, p.fetcherFor(sim))

		p.Store.Reset()
		if p.OnDisconnect != nil {
			p.OnDisconnect(sim)
		}
		log.Printf("[INFO] %s session ended", sim.Name)

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (p *Poller) setDefaults() {
	if p.Interval <= 0 {
		p.Interval = time.Second
	}
	if p.DetectEvery <= 0 {
		p.DetectEvery = 5 * time.Second
	}
	if p.Concurrency <= 0 {
		p.Concurrency = 4
	}
	if p.MaxRetries <= 0 {
		p.MaxRetries = 3
	}
	if p.RetryDelay <= 0 {
		p.RetryDelay = time.Second
	}
	if p.Timeout <= 0 {
		p.Timeout = 2 * time.Second
	}
}

func (p *Poller) fetcherFor(sim SimConfig) Fetcher {
	if p.Fetcher != nil {
		return p.Fetcher
	}
	return NewClient(sim.Port, p.Timeout)
}

// pollSession fetches endpoints on the interval until the sim stops replying
// or ctx ends.
func (p *Poller) pollSession(ctx context.Context, sim SimConfig, f Fetcher) {
	endpoints := p.probe(ctx, sim, f)
	if len(endpoints) == 0 {
		log.Printf("[WARN] no usable endpoints on %s", sim.Name)
		return
	}

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	misses := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if p.cycle(ctx, endpoints, f) == 0 {
			misses++
			if misses >= disconnectAfter {
				log.Printf("[INFO] %s stopped responding after %d cycles", sim.Name, misses)
				return
			}
			continue
		}
		misses = 0
	}
}

// probe runs the first pass with the retry budget and drops endpoints the sim
// does not serve, so steady-state cycles stay quiet.
func (p *Poller) probe(ctx context.Context, sim SimConfig, f Fetcher) []Endpoint {
	var mu sync.Mutex
	usable := make([]Endpoint, 0, len(sim.Endpoints))

	gr := syncs.NewSizedGroup(p.Concurrency, syncs.Context(ctx))
	for _, ep := range sim.Endpoints {
		gr.Go(func(ctx context.Context) {
			val, err := p.fetchRetry(ctx, f, ep)
			if err != nil {
				log.Printf("[INFO] endpoint %s unavailable on %s, disabled for this session", ep.Path, sim.Name)
				return
			}
			p.Store.Set(ep.Key, val)
			mu.Lock()
			usable = append(usable, ep)
			mu.Unlock()
		})
	}
	gr.Wait()
	return usable
}

// cycle fetches every endpoint once and returns the number of successes.
func (p *Poller) cycle(ctx context.Context, endpoints []Endpoint, f Fetcher) int {
	var okCount atomic.Int32
	gr := syncs.NewSizedGroup(p.Concurrency, syncs.Context(ctx))
	for _, ep := range endpoints {
		gr.Go(func(ctx context.Context) {
			val, err := f.Fetch(ctx, ep.Path)
			if err != nil {
				log.Printf("[DEBUG] fetch %s failed: %v", ep.Path, err)
				return
			}
			p.Store.Set(ep.Key, val)
			okCount.Add(1)
		})
	}
	gr.Wait()
	return int(okCount.Load())
}

// fetchRetry fetches one endpoint with the connection attempt budget.
func (p *Poller) fetchRetry(ctx context.Context, f Fetcher, ep Endpoint) (any, error) {
	var res any
	attempt := 0
	rep := repeater.New(&strategy.FixedDelay{Repeats: p.MaxRetries, Delay: p.RetryDelay})
	err := rep.Do(ctx, func() error {
		attempt++
		v, err := f.Fetch(ctx, ep.Path)
		if err != nil {
			log.Printf("[DEBUG] fetch %s: %v (%d/%d retries left)", ep.Path, err, p.MaxRetries-attempt, p.MaxRetries)
			return err
		}
		res = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
