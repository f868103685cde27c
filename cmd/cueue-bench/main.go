// Command cueue-bench drives a producer and a consumer goroutine over a
// single cueue and reports throughput and per-batch commit latency. Sending
// it SIGHUP widens the producer's message size range fourfold (and a second
// SIGHUP narrows it back), demonstrating runtime retuning without a restart.
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sort"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/eapache/queue"

	"github.com/flowline/cueue"
	"github.com/flowline/cueue/control"
)

// batchRecord tracks when a producer batch was published and the cumulative
// byte offset its bytes end at, so the consumer side can recognize the
// moment it has fully drained that batch and compute its commit latency.
type batchRecord struct {
	endOffset uint64
	started   time.Time
}

func main() {
	capacity := flag.Uint64("capacity", 1<<20, "requested queue capacity in bytes")
	duration := flag.Duration("duration", 5*time.Second, "how long to run the benchmark")
	minSize := flag.Int("min-size", 1, "minimum message size in bytes")
	maxSize := flag.Int("max-size", 4096, "maximum message size in bytes")
	reportEvery := flag.Duration("report-every", time.Second, "metrics reporting interval")
	latencyWindow := flag.Int("latency-window", 4096, "number of recent batch latencies kept for percentile reporting")
	flag.Parse()

	if *minSize <= 0 || *maxSize < *minSize {
		log.Fatalf("invalid message size range [%d, %d]", *minSize, *maxSize)
	}

	p, c, err := cueue.New(*capacity)
	if err != nil {
		log.Fatalf("cueue.New: %v", err)
	}
	log.Printf("running with effective capacity %d bytes", p.Capacity())

	cfg := control.NewConfigStore(control.BenchConfig{MinSize: *minSize, MaxSize: *maxSize})
	cfg.OnReload(func(next control.BenchConfig) {
		log.Printf("config reloaded: min-size=%d max-size=%d", next.MinSize, next.MaxSize)
	})
	go watchSighup(cfg, *minSize, *maxSize)

	metrics := control.NewMetricsRegistry()

	var bytesWritten, bytesRead, messagesWritten uint64
	pending := queue.New()
	recentLatencies := queue.New()

	done := make(chan struct{})
	stop := time.After(*duration)

	go func() {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		msg := make([]byte, *maxSize*4)
		for {
			select {
			case <-stop:
				close(done)
				if err := p.Close(); err != nil {
					log.Printf("producer close: %v", err)
				}
				return
			default:
			}

			snap := cfg.Get()
			lo, hi := snap.MinSize, snap.MaxSize
			size := lo
			if hi > lo {
				size += rng.Intn(hi - lo + 1)
			}

			buf := p.BeginWriteIfNeeded(uint64(size))
			if len(buf) < size {
				continue // queue full, caller decides whether/how to back off
			}

			start := time.Now()
			if err := p.Write(msg[:size]); err != nil {
				log.Printf("write: %v", err)
				continue
			}
			p.EndWrite()

			atomic.AddUint64(&bytesWritten, uint64(size))
			atomic.AddUint64(&messagesWritten, 1)
			pending.Add(batchRecord{
				endOffset: atomic.LoadUint64(&bytesWritten),
				started:   start,
			})
		}
	}()

	go func() {
		ticker := time.NewTicker(*reportEvery)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				drainAndReport(c, &bytesRead, pending, recentLatencies, *latencyWindow)
				report(metrics, &bytesWritten, &bytesRead, &messagesWritten, recentLatencies)
				return
			case <-ticker.C:
				drainAndReport(c, &bytesRead, pending, recentLatencies, *latencyWindow)
				report(metrics, &bytesWritten, &bytesRead, &messagesWritten, recentLatencies)
			default:
				drainAndReport(c, &bytesRead, pending, recentLatencies, *latencyWindow)
			}
		}
	}()

	<-done
	if err := c.Close(); err != nil {
		log.Printf("consumer close: %v", err)
	}
}

// watchSighup toggles the producer's message size range between its
// baseline and a 4x-widened upper bound each time the process receives
// SIGHUP, pushing the change through cfg.Set so OnReload listeners and the
// producer's next cfg.Get() both observe it.
func watchSighup(cfg *control.ConfigStore, baseMin, baseMax int) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP)
	defer signal.Stop(sigCh)

	widened := false
	for range sigCh {
		widened = !widened
		next := control.BenchConfig{MinSize: baseMin, MaxSize: baseMax}
		if widened {
			next.MaxSize = baseMax * 4
		}
		cfg.Set(next)
	}
}

// drainAndReport performs one non-blocking read pass, then matches newly
// consumed bytes against pending batch records to compute commit latencies.
func drainAndReport(c *cueue.Consumer, bytesRead *uint64, pending, recentLatencies *queue.Queue, window int) {
	buf := c.BeginRead()
	if len(buf) > 0 {
		atomic.AddUint64(bytesRead, uint64(len(buf)))
		c.EndRead()
	}

	consumed := atomic.LoadUint64(bytesRead)
	for pending.Length() > 0 {
		rec := pending.Peek().(batchRecord)
		if rec.endOffset > consumed {
			break
		}
		pending.Remove()
		recentLatencies.Add(time.Since(rec.started))
		if recentLatencies.Length() > window {
			recentLatencies.Remove()
		}
	}
}

func report(metrics *control.MetricsRegistry, bytesWritten, bytesRead, messagesWritten *uint64, recentLatencies *queue.Queue) {
	w := atomic.LoadUint64(bytesWritten)
	r := atomic.LoadUint64(bytesRead)
	n := atomic.LoadUint64(messagesWritten)
	p50, p99 := latencyPercentiles(recentLatencies)

	metrics.Set(control.BenchMetrics{
		BytesWritten:     w,
		BytesRead:        r,
		MessagesWritten:  n,
		CommitLatencyP50: p50,
		CommitLatencyP99: p99,
	})

	log.Printf("written=%d read=%d messages=%d p50=%s p99=%s", w, r, n, p50, p99)
}

// latencyPercentiles copies the current window into a sorted slice and
// reports p50/p99; the queue itself is left untouched.
func latencyPercentiles(recentLatencies *queue.Queue) (p50, p99 time.Duration) {
	n := recentLatencies.Length()
	if n == 0 {
		return 0, 0
	}
	samples := make([]time.Duration, n)
	for i := 0; i < n; i++ {
		samples[i] = recentLatencies.Get(i).(time.Duration)
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	p50 = samples[n*50/100]
	p99 = samples[minInt(n-1, n*99/100)]
	return p50, p99
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
