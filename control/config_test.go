package control_test

import (
	"testing"
	"time"

	"github.com/flowline/cueue/control"
)

func TestConfigStoreGetSet(t *testing.T) {
	cs := control.NewConfigStore(control.BenchConfig{MinSize: 1, MaxSize: 64})

	if got := cs.Get(); got.MinSize != 1 || got.MaxSize != 64 {
		t.Fatalf("Get() = %+v, want {1 64}", got)
	}

	cs.Set(control.BenchConfig{MinSize: 4, MaxSize: 256})
	if got := cs.Get(); got.MinSize != 4 || got.MaxSize != 256 {
		t.Fatalf("Get() after Set = %+v, want {4 256}", got)
	}
}

func TestConfigStoreOnReload(t *testing.T) {
	cs := control.NewConfigStore(control.BenchConfig{MinSize: 1, MaxSize: 64})

	reloaded := make(chan control.BenchConfig, 1)
	cs.OnReload(func(cfg control.BenchConfig) {
		reloaded <- cfg
	})

	cs.Set(control.BenchConfig{MinSize: 8, MaxSize: 512})

	select {
	case got := <-reloaded:
		if got.MinSize != 8 || got.MaxSize != 512 {
			t.Fatalf("listener received %+v, want {8 512}", got)
		}
	case <-time.After(time.Second):
		t.Fatal("OnReload listener was never invoked")
	}
}

func TestMetricsRegistrySetGetSnapshot(t *testing.T) {
	mr := control.NewMetricsRegistry()

	mr.Set(control.BenchMetrics{
		BytesWritten:    100,
		BytesRead:       80,
		MessagesWritten: 5,
	})

	snap := mr.GetSnapshot()
	if snap.BytesWritten != 100 || snap.BytesRead != 80 || snap.MessagesWritten != 5 {
		t.Fatalf("GetSnapshot() = %+v, want counters {100 80 5 ...}", snap)
	}
	if snap.Updated.IsZero() {
		t.Fatal("GetSnapshot().Updated was not stamped")
	}
}
