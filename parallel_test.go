package rijndael

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
)

func TestParallelConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  ParallelConfig
		wantErr bool
	}{
		{name: "disabled ignores fields", config: ParallelConfig{MaxWorkers: -5}},
		{name: "default", config: DefaultParallelConfig()},
		{name: "zero workers means NumCPU", config: ParallelConfig{Enabled: true, MinBlocksForParallel: 1}},
		{name: "negative workers", config: ParallelConfig{Enabled: true, MaxWorkers: -1, MinBlocksForParallel: 1}, wantErr: true},
		{name: "too many workers", config: ParallelConfig{Enabled: true, MaxWorkers: maxWorkers + 1, MinBlocksForParallel: 1}, wantErr: true},
		{name: "zero threshold", config: ParallelConfig{Enabled: true, MaxWorkers: 2}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestDefaultParallelConfig(t *testing.T) {
	p := DefaultParallelConfig()
	if !p.Enabled {
		t.Error("default parallel config should be enabled")
	}
	if p.MaxWorkers != runtime.NumCPU() {
		t.Errorf("MaxWorkers = %d, want %d", p.MaxWorkers, runtime.NumCPU())
	}
	if p.MinBlocksForParallel != 64 {
		t.Errorf("MinBlocksForParallel = %d, want 64", p.MinBlocksForParallel)
	}
}

func TestParallelConfig_Workers(t *testing.T) {
	tests := []struct {
		name   string
		config ParallelConfig
		blocks int
		want   int
	}{
		{name: "disabled", config: ParallelConfig{MaxWorkers: 8, MinBlocksForParallel: 1}, blocks: 100, want: 1},
		{name: "below threshold", config: ParallelConfig{Enabled: true, MaxWorkers: 8, MinBlocksForParallel: 64}, blocks: 63, want: 1},
		{name: "at threshold", config: ParallelConfig{Enabled: true, MaxWorkers: 8, MinBlocksForParallel: 64}, blocks: 64, want: 8},
		{name: "capped by blocks", config: ParallelConfig{Enabled: true, MaxWorkers: 8, MinBlocksForParallel: 1}, blocks: 3, want: 3},
		{name: "zero means NumCPU", config: ParallelConfig{Enabled: true, MinBlocksForParallel: 1}, blocks: 1 << 20, want: runtime.NumCPU()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.workers(tt.blocks); got != tt.want {
				t.Errorf("workers(%d) = %d, want %d", tt.blocks, got, tt.want)
			}
		})
	}
}

func TestEncryptBlocks_Coverage(t *testing.T) {
	// Every block must be visited exactly once whatever the split.
	for _, workers := range []int{1, 2, 3, 5, 16, 40} {
		n := 37
		src := make([]byte, n*BlockSize)
		for i := range src {
			src[i] = byte(i / BlockSize)
		}
		dst := make([]byte, len(src))

		var mu sync.Mutex
		seen := make(map[byte]int)
		fn := func(dst, src []byte) {
			mu.Lock()
			seen[src[0]]++
			mu.Unlock()
			copy(dst, src)
		}

		if err := encryptBlocks(context.Background(), dst, src, workers, fn); err != nil {
			t.Fatalf("workers=%d: encryptBlocks() failed: %v", workers, err)
		}
		if !bytes.Equal(dst, src) {
			t.Errorf("workers=%d: output blocks misplaced", workers)
		}
		for i := 0; i < n; i++ {
			if seen[byte(i)] != 1 {
				t.Errorf("workers=%d: block %d visited %d times", workers, i, seen[byte(i)])
			}
		}
	}
}

func TestEncryptBlocks_Empty(t *testing.T) {
	called := false
	err := encryptBlocks(context.Background(), nil, nil, 4, func(dst, src []byte) { called = true })
	if err != nil {
		t.Errorf("encryptBlocks() on empty input failed: %v", err)
	}
	if called {
		t.Error("block function called for empty input")
	}
}
