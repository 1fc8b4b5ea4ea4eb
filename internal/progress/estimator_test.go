package progress

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestEstimatorAdvanceIsSequential(t *testing.T) {
	const workers = 128
	est := NewEstimator(workers, Config{NotifyInterval: time.Nanosecond})

	var wg sync.WaitGroup
	wg.Add(workers)
	start := make(chan struct{})
	results := make(chan int, workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			snap, _ := est.Advance(1)
			results <- snap.Done
		}()
	}
	close(start)
	wg.Wait()
	close(results)

	seen := make([]bool, workers)
	for r := range results {
		if r <= 0 || r > workers {
			t.Fatalf("進捗値が範囲外です: got=%d", r)
		}
		if seen[r-1] {
			t.Fatalf("進捗値が重複しました: got=%d", r)
		}
		seen[r-1] = true
	}
	for i, ok := range seen {
		if !ok {
			t.Fatalf("進捗値が欠落しています: index=%d", i+1)
		}
	}
}

func TestEstimatorETAAfterWarmup(t *testing.T) {
	clock := time.Unix(0, 0)
	est := NewEstimator(20, Config{WarmupSamples: 2, Alpha: 1})
	est.now = func() time.Time { return clock }
	est.start, est.lastUpdate = clock, clock

	clock = clock.Add(time.Second)
	snap, _ := est.Advance(1)
	if !snap.Warmup || snap.ETA != 0 {
		t.Fatalf("ウォームアップ中は ETA を出さないべきです: %+v", snap)
	}
	clock = clock.Add(time.Second)
	snap, _ = est.Advance(1)
	if snap.Warmup {
		t.Fatalf("2 件でウォームアップは終わるはずです: %+v", snap)
	}
	// 1 件/秒で残り 18 件
	if snap.ETA != 18*time.Second {
		t.Fatalf("ETA が一致しません: got=%s", snap.ETA)
	}
}

func TestEstimatorStageResets(t *testing.T) {
	est := NewEstimator(3, Config{})
	est.Advance(3)
	snap, changed := est.Stage(StageRewrite, 10)
	if !changed {
		t.Fatal("ステージ変更が報告されません")
	}
	if snap.Stage != StageRewrite || snap.Done != 0 || snap.Total != 10 {
		t.Fatalf("ステージ切替後の状態が不正です: %+v", snap)
	}
	if _, changed := est.Stage(StageRewrite, 10); changed {
		t.Fatal("同じステージでは変更扱いにしないべきです")
	}
	if done := est.Complete().Done; done != 10 {
		t.Fatalf("Complete は Done を Total に揃えるべきです: got=%d", done)
	}
}

func TestPercentClampsTo100(t *testing.T) {
	if got := percent(5, 4); got != 100 {
		t.Fatalf("5/4 は 100%% として扱うべきです: got=%d", got)
	}
	if got := percent(0, 0); got != 0 {
		t.Fatalf("0/0 は 0%% として扱うべきです: got=%d", got)
	}
}

func TestAutoObserverWritesLinesToNonTTY(t *testing.T) {
	var buf bytes.Buffer
	ob := NewAutoObserver(&buf)
	ob.Publish(Snapshot{Stage: StageRewrite, Total: 4, Done: 2, Warmup: true})
	ob.Done(Snapshot{})
	got := buf.String()
	if !strings.HasPrefix(got, "progress stage=rewrite total=4 done=2") {
		t.Fatalf("行形式の出力が期待と異なります: %q", got)
	}
	if strings.Contains(got, "\r") {
		t.Fatalf("非 TTY では制御文字を出さないべきです: %q", got)
	}
}

func TestMultiObserverSkipsNil(t *testing.T) {
	var count int
	ob := NewMultiObserver(nil, ObserverFunc(func(Snapshot) { count++ }), nil)
	ob.Publish(Snapshot{})
	if count != 1 {
		t.Fatalf("Publish 回数が不正です: got=%d", count)
	}
	if _, ok := NewMultiObserver(nil).(NoopObserver); !ok {
		t.Fatal("全て nil の場合は NoopObserver を返すべきです")
	}
}

func TestFormatETA(t *testing.T) {
	if got := formatETA(3725 * time.Second); got != "01:02:05" {
		t.Fatalf("formatETA mismatch: %q", got)
	}
}

func TestAdvancePublishDeliversInOrder(t *testing.T) {
	const workers = 64
	est := NewEstimator(workers, Config{NotifyInterval: time.Nanosecond})

	var mu sync.Mutex
	var seen []int
	obs := ObserverFunc(func(s Snapshot) {
		mu.Lock()
		seen = append(seen, s.Done)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			est.AdvancePublish(1, obs)
		}()
	}
	wg.Wait()

	if len(seen) == 0 {
		t.Fatal("no snapshot published")
	}
	for i := 1; i < len(seen); i++ {
		if seen[i] <= seen[i-1] {
			t.Fatalf("snapshots out of order: %v", seen)
		}
	}
	if seen[len(seen)-1] != workers {
		t.Fatalf("last snapshot done=%d, want %d", seen[len(seen)-1], workers)
	}
}

func TestShouldShowProgressUsesGivenWriters(t *testing.T) {
	var out, errOut bytes.Buffer
	if ShouldShowProgress(false, false, &out, &errOut) {
		t.Fatal("buffers are not terminals")
	}
	if !ShouldShowProgress(true, false, &out, &errOut) {
		t.Fatal("--progress should force progress")
	}
	if ShouldShowProgress(true, true, &out, &errOut) {
		t.Fatal("--no-progress should win")
	}
}
