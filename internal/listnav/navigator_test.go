package listnav

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNewRequiresOnEnter(t *testing.T) {
	_, err := New(Options[string]{List: fruits, Source: NewBus()})
	if !errors.Is(err, ErrNoOnEnter) {
		t.Fatalf("expected ErrNoOnEnter, got %v", err)
	}
}

func TestNewRejectsInvalidAxis(t *testing.T) {
	_, err := New(Options[string]{
		List:    fruits,
		OnEnter: func(KeyEvent, string, State, int) {},
		Axis:    "diagonal",
		Source:  NewBus(),
	})
	if !errors.Is(err, ErrInvalidAxis) {
		t.Fatalf("expected ErrInvalidAxis, got %v", err)
	}
}

func TestNewNormalizesAxis(t *testing.T) {
	h := newHarness(t, Options[string]{Axis: " Horizontal "})
	if got := h.nav.Axis(); got != AxisHorizontal {
		t.Fatalf("expected horizontal axis, got %q", got)
	}
	if got := newHarness(t, Options[string]{}).nav.Axis(); got != AxisVertical {
		t.Fatalf("expected vertical default, got %q", got)
	}
}

func TestSelectsFirstElement(t *testing.T) {
	h := newHarness(t, Options[string]{})
	snap := h.nav.Snapshot()
	assertSnapshot(t, snap, 0, 0, "first")
	if snap.Length != 4 || snap.Interactive {
		t.Fatalf("unexpected initial state: %+v", snap.State)
	}
}

func TestArrowDownSelectsNext(t *testing.T) {
	h := newHarness(t, Options[string]{})

	ev := h.press(KeyArrowDown)
	if !ev.prevented {
		t.Fatal("expected ArrowDown default to be prevented")
	}
	assertSnapshot(t, h.nav.Snapshot(), 1, 1, "second")

	h.press(KeyArrowDown)
	assertSnapshot(t, h.nav.Snapshot(), 2, 2, "third")
}

func TestArrowUpInitiallyWrapsToLast(t *testing.T) {
	h := newHarness(t, Options[string]{})

	h.press(KeyArrowUp)

	assertSnapshot(t, h.nav.Snapshot(), -1, 3, "fourth")
}

func TestArrowDownPastEndWraps(t *testing.T) {
	h := newHarness(t, Options[string]{})

	h.press(KeyArrowDown, KeyArrowDown, KeyArrowDown, KeyArrowDown, KeyArrowDown)

	assertSnapshot(t, h.nav.Snapshot(), 5, 1, "second")
}

func TestHomeAndEnd(t *testing.T) {
	h := newHarness(t, Options[string]{})

	ev := h.press(KeyEnd)
	if ev.prevented {
		t.Fatal("End should not prevent default")
	}
	snap := h.nav.Snapshot()
	assertSnapshot(t, snap, 3, 3, "fourth")
	if !snap.Interactive {
		t.Fatal("expected End to mark the state interactive")
	}

	h.press(KeyArrowDown, KeyArrowDown, KeyHome)
	assertSnapshot(t, h.nav.Snapshot(), 0, 0, "first")
}

func TestEnterCommitsSelection(t *testing.T) {
	h := newHarness(t, Options[string]{})

	h.press(KeyEnter)
	if len(h.commits) != 1 {
		t.Fatalf("expected 1 commit, got %d", len(h.commits))
	}
	want := commit{element: "first", index: 0, state: State{Cursor: 0, Length: 4, Interactive: false}}
	if h.commits[0] != want {
		t.Fatalf("commit = %+v, want %+v", h.commits[0], want)
	}

	h.press(KeyArrowDown, KeyArrowDown, KeyEnter)
	if len(h.commits) != 2 {
		t.Fatalf("expected 2 commits, got %d", len(h.commits))
	}
	want = commit{element: "third", index: 2, state: State{Cursor: 2, Length: 4, Interactive: true}}
	if h.commits[1] != want {
		t.Fatalf("commit = %+v, want %+v", h.commits[1], want)
	}
}

func TestEnterPassesTheRawEvent(t *testing.T) {
	var got KeyEvent
	h := newHarness(t, Options[string]{
		OnEnter: func(ev KeyEvent, _ string, _ State, _ int) { got = ev },
	})

	ev := h.press(KeyEnter)

	if got != ev {
		t.Fatalf("expected OnEnter to receive the pressed event")
	}
}

func TestEnterDoesNotMutateState(t *testing.T) {
	h := newHarness(t, Options[string]{})
	h.press(KeyArrowDown)
	before := h.nav.Snapshot()

	h.press(KeyEnter)

	if after := h.nav.Snapshot(); after != before {
		t.Fatalf("Enter changed state: before %+v after %+v", before, after)
	}
}

func TestEnterOnEmptyListCommitsZeroValue(t *testing.T) {
	h := newHarness(t, Options[string]{List: []string{}})

	assertSnapshot(t, h.nav.Snapshot(), 0, 0, "")
	h.press(KeyEnter)

	if len(h.commits) != 1 {
		t.Fatalf("expected 1 commit, got %d", len(h.commits))
	}
	if c := h.commits[0]; c.element != "" || c.index != 0 {
		t.Fatalf("unexpected empty-list commit: %+v", c)
	}
}

func TestOnEnterMayCallBackIntoNavigator(t *testing.T) {
	var h *harness
	h = newHarness(t, Options[string]{
		OnEnter: func(KeyEvent, string, State, int) { h.nav.Reset() },
	})
	h.press(KeyArrowDown, KeyEnter)

	assertSnapshot(t, h.nav.Snapshot(), 0, 0, "first")
}

func TestUnknownKeysAreIgnored(t *testing.T) {
	h := newHarness(t, Options[string]{})
	before := h.nav.Snapshot()

	for _, k := range []string{"Escape", "Tab", " ", ".", "PageDown", "F1"} {
		ev := h.press(k)
		if ev.prevented {
			t.Fatalf("%q should not prevent default", k)
		}
	}

	if after := h.nav.Snapshot(); after != before {
		t.Fatalf("unknown keys changed state: %+v -> %+v", before, after)
	}
	if len(h.commits) != 0 || h.sched.pending() != 0 {
		t.Fatal("unknown keys should not commit or arm the idle timer")
	}
}

// ── waitForInteractive ──────────────────────────────────────────────

func TestWaitForInteractiveHidesIndexUntilFirstMove(t *testing.T) {
	h := newHarness(t, Options[string]{WaitForInteractive: true})

	assertSnapshot(t, h.nav.Snapshot(), 0, -1, "")

	ev := h.press(KeyArrowDown)
	if !ev.prevented {
		t.Fatal("expected the activating key to prevent default")
	}
	snap := h.nav.Snapshot()
	assertSnapshot(t, snap, 0, 0, "first")
	if !snap.Interactive {
		t.Fatal("expected interactive after the first movement key")
	}

	h.press(KeyArrowDown)
	assertSnapshot(t, h.nav.Snapshot(), 1, 1, "second")
}

func TestWaitForInteractiveGatesArrowUp(t *testing.T) {
	h := newHarness(t, Options[string]{WaitForInteractive: true})

	h.press(KeyArrowUp)
	assertSnapshot(t, h.nav.Snapshot(), 0, 0, "first")

	h.press(KeyArrowUp)
	assertSnapshot(t, h.nav.Snapshot(), -1, 3, "fourth")
}

func TestWaitForInteractiveSuppressesEnter(t *testing.T) {
	h := newHarness(t, Options[string]{WaitForInteractive: true})

	h.press(KeyEnter)
	if len(h.commits) != 0 {
		t.Fatalf("expected no commit before interaction, got %+v", h.commits)
	}

	h.press(KeyArrowDown, KeyEnter)
	if len(h.commits) != 1 {
		t.Fatalf("expected 1 commit after interaction, got %d", len(h.commits))
	}
	if c := h.commits[0]; c.element != "first" || c.index != 0 || !c.state.Interactive {
		t.Fatalf("unexpected commit: %+v", c)
	}
}

func TestWaitForInteractiveHomeActivatesDirectly(t *testing.T) {
	h := newHarness(t, Options[string]{WaitForInteractive: true})

	h.press(KeyEnd)

	assertSnapshot(t, h.nav.Snapshot(), 3, 3, "fourth")
}

// ── Axis ────────────────────────────────────────────────────────────

func TestHorizontalAxisIgnoresVerticalKeys(t *testing.T) {
	h := newHarness(t, Options[string]{Axis: AxisHorizontal})
	before := h.nav.Snapshot()

	for _, k := range []string{KeyArrowUp, KeyArrowDown} {
		if ev := h.press(k); ev.prevented {
			t.Fatalf("%s should not be default-prevented on a horizontal list", k)
		}
	}
	if after := h.nav.Snapshot(); after != before {
		t.Fatalf("vertical keys changed state: %+v -> %+v", before, after)
	}

	h.press(KeyArrowRight)
	assertSnapshot(t, h.nav.Snapshot(), 1, 1, "second")
	h.press(KeyArrowLeft, KeyArrowLeft)
	assertSnapshot(t, h.nav.Snapshot(), -1, 3, "fourth")
}

func TestVerticalAxisIgnoresHorizontalKeys(t *testing.T) {
	h := newHarness(t, Options[string]{})

	ev := h.press(KeyArrowRight)
	if ev.prevented {
		t.Fatal("ArrowRight should not be default-prevented on a vertical list")
	}
	assertSnapshot(t, h.nav.Snapshot(), 0, 0, "first")
}

func TestBothAxesMove(t *testing.T) {
	h := newHarness(t, Options[string]{Axis: AxisBoth})

	h.press(KeyArrowRight, KeyArrowDown, KeyArrowLeft)

	assertSnapshot(t, h.nav.Snapshot(), 1, 1, "second")
}

// ── Type-ahead ──────────────────────────────────────────────────────

var ordinals = []string{"first", "second", "third", "fourth", "thirteenth"}

func TestTypeaheadNarrowsByPrefix(t *testing.T) {
	h := newHarness(t, Options[string]{List: ordinals})

	ev := h.press("t")
	if ev.prevented {
		t.Fatal("type-ahead keys should not prevent default")
	}
	assertSnapshot(t, h.nav.Snapshot(), 2, 2, "third")

	h.press("h", "i", "r")
	assertSnapshot(t, h.nav.Snapshot(), 2, 2, "third")
	if got := h.nav.SearchBuffer(); got != "thir" {
		t.Fatalf("expected buffer %q, got %q", "thir", got)
	}

	h.press("t")
	assertSnapshot(t, h.nav.Snapshot(), 4, 4, "thirteenth")
}

func TestTypeaheadIsCaseInsensitive(t *testing.T) {
	h := newHarness(t, Options[string]{List: []string{"Alpha", "Bravo", "Charlie"}})

	h.press("C")

	assertSnapshot(t, h.nav.Snapshot(), 2, 2, "Charlie")
	if got := h.nav.SearchBuffer(); got != "c" {
		t.Fatalf("expected folded buffer %q, got %q", "c", got)
	}
}

func TestTypeaheadIdleTimeoutStartsFreshPrefix(t *testing.T) {
	h := newHarness(t, Options[string]{List: ordinals})

	h.press("t")
	assertSnapshot(t, h.nav.Snapshot(), 2, 2, "third")

	h.sched.fire()
	if got := h.nav.SearchBuffer(); got != "" {
		t.Fatalf("expected empty buffer after idle timeout, got %q", got)
	}
	assertSnapshot(t, h.nav.Snapshot(), 2, 2, "third")

	h.press("s")
	assertSnapshot(t, h.nav.Snapshot(), 1, 1, "second")
}

func TestTypeaheadRearmsSingleTimer(t *testing.T) {
	h := newHarness(t, Options[string]{List: ordinals})

	h.press("t", "h", "i")

	if got := h.sched.pending(); got != 1 {
		t.Fatalf("expected exactly one pending idle timer, got %d", got)
	}
	if got := len(h.sched.timers); got != 3 {
		t.Fatalf("expected one timer armed per key, got %d", got)
	}
	if d := h.sched.timers[0].d; d != DefaultTypeaheadTimeout {
		t.Fatalf("expected default timeout %v, got %v", DefaultTypeaheadTimeout, d)
	}
}

func TestTypeaheadStaleTimerDoesNotClearNewBuffer(t *testing.T) {
	h := newHarness(t, Options[string]{List: ordinals})

	h.press("t")
	stale := h.sched.timers[0]
	h.press("h")

	// A timer that fired before it could be stopped still runs its callback.
	stale.f()

	if got := h.nav.SearchBuffer(); got != "th" {
		t.Fatalf("stale timer cleared the buffer: got %q", got)
	}
}

func TestTypeaheadNoMatchKeepsCursor(t *testing.T) {
	h := newHarness(t, Options[string]{List: ordinals})
	h.press(KeyArrowDown)

	h.press("z")

	assertSnapshot(t, h.nav.Snapshot(), 1, 1, "second")
	if h.sched.pending() != 1 {
		t.Fatal("expected the idle timer to be armed even without a match")
	}
}

func TestTypeaheadPreservesInteractiveByDefault(t *testing.T) {
	h := newHarness(t, Options[string]{List: ordinals, WaitForInteractive: true})

	h.press("s")

	snap := h.nav.Snapshot()
	if snap.Interactive {
		t.Fatal("type-ahead should not mark the state interactive")
	}
	assertSnapshot(t, snap, 1, -1, "")
}

func TestTypeaheadInteractsWhenConfigured(t *testing.T) {
	h := newHarness(t, Options[string]{List: ordinals, WaitForInteractive: true, TypeaheadInteracts: true})

	h.press("s")

	assertSnapshot(t, h.nav.Snapshot(), 1, 1, "second")
}

func TestTypeaheadCustomExtractValue(t *testing.T) {
	type item struct{ label string }
	items := []item{{"Apple"}, {"Banana"}, {"Blueberry"}}
	var got item
	nav, err := New(Options[item]{
		List:         items,
		OnEnter:      func(_ KeyEvent, it item, _ State, _ int) { got = it },
		ExtractValue: func(it item) string { return it.label },
		Source:       NewBus(),
		Scheduler:    &fakeScheduler{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer nav.Close()

	nav.handleKey(&testKey{key: "b"})
	nav.handleKey(&testKey{key: "l"})
	nav.handleKey(&testKey{key: KeyEnter})

	if got.label != "Blueberry" {
		t.Fatalf("expected Blueberry, got %q", got.label)
	}
}

func TestTypeaheadDefaultExtractIgnoresNonStrings(t *testing.T) {
	nav, err := New(Options[int]{
		List:      []int{10, 20, 30},
		OnEnter:   func(KeyEvent, int, State, int) {},
		Source:    NewBus(),
		Scheduler: &fakeScheduler{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer nav.Close()

	nav.handleKey(&testKey{key: "2"})

	if snap := nav.Snapshot(); snap.Cursor != 0 {
		t.Fatalf("expected no type-ahead match for ints, cursor = %d", snap.Cursor)
	}
}

// ── Lifecycle ───────────────────────────────────────────────────────

func TestSetListLengthChangeResets(t *testing.T) {
	h := newHarness(t, Options[string]{})
	h.press(KeyArrowDown, KeyArrowDown)

	h.nav.SetList([]string{"first", "second"})

	snap := h.nav.Snapshot()
	assertSnapshot(t, snap, 0, 0, "first")
	if snap.Interactive || snap.Length != 2 {
		t.Fatalf("expected reset state, got %+v", snap.State)
	}
}

func TestSetListSameLengthKeepsCursor(t *testing.T) {
	h := newHarness(t, Options[string]{})
	h.press(KeyArrowDown)

	h.nav.SetList([]string{"a", "b", "c", "d"})

	snap := h.nav.Snapshot()
	assertSnapshot(t, snap, 1, 1, "b")
	if !snap.Interactive {
		t.Fatal("content-only change should not reset interactive")
	}
}

func TestDefaultValueSeedsCursor(t *testing.T) {
	def := "third"
	h := newHarness(t, Options[string]{DefaultValue: &def})

	assertSnapshot(t, h.nav.Snapshot(), 2, 2, "third")

	h.press(KeyArrowDown)
	h.nav.Reset()
	assertSnapshot(t, h.nav.Snapshot(), 2, 2, "third")
}

func TestDefaultValueNotInListFallsBackToZero(t *testing.T) {
	def := "tenth"
	h := newHarness(t, Options[string]{DefaultValue: &def})

	assertSnapshot(t, h.nav.Snapshot(), 0, 0, "first")
}

func TestDefaultValueTracksPositionAfterLengthChange(t *testing.T) {
	def := "third"
	h := newHarness(t, Options[string]{DefaultValue: &def})

	h.nav.SetList([]string{"third", "fourth"})

	assertSnapshot(t, h.nav.Snapshot(), 0, 0, "third")
}

func TestResetAndSet(t *testing.T) {
	h := newHarness(t, Options[string]{WaitForInteractive: true})

	h.nav.Set(SetCursor(3).WithInteractive(true))
	assertSnapshot(t, h.nav.Snapshot(), 3, 3, "fourth")

	h.nav.Set(SetCursor(1))
	assertSnapshot(t, h.nav.Snapshot(), 1, 1, "second")

	h.nav.Reset()
	assertSnapshot(t, h.nav.Snapshot(), 0, -1, "")
}

func TestCloseUnsubscribesAndCancelsTimer(t *testing.T) {
	h := newHarness(t, Options[string]{List: ordinals})
	h.press("t")

	h.nav.Close()

	if n := h.bus.Len(EventKeyDown); n != 0 {
		t.Fatalf("expected no listeners after Close, got %d", n)
	}
	if h.sched.pending() != 0 {
		t.Fatal("expected the idle timer to be stopped on Close")
	}
	h.press(KeyArrowDown, KeyEnter)
	if len(h.commits) != 0 {
		t.Fatal("closed navigator should not commit")
	}
	// A callback that already escaped Stop must not touch state.
	h.sched.timers[0].f()
	h.nav.Close()
}

func TestSetSourceResubscribes(t *testing.T) {
	h := newHarness(t, Options[string]{})
	next := NewBus()

	h.nav.SetSource(next)

	if n := h.bus.Len(EventKeyDown); n != 0 {
		t.Fatalf("old source still has %d listeners", n)
	}
	if n := next.Len(EventKeyDown); n != 1 {
		t.Fatalf("new source has %d listeners, want 1", n)
	}
	h.press(KeyArrowDown)
	assertSnapshot(t, h.nav.Snapshot(), 0, 0, "first")

	next.Emit(EventKeyDown, &testKey{key: KeyArrowDown})
	assertSnapshot(t, h.nav.Snapshot(), 1, 1, "second")
}

func TestNilSourceUsesDefaultSource(t *testing.T) {
	before := DefaultSource.Len(EventKeyDown)
	nav, err := New(Options[string]{
		List:      fruits,
		OnEnter:   func(KeyEvent, string, State, int) {},
		Scheduler: &fakeScheduler{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := DefaultSource.Len(EventKeyDown); got != before+1 {
		t.Fatalf("expected DefaultSource listeners %d, got %d", before+1, got)
	}

	DefaultSource.Emit(EventKeyDown, &testKey{key: KeyArrowDown})
	if snap := nav.Snapshot(); snap.Index != 1 {
		t.Fatalf("expected index 1 via DefaultSource, got %d", snap.Index)
	}

	nav.Close()
	if got := DefaultSource.Len(EventKeyDown); got != before {
		t.Fatalf("expected DefaultSource listeners %d after Close, got %d", before, got)
	}
}

func TestLoggerReceivesActions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	h := newHarness(t, Options[string]{Logger: logger})

	h.press(KeyArrowDown)

	out := buf.String()
	if !strings.Contains(out, "action=next") || !strings.Contains(out, "cursor=1") {
		t.Fatalf("unexpected log output: %s", out)
	}
}
