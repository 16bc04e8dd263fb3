package observability

import (
	"context"
	"testing"
	"time"
)

type testLayoutHooks struct{ packs int }

func (h *testLayoutHooks) OnPackStart(context.Context, int)                   { h.packs++ }
func (h *testLayoutHooks) OnPackComplete(context.Context, int, time.Duration) {}

type testBoardHooks struct{ mutations int }

func (h *testBoardHooks) OnMutation(context.Context, string, string) { h.mutations++ }
func (h *testBoardHooks) OnNoop(context.Context, string, string)     {}

type testHTTPHooks struct{ requests int }

func (h *testHTTPHooks) OnRequest(context.Context, string, string) { h.requests++ }
func (h *testHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {
}

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	l := NoopLayoutHooks{}
	l.OnPackStart(ctx, 12)
	l.OnPackComplete(ctx, 12, time.Millisecond)

	b := NoopBoardHooks{}
	b.OnMutation(ctx, "reorder", "clock")
	b.OnNoop(ctx, "remove", "ghost")

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/board/tiles")
	h.OnResponse(ctx, "POST", "/board/tiles", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Layout() should return NoopLayoutHooks by default")
	}
	if _, ok := Board().(NoopBoardHooks); !ok {
		t.Error("Board() should return NoopBoardHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customLayout := &testLayoutHooks{}
	SetLayoutHooks(customLayout)
	if Layout() != customLayout {
		t.Error("SetLayoutHooks should set custom hooks")
	}

	customBoard := &testBoardHooks{}
	SetBoardHooks(customBoard)
	if Board() != customBoard {
		t.Error("SetBoardHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Reset() should restore NoopLayoutHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testLayoutHooks{}
	SetLayoutHooks(custom)
	SetLayoutHooks(nil)
	if Layout() != custom {
		t.Error("SetLayoutHooks(nil) should keep the previous hooks")
	}

	customBoard := &testBoardHooks{}
	SetBoardHooks(customBoard)
	SetBoardHooks(nil)
	if Board() != customBoard {
		t.Error("SetBoardHooks(nil) should keep the previous hooks")
	}
}

func TestHooksAreInvoked(t *testing.T) {
	Reset()
	defer Reset()

	layout := &testLayoutHooks{}
	board := &testBoardHooks{}
	SetLayoutHooks(layout)
	SetBoardHooks(board)

	ctx := context.Background()
	Layout().OnPackStart(ctx, 3)
	Board().OnMutation(ctx, "append", "clock")
	Board().OnMutation(ctx, "remove", "clock")

	if layout.packs != 1 {
		t.Errorf("pack events = %d, want 1", layout.packs)
	}
	if board.mutations != 2 {
		t.Errorf("mutation events = %d, want 2", board.mutations)
	}
}
