package setting

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitwall-app/pitwall/app/jsonfile"
	"github.com/pitwall-app/pitwall/app/setting/mocks"
	"github.com/pitwall-app/pitwall/app/setting/request"
)

func okFileOps() *mocks.FileOpsMock {
	return &mocks.FileOpsMock{
		SaveFunc:          func(map[string]any, string, string) error { return nil },
		VerifyFunc:        func(map[string]any, string, string) error { return nil },
		CreateBackupFunc:  func(string, string) error { return nil },
		RestoreBackupFunc: func(string, string) error { return nil },
		DeleteBackupFunc:  func(string, string) error { return nil },
	}
}

func staticSource(data map[string]any) func() map[string]any {
	return func() map[string]any { return data }
}

func waitDrained(t *testing.T, e *Engine) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, e.Wait(ctx))
}

func TestEngine_SaveImmediate(t *testing.T) {
	fo := okFileOps()
	e := NewEngine(Params{FileOps: fo})
	require.NoError(t, e.Register(Setting, "race.json", "/presets", staticSource(map[string]any{"k": "v"})))

	e.Save(Setting, 0)
	waitDrained(t, e)

	assert.Len(t, fo.CreateBackupCalls(), 1, "backup made before write")
	require.Len(t, fo.SaveCalls(), 1)
	assert.Equal(t, "race.json", fo.SaveCalls()[0].Name)
	assert.Equal(t, "/presets", fo.SaveCalls()[0].Dir)
	assert.Equal(t, "v", fo.SaveCalls()[0].Data["k"])
	assert.Len(t, fo.VerifyCalls(), 1)
	assert.Empty(t, fo.RestoreBackupCalls(), "no restore on success")
	assert.Len(t, fo.DeleteBackupCalls(), 1, "backup cleaned up")

	assert.False(t, e.Saving())
	st := e.Status()
	assert.False(t, st.Saving)
	assert.Empty(t, st.Queued)
}

func TestEngine_Coalescing(t *testing.T) {
	fo := okFileOps()
	e := NewEngine(Params{FileOps: fo})

	var mu sync.Mutex
	edits := 0
	require.NoError(t, e.Register(Setting, "race.json", "", func() map[string]any {
		mu.Lock()
		defer mu.Unlock()
		return map[string]any{"edits": edits}
	}))

	for i := 1; i <= 5; i++ {
		mu.Lock()
		edits = i
		mu.Unlock()
		e.Save(Setting, 300*time.Millisecond)
	}
	waitDrained(t, e)

	require.Len(t, fo.SaveCalls(), 1, "burst coalesces into one write")
	assert.Equal(t, 5, fo.SaveCalls()[0].Data["edits"], "state current at write time wins")
}

func TestEngine_SerializesDistinctCategories(t *testing.T) {
	fo := okFileOps()
	var depth int32
	fo.SaveFunc = func(map[string]any, string, string) error {
		if atomic.AddInt32(&depth, 1) != 1 {
			t.Error("overlapping writes detected")
		}
		time.Sleep(20 * time.Millisecond) // hold the write so overlap would show
		atomic.AddInt32(&depth, -1)
		return nil
	}

	e := NewEngine(Params{FileOps: fo})
	require.NoError(t, e.Register(Config, "config.json", "", staticSource(map[string]any{})))
	require.NoError(t, e.Register(Classes, "classes.json", "", staticSource(map[string]any{})))

	e.Save(Config, 50*time.Millisecond)
	e.Save(Classes, 50*time.Millisecond)
	waitDrained(t, e)

	require.Len(t, fo.SaveCalls(), 2)
	assert.Equal(t, "config.json", fo.SaveCalls()[0].Name, "first requested writes first")
	assert.Equal(t, "classes.json", fo.SaveCalls()[1].Name)
}

func TestEngine_DrainsQueueToEmpty(t *testing.T) {
	fo := okFileOps()
	e := NewEngine(Params{FileOps: fo})
	require.NoError(t, e.Register(Config, "config.json", "", staticSource(map[string]any{})))
	require.NoError(t, e.Register(Setting, "race.json", "", staticSource(map[string]any{})))
	require.NoError(t, e.Register(Classes, "classes.json", "", staticSource(map[string]any{})))

	e.Save(Config, 0)
	e.Save(Setting, 0)
	e.Save(Classes, 0)
	waitDrained(t, e)

	require.Len(t, fo.SaveCalls(), 3)
	assert.Equal(t, "config.json", fo.SaveCalls()[0].Name)
	assert.Equal(t, "race.json", fo.SaveCalls()[1].Name)
	assert.Equal(t, "classes.json", fo.SaveCalls()[2].Name)

	assert.False(t, e.Saving(), "worker gone after drain")
	assert.Empty(t, e.Status().Queued)
}

func TestEngine_DebounceExtension(t *testing.T) {
	fo := okFileOps()
	wrote := make(chan time.Time, 1)
	fo.SaveFunc = func(map[string]any, string, string) error {
		select {
		case wrote <- time.Now():
		default:
		}
		return nil
	}

	e := NewEngine(Params{FileOps: fo})
	require.NoError(t, e.Register(Setting, "race.json", "", staticSource(map[string]any{})))

	start := time.Now()
	e.Save(Setting, 200*time.Millisecond)
	time.Sleep(120 * time.Millisecond)
	e.Save(Setting, 200*time.Millisecond) // re-arms the window
	waitDrained(t, e)

	require.Len(t, fo.SaveCalls(), 1)
	wroteAt := <-wrote
	assert.GreaterOrEqual(t, wroteAt.Sub(start), 320*time.Millisecond,
		"flush time measured from the latest request, not the first")
}

func TestEngine_ZeroDebounceFlushesPending(t *testing.T) {
	fo := okFileOps()
	e := NewEngine(Params{FileOps: fo})
	require.NoError(t, e.Register(Setting, "race.json", "", staticSource(map[string]any{})))

	start := time.Now()
	e.Save(Setting, 5*time.Second)
	e.Save(Setting, 0) // overwrites the pending window
	waitDrained(t, e)

	require.Len(t, fo.SaveCalls(), 1)
	assert.Less(t, time.Since(start), 2*time.Second, "zero debounce flushes right away")
}

func TestEngine_AttemptBudgetAndRestore(t *testing.T) {
	fo := okFileOps()
	fo.VerifyFunc = func(map[string]any, string, string) error { return errors.New("mismatch") }
	hist := &mocks.HistoryMock{RecordSaveFunc: func(context.Context, request.SaveEvent) error { return nil }}

	e := NewEngine(Params{FileOps: fo, History: hist, MaxAttempts: 3, RetryDelay: 5 * time.Millisecond})
	require.NoError(t, e.Register(Setting, "race.json", "", staticSource(map[string]any{})))

	start := time.Now()
	e.Save(Setting, 0)
	waitDrained(t, e)

	assert.Len(t, fo.SaveCalls(), 3, "exactly the attempt budget")
	assert.Len(t, fo.VerifyCalls(), 3)
	assert.Len(t, fo.RestoreBackupCalls(), 1, "restore after exhausted attempts")
	assert.Len(t, fo.DeleteBackupCalls(), 1, "backup cleaned up regardless of outcome")
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond, "retry delay between attempts")

	require.Len(t, hist.RecordSaveCalls(), 1)
	ev := hist.RecordSaveCalls()[0].Ev
	assert.Equal(t, request.OutcomeFailed, ev.Outcome)
	assert.Equal(t, 3, ev.Attempts)
	assert.Equal(t, "race.json", ev.File)
}

// diskOps adapts the real file primitives, as the composition root does.
type diskOps struct{}

func (diskOps) Save(d map[string]any, n, p string) error   { return jsonfile.Save(d, n, p) }
func (diskOps) Verify(d map[string]any, n, p string) error { return jsonfile.Verify(d, n, p) }
func (diskOps) CreateBackup(n, p string) error             { return jsonfile.CreateBackup(n, p) }
func (diskOps) RestoreBackup(n, p string) error            { return jsonfile.RestoreBackup(n, p) }
func (diskOps) DeleteBackup(n, p string) error             { return jsonfile.DeleteBackup(n, p) }

// failVerifyOps writes real files but never verifies, forcing the restore path.
type failVerifyOps struct{ diskOps }

func (failVerifyOps) Verify(map[string]any, string, string) error {
	return errors.New("forced mismatch")
}

func TestEngine_RestoreKeepsPreviousBytes(t *testing.T) {
	dir := t.TempDir()
	orig := []byte(`{"key": "original"}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "race.json"), orig, 0o644))

	e := NewEngine(Params{FileOps: failVerifyOps{}, MaxAttempts: 3, RetryDelay: time.Millisecond})
	require.NoError(t, e.Register(Setting, "race.json", dir, staticSource(map[string]any{"key": "changed"})))

	e.Save(Setting, 0)
	waitDrained(t, e)

	b, err := os.ReadFile(filepath.Join(dir, "race.json"))
	require.NoError(t, err)
	assert.Equal(t, orig, b, "on-disk content identical to pre-save state")

	_, err = os.Stat(filepath.Join(dir, "race.json"+jsonfile.BackupExt))
	assert.True(t, os.IsNotExist(err), "backup artifact removed")
}

func TestEngine_RequeueWhileWriting(t *testing.T) {
	fo := okFileOps()
	entered := make(chan struct{}, 1)
	block := make(chan struct{})
	var calls int32
	fo.SaveFunc = func(map[string]any, string, string) error {
		if atomic.AddInt32(&calls, 1) == 1 {
			entered <- struct{}{}
			<-block
		}
		return nil
	}

	e := NewEngine(Params{FileOps: fo})
	require.NoError(t, e.Register(Setting, "race.json", "", staticSource(map[string]any{})))

	e.Save(Setting, 0)
	<-entered          // worker is mid-write now
	e.Save(Setting, 0) // must not be lost, gets a second pass
	close(block)
	waitDrained(t, e)

	assert.Len(t, fo.SaveCalls(), 2, "request during an active write re-queues")
}

func TestEngine_UnknownCategoryDropped(t *testing.T) {
	fo := okFileOps()
	e := NewEngine(Params{FileOps: fo})

	e.Save(Category("bogus"), 0) // not a category at all
	e.Save(Heatmap, 0)           // valid but never registered

	assert.False(t, e.Saving())
	assert.Empty(t, fo.SaveCalls())
	require.NoError(t, e.Wait(context.Background()), "nothing to wait for")
}

func TestEngine_RegisterValidation(t *testing.T) {
	e := NewEngine(Params{FileOps: okFileOps()})

	assert.Error(t, e.Register(Category("bogus"), "x.json", "", staticSource(map[string]any{})))
	assert.Error(t, e.Register(Setting, "", "", staticSource(map[string]any{})))
	assert.Error(t, e.Register(Setting, "x.json", "", nil))
	assert.NoError(t, e.Register(Setting, "x.json", "", staticSource(map[string]any{})))
}

func TestEngine_NotifiesOnFailure(t *testing.T) {
	fo := okFileOps()
	fo.VerifyFunc = func(map[string]any, string, string) error { return errors.New("mismatch") }
	notif := &mocks.NotifierMock{
		IsOnFailureFunc: func() bool { return true },
		MakeSaveFailureHTMLFunc: func(category, file, errorLog string) (string, error) {
			return "<html>" + file + "</html>", nil
		},
		SendFunc: func(context.Context, string, string) error { return nil },
	}

	e := NewEngine(Params{FileOps: fo, Notifier: notif, RetryDelay: time.Millisecond})
	require.NoError(t, e.Register(Setting, "race.json", "", staticSource(map[string]any{})))

	e.Save(Setting, 0)
	waitDrained(t, e)

	require.Len(t, notif.MakeSaveFailureHTMLCalls(), 1)
	assert.Equal(t, "setting", notif.MakeSaveFailureHTMLCalls()[0].Category)
	assert.Equal(t, "race.json", notif.MakeSaveFailureHTMLCalls()[0].File)
	require.Len(t, notif.SendCalls(), 1)
	assert.Contains(t, notif.SendCalls()[0].Subj, "race.json")
	assert.Contains(t, notif.SendCalls()[0].Text, "race.json")
}

func TestEngine_NoNotificationWhenDisabledOrSuccessful(t *testing.T) {
	notif := &mocks.NotifierMock{
		IsOnFailureFunc: func() bool { return false },
		MakeSaveFailureHTMLFunc: func(string, string, string) (string, error) {
			return "", errors.New("should not be called")
		},
		SendFunc: func(context.Context, string, string) error {
			return errors.New("should not be called")
		},
	}

	fo := okFileOps()
	fo.VerifyFunc = func(map[string]any, string, string) error { return errors.New("mismatch") }
	e := NewEngine(Params{FileOps: fo, Notifier: notif, RetryDelay: time.Millisecond})
	require.NoError(t, e.Register(Setting, "race.json", "", staticSource(map[string]any{})))
	e.Save(Setting, 0)
	waitDrained(t, e)
	assert.Empty(t, notif.SendCalls(), "notifications disabled")

	fo2 := okFileOps()
	e2 := NewEngine(Params{FileOps: fo2, Notifier: notif})
	require.NoError(t, e2.Register(Setting, "race.json", "", staticSource(map[string]any{})))
	e2.Save(Setting, 0)
	waitDrained(t, e2)
	assert.Empty(t, notif.SendCalls(), "no notification on success")
}

func TestEngine_RecordsSuccessfulSave(t *testing.T) {
	fo := okFileOps()
	hist := &mocks.HistoryMock{RecordSaveFunc: func(context.Context, request.SaveEvent) error { return nil }}
	e := NewEngine(Params{FileOps: fo, History: hist})
	require.NoError(t, e.Register(Config, "config.json", "", staticSource(map[string]any{})))

	e.Save(Config, 0)
	waitDrained(t, e)

	require.Len(t, hist.RecordSaveCalls(), 1)
	ev := hist.RecordSaveCalls()[0].Ev
	assert.Equal(t, request.OutcomeSaved, ev.Outcome)
	assert.Equal(t, 1, ev.Attempts)
	assert.Equal(t, "config", ev.Category)
	assert.False(t, ev.At.IsZero())
}

func TestEngine_WaitContextCancelled(t *testing.T) {
	fo := okFileOps()
	block := make(chan struct{})
	fo.SaveFunc = func(map[string]any, string, string) error {
		<-block
		return nil
	}

	e := NewEngine(Params{FileOps: fo})
	require.NoError(t, e.Register(Setting, "race.json", "", staticSource(map[string]any{})))
	e.Save(Setting, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, e.Wait(ctx), context.DeadlineExceeded)

	close(block)
	waitDrained(t, e)
}

func TestEngine_StatusWhileWriting(t *testing.T) {
	fo := okFileOps()
	entered := make(chan struct{}, 1)
	block := make(chan struct{})
	fo.SaveFunc = func(_ map[string]any, name string, _ string) error {
		if name == "race.json" {
			select {
			case entered <- struct{}{}:
				<-block
			default:
			}
		}
		return nil
	}

	e := NewEngine(Params{FileOps: fo})
	require.NoError(t, e.Register(Setting, "race.json", "", staticSource(map[string]any{})))
	require.NoError(t, e.Register(Config, "config.json", "", staticSource(map[string]any{})))

	e.Save(Setting, 0)
	<-entered
	e.Save(Config, 0)

	st := e.Status()
	assert.True(t, st.Saving)
	assert.Equal(t, "race.json", st.Active)
	assert.Equal(t, []string{"config.json"}, st.Queued)
	assert.True(t, e.Saving())

	close(block)
	waitDrained(t, e)
	assert.Len(t, fo.SaveCalls(), 2)
}

func TestNewEngine_Defaults(t *testing.T) {
	e := NewEngine(Params{FileOps: okFileOps(), MaxAttempts: 1})
	assert.Equal(t, 3, e.maxAttempts, "attempt budget never below three")
	assert.Equal(t, 50*time.Millisecond, e.retryDelay)

	e = NewEngine(Params{FileOps: okFileOps(), MaxAttempts: 7, RetryDelay: time.Second})
	assert.Equal(t, 7, e.maxAttempts)
	assert.Equal(t, time.Second, e.retryDelay)
}
