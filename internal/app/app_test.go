package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/erralert/internal/errmsg"
	"github.com/llehouerou/erralert/internal/errreport"
	"github.com/llehouerou/erralert/internal/ui/action"
	"github.com/llehouerou/erralert/internal/ui/erroralert"
	"github.com/llehouerou/erralert/internal/ui/testutil"
)

type fakeReporter struct {
	mu   sync.Mutex
	errs []error
}

func (f *fakeReporter) Report(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs = append(f.errs, err)
}

func (f *fakeReporter) reported() []error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]error(nil), f.errs...)
}

func newTestModel(r Reporter) (*Model, *testutil.ModelHarness) {
	m := New(r, Options{FeedURL: "https://feeds.test/rss", FetchDelay: 500 * time.Millisecond})
	h := testutil.NewModelHarness(m)
	h.Resize(80, 24)
	return m, h
}

func TestFetch_ReportsTimeout(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		r := &fakeReporter{}
		m, h := newTestModel(r)

		cmd := h.SendKey("f")
		require.NotNil(t, cmd)
		started, running, _, _ := m.Stats()
		assert.Equal(t, 1, started)
		assert.Equal(t, 1, running)

		begin := time.Now()
		msg := cmd()
		assert.Equal(t, 500*time.Millisecond, time.Since(begin))

		finished, ok := msg.(JobFinishedMsg)
		require.True(t, ok)
		assert.Equal(t, JobFetch, finished.Job)

		errs := r.reported()
		require.Len(t, errs, 1)
		assert.Equal(t, "Failed to fetch feed 'https://feeds.test/rss': timeout", errs[0].Error())
		var netErr NetworkError
		assert.ErrorAs(t, errs[0], &netErr)

		h.SendMsg(msg)
		_, running, failed, _ := m.Stats()
		assert.Equal(t, 0, running)
		assert.Equal(t, 1, failed)
	})
}

func TestSync_ReportsDeadline(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		r := &fakeReporter{}
		_, h := newTestModel(r)

		msg := h.SendKey("s")()

		finished := msg.(JobFinishedMsg)
		assert.Equal(t, JobSync, finished.Job)
		assert.ErrorIs(t, finished.Err, context.DeadlineExceeded)

		var opErr *errmsg.Error
		require.ErrorAs(t, finished.Err, &opErr)
		assert.Equal(t, errmsg.OpSyncLibrary, opErr.Op)
		assert.Len(t, r.reported(), 1)
	})
}

func TestBurst_ReportsTwice(t *testing.T) {
	r := &fakeReporter{}
	_, h := newTestModel(r)

	h.SendKey("b")()

	errs := r.reported()
	require.Len(t, errs, 2)
	assert.Contains(t, errs[1].Error(), "read-only file system")
}

func TestBurst_ReporterShowsLastOnly(t *testing.T) {
	r := errreport.New()
	defer r.Close()

	BurstCmd(r)()
	r.Update(r.Listen()())

	require.Error(t, r.Current())
	assert.Contains(t, r.Current().Error(), "read-only file system")
}

func TestQuit(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		_, h := newTestModel(&fakeReporter{})
		cmd := h.SendMsg(key)
		require.NotNil(t, cmd, "key %q", key.String())
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestUnboundKey_NoCommand(t *testing.T) {
	m, h := newTestModel(&fakeReporter{})
	assert.Nil(t, h.SendKey("z"))
	assert.Nil(t, h.SendEnter())
	started, _, _, _ := m.Stats()
	assert.Equal(t, 0, started)
}

func TestAcknowledged_Counted(t *testing.T) {
	m, h := newTestModel(&fakeReporter{})

	h.SendMsg(action.Msg{Source: erroralert.Source, Action: erroralert.Acknowledged{Err: errors.New("timeout")}})
	h.SendMsg(action.Msg{Source: "other", Action: erroralert.Acknowledged{}})

	_, _, _, acked := m.Stats()
	assert.Equal(t, 1, acked)
	assert.True(t, testutil.ContainsLine(h.View(), "last dismissed: timeout"))
}

func TestView_FillsHeight(t *testing.T) {
	_, h := newTestModel(&fakeReporter{})

	lines := testutil.StripANSI(h.View())
	assert.Len(t, strings.Split(lines, "\n"), 24)
	assert.True(t, testutil.ContainsLine(lines, "q/ctrl+c Quit"))
}
