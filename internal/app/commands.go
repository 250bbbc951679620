package app

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/erralert/internal/errmsg"
)

// Reporter receives errors from background jobs. Report must be safe to call
// from any goroutine.
type Reporter interface {
	Report(err error)
}

// NetworkError is a transport failure talking to a remote endpoint.
type NetworkError struct {
	Reason string
}

func (e NetworkError) Error() string {
	return e.Reason
}

// FetchFeedCmd simulates a feed request that times out after delay.
func FetchFeedCmd(r Reporter, url string, delay time.Duration) tea.Cmd {
	return func() tea.Msg {
		time.Sleep(delay)
		err := errmsg.WrapWith(errmsg.OpFetchFeed, url, NetworkError{Reason: "timeout"})
		r.Report(err)
		return JobFinishedMsg{Job: JobFetch, Err: err}
	}
}

// SyncLibraryCmd simulates a sync whose backend never answers before the
// deadline.
func SyncLibraryCmd(r Reporter, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := waitForBackend(ctx)
		if err != nil {
			err = errmsg.Wrap(errmsg.OpSyncLibrary, err)
			r.Report(err)
		}
		return JobFinishedMsg{Job: JobSync, Err: err}
	}
}

// waitForBackend blocks until ctx is done; the simulated backend never replies.
func waitForBackend(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

// BurstCmd reports two errors back-to-back. Only the second one is shown.
func BurstCmd(r Reporter) tea.Cmd {
	return func() tea.Msg {
		first := errmsg.Wrap(errmsg.OpSaveState, errors.New("disk full"))
		second := errmsg.Wrap(errmsg.OpSaveState, errors.New("read-only file system"))
		r.Report(first)
		r.Report(second)
		return JobFinishedMsg{Job: JobBurst, Err: second}
	}
}
