package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/erralert/internal/keymap"
	"github.com/llehouerou/erralert/internal/ui"
	"github.com/llehouerou/erralert/internal/ui/action"
	"github.com/llehouerou/erralert/internal/ui/erroralert"
)

// Options configures the demo jobs.
type Options struct {
	FeedURL    string
	FetchDelay time.Duration
}

// Model is the root content model.
type Model struct {
	ui.Base
	reporter Reporter
	keys     *keymap.Resolver
	opts     Options

	running      int
	started      int
	failed       int
	acknowledged int
	lastAck      string
}

// Compile-time check that Model implements tea.Model.
var _ tea.Model = (*Model)(nil)

// New creates the content model. r receives every job failure.
func New(r Reporter, opts Options) *Model {
	return &Model{
		reporter: r,
		keys:     keymap.NewResolver(keymap.ByContext("global")),
		opts:     opts,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		return m, m.handleKey(msg.String())

	case JobFinishedMsg:
		m.running--
		if msg.Err != nil {
			m.failed++
		}

	case action.Msg:
		if ack, ok := msg.Action.(erroralert.Acknowledged); ok && msg.Source == erroralert.Source {
			m.acknowledged++
			if ack.Err != nil {
				m.lastAck = ack.Err.Error()
			}
		}
	}
	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch m.keys.Resolve(key) {
	case keymap.ActionQuit:
		return tea.Quit
	case keymap.ActionFetch:
		return m.start(FetchFeedCmd(m.reporter, m.opts.FeedURL, m.opts.FetchDelay))
	case keymap.ActionSync:
		return m.start(SyncLibraryCmd(m.reporter, m.opts.FetchDelay))
	case keymap.ActionBurst:
		return m.start(BurstCmd(m.reporter))
	}
	return nil
}

func (m *Model) start(cmd tea.Cmd) tea.Cmd {
	m.running++
	m.started++
	return cmd
}

// Stats returns job counters: started, running, failed, acknowledged.
func (m *Model) Stats() (started, running, failed, acknowledged int) {
	return m.started, m.running, m.failed, m.acknowledged
}
