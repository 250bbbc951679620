// Package app is the demo content screen: it runs background jobs that fail
// and hand their errors to the reporter.
package app

// Job names a background job.
type Job string

const (
	JobFetch Job = "fetch"
	JobSync  Job = "sync"
	JobBurst Job = "burst"
)

// JobFinishedMsg is sent when a background job returns.
// Err is the error the job reported, if any.
type JobFinishedMsg struct {
	Job Job
	Err error
}
