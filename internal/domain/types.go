package domain

import "time"

// Target is one package to publish: a display name and the absolute,
// slash-separated directory the publish tool runs in. Path always ends
// with a trailing "/".
type Target struct {
	Name string
	Path string
}

// Result is the outcome of running the publish tool against one target.
//
// ExitCode is the tool's exit status; Err is set when the tool exited
// non-zero or could not be started at all.
type Result struct {
	Target   Target
	Command  string
	ExitCode int
	Err      error
	Duration time.Duration
}

// OK reports whether the publish tool exited cleanly.
func (r Result) OK() bool { return r.Err == nil && r.ExitCode == 0 }

// Report collects the results of one sequencer run, in visiting order.
type Report struct {
	DryRun    bool
	Results   []Result
	StartedAt time.Time
	EndedAt   time.Time
}

// Failed returns the results whose publish did not succeed.
func (r Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.OK() {
			out = append(out, res)
		}
	}
	return out
}
