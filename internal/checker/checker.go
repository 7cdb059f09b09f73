// filepath: internal/checker/checker.go
package checker

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"mediacheck/internal/config"
	"mediacheck/internal/logging"
)

// Checker verifies that expected resources are reachable on the target
// server. Checks run sequentially in list order, one request in flight at a
// time; failures are counted and appended to the error log but never stop
// the run.
type Checker struct {
	BaseURL   string
	ListFile  string
	UserAgent string
	Client    *http.Client
	ErrorLog  *ErrorLog
	Out       io.Writer
}

// Summary holds the final tally of a check run.
type Summary struct {
	OK      int
	Fail    int
	Elapsed time.Duration
}

// Total returns the number of checks performed.
func (s *Summary) Total() int { return s.OK + s.Fail }

// New creates a Checker from the application configuration. A zero
// TimeoutDuration means no deadline on a check.
func New(cfg *config.Config) *Checker {
	return &Checker{
		BaseURL:   cfg.Server.BaseURL,
		ListFile:  cfg.Checker.ListFile,
		UserAgent: cfg.Checker.UserAgent,
		Client:    &http.Client{Timeout: cfg.TimeoutDuration},
		ErrorLog:  &ErrorLog{Path: cfg.Checker.ErrorLog},
		Out:       os.Stdout,
	}
}

// Check probes a single resource path with a HEAD request and classifies the
// outcome. Status 200 is a pass; any other status or a transport error is a
// failure, each with its own report wording. Failures are printed and
// appended to the error log.
func (c *Checker) Check(path string) bool {
	url := BuildURL(c.BaseURL, path)

	req, err := http.NewRequest(http.MethodHead, url, nil)
	if err != nil {
		c.fail(fmt.Sprintf("FAIL: exception %v, url: %s\n", err, url))
		return false
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		// Transport-level failure: DNS, connection refused, timeout, ...
		c.fail(fmt.Sprintf("FAIL: exception %v, url: %s\n", err, url))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		fmt.Fprintf(c.Out, "OK: status 200 and Content-Type present (%s)\n", resp.Header.Get("Content-Type"))
		return true
	}

	c.fail(fmt.Sprintf("FAIL: HTTP code %d, url: %s\n", resp.StatusCode, url))
	return false
}

// fail prints a failure line and appends it to the error log. The printed
// text and the logged text are identical; the message carries its own
// trailing newline.
func (c *Checker) fail(msg string) {
	fmt.Fprint(c.Out, msg)
	if err := c.ErrorLog.Append(msg); err != nil {
		logging.Log.Warnf("Failed to append to error log %s: %v", c.ErrorLog.Path, err)
	}
}

// Run performs one check per list entry, in file order, and prints the final
// tally. A missing list file prints "<name> not found" and returns a nil
// summary without writing any log entries; any other read error is returned.
func (c *Checker) Run() (*Summary, error) {
	lines, err := ReadListFile(c.ListFile)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(c.Out, "%s not found\n", c.ListFile)
			return nil, nil
		}
		return nil, err
	}

	// Wall clock for display, monotonic reading for the elapsed time.
	start := time.Now()

	fmt.Fprintf(c.Out, "Start time: %s\n", start.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(c.Out, "Checking for %d files\n", len(lines))

	summary := &Summary{}
	for _, line := range lines {
		fmt.Fprintln(c.Out, line)
		if c.Check(line) {
			summary.OK++
		} else {
			summary.Fail++
		}
	}

	summary.Elapsed = time.Since(start)

	fmt.Fprintf(c.Out, "\n=== Final result ===\n")
	fmt.Fprintf(c.Out, "Total: %d | OK: %d | FAIL: %d\n", summary.Total(), summary.OK, summary.Fail)
	fmt.Fprintf(c.Out, "Elapsed time: %.2f seconds\n", summary.Elapsed.Seconds())

	return summary, nil
}
