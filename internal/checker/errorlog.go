// filepath: internal/checker/errorlog.go
package checker

import (
	"fmt"
	"os"

	"mediacheck/internal/shared"
)

// ErrorLog appends failure lines to a plain text log file. The file is
// opened, written, and closed per entry, so each line is independently
// durable and safe to interleave with other processes appending to the
// same file. The file is never truncated by a run.
type ErrorLog struct {
	Path string
}

// Append writes one line to the log. The line must carry its own trailing
// newline.
func (l *ErrorLog) Append(line string) error {
	f, err := os.OpenFile(l.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("trying to open the error log: %w", shared.ErrorCreateFile)
	}
	defer f.Close()
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("trying to write the error log: %w", shared.ErrorAppendFile)
	}
	return nil
}
