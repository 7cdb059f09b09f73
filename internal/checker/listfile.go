// filepath: internal/checker/listfile.go
package checker

import (
	"bufio"
	"os"
	"strings"
)

// ReadListFile reads the resource list, one path per line, in file order.
// Lines that are blank after trimming whitespace are skipped; a final line
// without a trailing newline still counts. No dedup, no path validation.
func ReadListFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
