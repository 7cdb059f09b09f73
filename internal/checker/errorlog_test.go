// filepath: internal/checker/errorlog_test.go
package checker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorLog_Append(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error_log.txt")

	// Pre-existing content must survive, appends accumulate
	assert.NoError(t, os.WriteFile(path, []byte("FAIL: HTTP code 500, url: http://x/a\n"), 0644))

	log := &ErrorLog{Path: path}
	assert.NoError(t, log.Append("FAIL: HTTP code 404, url: http://x/b\n"))
	assert.NoError(t, log.Append("FAIL: exception boom, url: http://x/c\n"))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t,
		"FAIL: HTTP code 500, url: http://x/a\n"+
			"FAIL: HTTP code 404, url: http://x/b\n"+
			"FAIL: exception boom, url: http://x/c\n",
		string(data))
}
