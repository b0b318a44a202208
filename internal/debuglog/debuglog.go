// Package debuglog appends printf-style diagnostics to the file named
// by the TERMSTYLE_LOG_FILE environment variable. Styling code runs
// inside terminal redraw paths where stderr is not a usable sink, so
// logging is opt-in and file-backed.
package debuglog

import (
	"bytes"
	"fmt"
	"os"
	"sync"
)

var mu sync.Mutex

// Log formats its arguments and appends them, newline-terminated, to
// TERMSTYLE_LOG_FILE. It is a no-op when the variable is unset or the
// path cannot be opened for append.
func Log(format string, args ...any) {
	path := os.Getenv("TERMSTYLE_LOG_FILE")
	if path == "" {
		return
	}

	// One writer at a time within the process; the env var is re-read
	// per call so tests can redirect output.
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	var b bytes.Buffer
	_, _ = fmt.Fprintf(&b, format, args...)
	if b.Len() == 0 || b.Bytes()[b.Len()-1] != '\n' {
		_ = b.WriteByte('\n')
	}
	_, _ = f.Write(b.Bytes())
}
