package testutil

import (
	"fmt"
	"strings"
	"sync"
)

// LineLogger keeps every formatted line, prefixed by its level.
type LineLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *LineLogger) Infof(format string, args ...any)  { l.add("INFO", format, args...) }
func (l *LineLogger) Warnf(format string, args ...any)  { l.add("WARN", format, args...) }
func (l *LineLogger) Errorf(format string, args ...any) { l.add("ERROR", format, args...) }

func (l *LineLogger) add(level string, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+" "+fmt.Sprintf(format, args...))
}

// Lines returns a copy of the logged lines.
func (l *LineLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// Contains reports if any line contains the text.
func (l *LineLogger) Contains(text string) bool {
	for _, line := range l.Lines() {
		if strings.Contains(line, text) {
			return true
		}
	}
	return false
}
