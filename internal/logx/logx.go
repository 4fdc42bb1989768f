// Package logx filters the standard logger by the [LEVEL] tag of each line.
package logx

import (
	"bytes"
	"io"
	"log"
	"strings"
)

const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

var tags = []struct {
	tag   []byte
	level int
}{
	{[]byte("[DEBUG]"), levelDebug},
	{[]byte("[INFO]"), levelInfo},
	{[]byte("[WARN]"), levelWarn},
	{[]byte("[ERROR]"), levelError},
	{[]byte("[FATAL]"), levelError},
}

type leveledWriter struct {
	minLevel int
	target   io.Writer
}

func (w *leveledWriter) Write(p []byte) (int, error) {
	if levelOf(p) < w.minLevel {
		return len(p), nil
	}
	return w.target.Write(p)
}

// Setup routes the standard logger through a filter dropping lines below level.
// Untagged lines are treated as info.
func Setup(level string, out io.Writer) {
	log.SetOutput(NewWriter(level, out))
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

// NewWriter returns the filtering writer used by Setup.
func NewWriter(level string, out io.Writer) io.Writer {
	return &leveledWriter{minLevel: parseLevel(level), target: out}
}

func parseLevel(level string) int {
	switch strings.ToLower(level) {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func levelOf(line []byte) int {
	for _, t := range tags {
		if bytes.Contains(line, t.tag) {
			return t.level
		}
	}
	return levelInfo
}
