package shell

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCombineOutput(t *testing.T) {
	tests := []struct {
		name     string
		stdout   string
		stderr   string
		expected string
	}{
		{
			name:     "stdout only",
			stdout:   "libx-1.2.3.tgz\n",
			expected: "libx-1.2.3.tgz\n",
		},
		{
			name:     "stdout and stderr",
			stdout:   "libx-1.2.3.tgz\n",
			stderr:   "npm notice\n",
			expected: "libx-1.2.3.tgz\n\nstderr: npm notice\n",
		},
		{
			name:     "stderr only",
			stderr:   "warn",
			expected: "\nstderr: warn",
		},
		{
			name:     "nothing",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, combineOutput(tt.stdout, tt.stderr))
		})
	}
}

type outputLine struct {
	prefix string
	line   string
	stderr bool
}

type recordingLogger struct {
	lines []outputLine
}

func (l *recordingLogger) Info(string) {}
func (l *recordingLogger) Warn(string) {}
func (l *recordingLogger) Error(error) {}
func (l *recordingLogger) Step(string, time.Duration, error) {}

func (l *recordingLogger) Output(prefix, line string, stderr bool) {
	l.lines = append(l.lines, outputLine{prefix: prefix, line: line, stderr: stderr})
}

func TestLogWriter_BuffersPartialLines(t *testing.T) {
	log := &recordingLogger{}
	w := &logWriter{logger: log, prefix: "app"}

	_, _ = w.Write([]byte("par"))
	_, _ = w.Write([]byte("t1\npart"))
	assert.Equal(t, []outputLine{{prefix: "app", line: "part1"}}, log.lines)

	_ = w.Close()
	assert.Equal(t, []outputLine{
		{prefix: "app", line: "part1"},
		{prefix: "app", line: "part"},
	}, log.lines)
}

func TestLogWriter_StripsCarriageReturnAndSkipsBlankLines(t *testing.T) {
	log := &recordingLogger{}
	w := &logWriter{logger: log, prefix: "app", stderr: true}

	_, _ = w.Write([]byte("notice\r\n\n"))
	_ = w.Close()

	assert.Equal(t, []outputLine{{prefix: "app", line: "notice", stderr: true}}, log.lines)
}

func TestOutputPrefix(t *testing.T) {
	assert.Equal(t, "app-a", outputPrefix("/work/app-a", "npm"))
	assert.Equal(t, "npm", outputPrefix("", "/usr/bin/npm"))
}
