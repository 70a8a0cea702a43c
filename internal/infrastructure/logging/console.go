package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Level identifies the severity of a log line.
type Level string

const (
	LevelDebug   Level = "debug"
	LevelInfo    Level = "info"
	LevelWarn    Level = "warn"
	LevelError   Level = "error"
	LevelSuccess Level = "success"
)

// Logger writes leveled, colored lines to the console and optionally
// mirrors every line, timestamped and uncolored, to an append-only
// file. Debug lines go to the file sink only. File problems downgrade
// to a single console warning and never escalate into run failures.
type Logger struct {
	console     io.Writer
	file        *os.File
	styles      map[Level]lipgloss.Style
	writeWarned bool
}

// New creates a Logger writing to console. A non-empty filePath opens
// the append-mode sink; if the file cannot be opened a warning is
// printed and file logging stays disabled.
func New(console io.Writer, filePath string) *Logger {
	logger := &Logger{
		console: console,
		styles: map[Level]lipgloss.Style{
			LevelDebug:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			LevelInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
			LevelWarn:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
			LevelError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
			LevelSuccess: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),
		},
	}

	if filePath != "" {
		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			logger.Warnf("⚠️  Cannot open log file %s: %v", filePath, err)
		} else {
			logger.file = file
		}
	}

	return logger
}

// Debugf records a line in the file sink without console output.
func (l *Logger) Debugf(format string, args ...any) {
	l.mirror(LevelDebug, fmt.Sprintf(format, args...))
}

// Infof logs an informational line.
func (l *Logger) Infof(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Warnf logs a warning line.
func (l *Logger) Warnf(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Errorf logs an error line.
func (l *Logger) Errorf(format string, args ...any) {
	l.log(LevelError, format, args...)
}

// Successf logs a success line, used for stage completions and the
// final summary.
func (l *Logger) Successf(format string, args ...any) {
	l.log(LevelSuccess, format, args...)
}

// Close releases the file sink if one was opened.
func (l *Logger) Close() {
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}
}

func (l *Logger) log(level Level, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	fmt.Fprintln(l.console, l.styles[level].Render(message))
	l.mirror(level, message)
}

func (l *Logger) mirror(level Level, message string) {
	if l.file == nil {
		return
	}

	line := fmt.Sprintf("%s [%s] %s\n",
		time.Now().Format("2006-01-02 15:04:05"),
		strings.ToUpper(string(level)),
		message,
	)

	if _, err := l.file.WriteString(line); err != nil && !l.writeWarned {
		l.writeWarned = true
		fmt.Fprintln(l.console, l.styles[LevelWarn].Render(fmt.Sprintf("⚠️  Log file write failed: %v", err)))
	}
}
