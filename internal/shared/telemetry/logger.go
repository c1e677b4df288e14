package telemetry

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// stdout resolves os.Stdout on every write so tests can swap it.
type stdout struct{}

func (stdout) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

var (
	mu     sync.RWMutex
	logger = newJSON(stdout{})
)

func init() {
	zerolog.TimestampFieldName = "ts"
	zerolog.MessageFieldName = "msg"
	zerolog.TimeFieldFormat = time.RFC3339
}

func newJSON(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// Setup configures the global level and output format. Format "console" writes
// human-readable lines to w; anything else writes JSON lines. A nil w means stdout.
func Setup(w io.Writer, level, format string) {
	if w == nil {
		w = stdout{}
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	var l zerolog.Logger
	if strings.EqualFold(format, "console") {
		l = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	} else {
		l = newJSON(w)
	}
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Logger returns the configured logger for callers that want the zerolog API.
func Logger() *zerolog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	return &l
}

// Debug writes a debug-level log line with the given fields.
func Debug(msg string, fields map[string]any) {
	write(zerolog.DebugLevel, msg, fields)
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	write(zerolog.InfoLevel, msg, fields)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	write(zerolog.ErrorLevel, msg, fields)
}

func write(level zerolog.Level, msg string, fields map[string]any) {
	Logger().WithLevel(level).Fields(fields).Msg(msg)
}
