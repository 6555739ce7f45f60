// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the process logger. Init replaces it.
var Logger zerolog.Logger

// Level is a zerolog level.
type Level = zerolog.Level

const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
)

// Config holds logger configuration.
type Config struct {
	Level      Level
	Output     io.Writer // defaults to os.Stderr
	Pretty     bool      // console output instead of JSON
	TimeFormat string    // defaults to RFC3339

	// LogToFile additionally writes JSON lines to exiled-<time>.log in LogDir.
	LogToFile bool
	LogDir    string
}

var (
	fileMu      sync.Mutex
	logFile     *os.File
	logFilePath string
)

// DefaultConfig logs info and above to stderr as JSON.
func DefaultConfig() Config {
	return Config{
		Level:      InfoLevel,
		Output:     os.Stderr,
		TimeFormat: time.RFC3339,
		LogDir:     os.TempDir(),
	}
}

// Init replaces Logger, and the zerolog/log package logger, according to
// cfg. A log file opened by a previous Init is closed first.
func Init(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = time.RFC3339
	}
	zerolog.TimeFieldFormat = cfg.TimeFormat

	out := cfg.Output
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: cfg.TimeFormat}
	}

	Close()
	if cfg.LogToFile {
		dir := cfg.LogDir
		if dir == "" {
			dir = os.TempDir()
		}
		f, err := openLogFile(dir)
		if err != nil {
			fmt.Fprintf(cfg.Output, "logging: %v\n", err)
		} else {
			out = zerolog.MultiLevelWriter(out, f)
		}
	}

	Logger = zerolog.New(out).Level(cfg.Level).With().Timestamp().Logger()
	log.Logger = Logger
}

func openLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(dir, "exiled-"+time.Now().Format("20060102-150405")+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	fileMu.Lock()
	logFile, logFilePath = f, path
	fileMu.Unlock()
	return f, nil
}

// GetLogFilePath returns the open log file, or "".
func GetLogFilePath() string {
	fileMu.Lock()
	defer fileMu.Unlock()
	return logFilePath
}

// Close closes the log file, if one is open.
func Close() {
	fileMu.Lock()
	defer fileMu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile, logFilePath = nil, ""
	}
}

// ParseLevel parses a level name case-insensitively. "warning" is accepted
// for warn; anything unrecognised, or below debug, is info.
func ParseLevel(level string) Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		return WarnLevel
	}
	l, err := zerolog.ParseLevel(level)
	if err != nil || level == "" || l < DebugLevel {
		return InfoLevel
	}
	return l
}

// Component returns a child of Logger tagged with component=name.
func Component(name string) zerolog.Logger {
	return Logger.With().Str("component", name).Logger()
}

func Debug() *zerolog.Event { return Logger.Debug() }
func Info() *zerolog.Event  { return Logger.Info() }
func Warn() *zerolog.Event  { return Logger.Warn() }
func Error() *zerolog.Event { return Logger.Error() }

func init() {
	Init(DefaultConfig())
}
