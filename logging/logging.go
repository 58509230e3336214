// Package logging builds the process logger
// Logging is off unless debug is set; terminal output belongs to the renderer
package logging

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/regolith/constant"
	"github.com/lixenwraith/regolith/core"
)

type Options struct {
	Level string // debug, info, warn, error
	Debug bool
	Dir   string // defaults to constant.LogDir
}

// Logger is a zap logger plus the file behind it
type Logger struct {
	*zap.Logger
	file *os.File
}

// Path returns the active log file, empty when logging is disabled
func (l *Logger) Path() string {
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}

// Close flushes and closes the log file
func (l *Logger) Close() error {
	_ = l.Sync()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// New returns a no-op logger without debug, else a JSON file logger
// An existing file above constant.LogMaxFileSize is rotated aside first
func New(opts Options) (*Logger, error) {
	if !opts.Debug {
		return &Logger{Logger: zap.NewNop()}, nil
	}

	level, err := zapcore.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || opts.Level == "" {
		level = zapcore.InfoLevel
	}

	dir := opts.Dir
	if dir == "" {
		dir = constant.LogDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, core.ConfigError("logging.New", "cannot create log directory", err).With("Dir", dir)
	}

	path := filepath.Join(dir, constant.LogFile)
	if err := rotate(path); err != nil {
		return nil, core.ConfigError("logging.New", "cannot rotate log file", err).With("Path", path)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, core.ConfigError("logging.New", "cannot open log file", err).With("Path", path)
	}

	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	zc := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(f), zap.NewAtomicLevelAt(level))
	log := zap.New(zc, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	log.Info("logging started", zap.String("path", path), zap.Stringer("level", level))
	return &Logger{Logger: log, file: f}, nil
}

// rotate renames path to a timestamped sibling when it exceeds the size limit
func rotate(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Size() <= constant.LogMaxFileSize {
		return nil
	}
	ext := filepath.Ext(path)
	stamp := time.Now().Format("20060102-150405")
	return os.Rename(path, strings.TrimSuffix(path, ext)+"-"+stamp+ext)
}
