// Package log provides the application-wide logging facade, backed by
// logrus. Interactive runs route output to a log file so the TUI screen is
// never corrupted; tests capture or discard output through the same options.
package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	apperrors "trooper/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug = false
	logger  = NewLogger()
)

// Logger wraps a logrus logger together with the optional log file it owns.
type Logger struct {
	log  *logrus.Logger
	file *os.File
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput sends log output to w.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.log.SetOutput(w)
	}
}

// WithJSON switches the output format to one JSON object per line.
func WithJSON() Option {
	return func(l *Logger) {
		l.log.SetFormatter(&jsonFormatter{})
	}
}

// WithFile tees output to stdout and the given file.
func WithFile(path string) Option {
	return func(l *Logger) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			l.log.Warnf("cannot open log file %s: %v", path, err)
			return
		}
		l.file = f
		l.log.SetOutput(io.MultiWriter(os.Stdout, f))
	}
}

// NewLogger builds a Logger writing text-formatted lines to stdout.
func NewLogger(opts ...Option) *Logger {
	l := &Logger{log: logrus.New()}
	l.log.SetOutput(os.Stdout)
	l.log.SetLevel(logrus.DebugLevel)
	l.log.SetFormatter(&textFormatter{})
	for _, o := range opts {
		o(l)
	}
	return l
}

// Configure replaces the global logger.
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// ConfigureFile routes all global logging to the given file, creating parent
// directories as needed. Interactive runs must not write to stdout.
func ConfigureFile(path string, debug bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	Configure(WithOutput(f))
	logger.file = f
	SetDebug(debug)
	return nil
}

// Disable silences the global logger (used by tests).
func Disable() {
	Configure(WithOutput(io.Discard))
}

// Close releases the log file if one is open.
func Close() {
	if logger.file != nil {
		logger.file.Close()
		logger.file = nil
	}
}

// SetDebug toggles debug-level logging globally.
func SetDebug(debug bool) {
	isDebug = debug
}

// F builds a single structured field.
func F(key string, value interface{}) logrus.Fields {
	return logrus.Fields{key: value}
}

// Entry is a log line under construction with structured fields attached.
type Entry struct {
	e *logrus.Entry
}

// With attaches further fields to the entry.
func (en *Entry) With(fields ...logrus.Fields) *Entry {
	return &Entry{e: en.e.WithFields(mergeFields(fields))}
}

// Debug logs the entry at debug level when debug logging is on.
func (en *Entry) Debug(args ...interface{}) {
	if isDebug {
		en.e.Debug(args...)
	}
}

// Info logs the entry at info level.
func (en *Entry) Info(args ...interface{}) {
	en.e.Info(args...)
}

// Warn logs the entry at warning level.
func (en *Entry) Warn(args ...interface{}) {
	en.e.Warn(args...)
}

// Error logs the entry at error level.
func (en *Entry) Error(args ...interface{}) {
	en.e.Error(args...)
}

func mergeFields(fields []logrus.Fields) logrus.Fields {
	merged := logrus.Fields{}
	for _, f := range fields {
		for k, v := range f {
			merged[k] = v
		}
	}
	return merged
}

// With starts a structured entry on this logger.
func (l *Logger) With(fields ...logrus.Fields) *Entry {
	return &Entry{e: l.entry().WithFields(mergeFields(fields))}
}

// WithContext attaches a context to the entry. Reserved for future
// context-aware logging; currently adds nothing beyond the caller field.
func (l *Logger) WithContext(ctx context.Context) *Entry {
	return &Entry{e: l.entry().WithContext(ctx)}
}

// Info logs a message at info level.
func (l *Logger) Info(args ...interface{}) {
	l.entry().Info(args...)
}

// Infof logs a formatted message at info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.entry().Infof(format, args...)
}

// Debug logs a message at debug level when debug logging is on.
func (l *Logger) Debug(args ...interface{}) {
	if isDebug {
		l.entry().Debug(args...)
	}
}

// Debugf logs a formatted message at debug level when debug logging is on.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if isDebug {
		l.entry().Debugf(format, args...)
	}
}

// Warn logs a message at warning level.
func (l *Logger) Warn(args ...interface{}) {
	l.entry().Warn(args...)
}

// Warnf logs a formatted message at warning level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.entry().Warnf(format, args...)
}

// Error logs a message at error level.
func (l *Logger) Error(args ...interface{}) {
	l.entry().Error(args...)
}

// Errorf logs a formatted message at error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.entry().Errorf(format, args...)
}

func (l *Logger) entry() *logrus.Entry {
	return l.log.WithField("caller", callerLocation())
}

// callerLocation walks up the stack past this package's frames.
func callerLocation() string {
	for skip := 2; skip < 12; skip++ {
		_, file, line, ok := runtime.Caller(skip)
		if !ok {
			break
		}
		if strings.HasSuffix(file, "logger.go") && strings.Contains(file, "/log/") {
			continue
		}
		return fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}
	return "unknown"
}

// Info logs a formatted message through the global logger.
func Info(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Debug logs a message with arguments
func Debug(msg string, args ...interface{}) {
	if !isDebug {
		return
	}
	if len(args) == 0 {
		logger.Debug(msg)
		return
	}
	logger.Debugf(msg+": %v", args...)
}

// Debugf logs a formatted message
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Error logs an error message with arguments
func Error(msg string, args ...interface{}) {
	if len(args) == 0 {
		logger.Error(msg)
		return
	}
	logger.Errorf(msg+": %v", args...)
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// Warn logs a warning message with arguments
func Warn(msg string, args ...interface{}) {
	if len(args) == 0 {
		logger.Warn(msg)
		return
	}
	logger.Warnf(msg+": %v", args...)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// LogWithFields starts a structured entry on the global logger.
func LogWithFields(fields ...logrus.Fields) *Entry {
	return logger.With(fields...)
}

// LogWithError starts a structured entry carrying the error, its kind, and
// any type-specific detail fields.
func LogWithError(err error) *Entry {
	fields := logrus.Fields{"error": err}
	var appErr *apperrors.ApplicationError
	if apperrors.As(err, &appErr) {
		fields["error_kind"] = int(appErr.Kind())
	}
	var fileErr *apperrors.FileError
	if apperrors.As(err, &fileErr) {
		fields["error_kind"] = int(fileErr.Kind())
		fields["path"] = fileErr.Path()
	}
	var configErr *apperrors.ConfigError
	if apperrors.As(err, &configErr) {
		fields["error_kind"] = int(configErr.Kind())
		fields["param"] = configErr.Param()
	}
	var bindErr *apperrors.BindingError
	if apperrors.As(err, &bindErr) {
		fields["error_kind"] = int(bindErr.Kind())
		fields["chord"] = bindErr.Chord()
	}
	return logger.With(fields)
}

// LogError logs an error with a message through the global logger.
func LogError(err error, msg string) {
	LogWithError(err).Error(msg)
}

// textFormatter renders "[timestamp] LEVEL: message key=value ..." lines.
type textFormatter struct{}

func (f *textFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "[%s] %s: %s",
		e.Time.Format("2006-01-02 15:04:05"),
		strings.ToUpper(e.Level.String()),
		e.Message)
	for _, k := range sortedKeys(e.Data) {
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

// jsonFormatter renders one JSON object per line with stable key names.
type jsonFormatter struct{}

func (f *jsonFormatter) Format(e *logrus.Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(e.Data)+3)
	for k, v := range e.Data {
		if err, ok := v.(error); ok {
			data[k] = err.Error()
			continue
		}
		data[k] = v
	}
	data["timestamp"] = e.Time.Format("2006-01-02T15:04:05.000Z07:00")
	data["level"] = strings.ToUpper(e.Level.String())
	data["message"] = e.Message
	if _, ok := data["caller"]; !ok {
		data["caller"] = "unknown"
	}
	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func sortedKeys(data logrus.Fields) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
