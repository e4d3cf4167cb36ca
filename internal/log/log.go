// Package log is a thin adapter around glog with optional structured logging
// via slog.
//
// By default it uses glog and its flags. Structured logging is enabled only
// when the --log-fmt flag is explicitly set.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/golang/glog"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("log")

// Flush ensures any pending I/O is written.
var Flush = glog.Flush

var (
	logFormat = "tint"
	logLevel  = "info"

	// structured selects slog over glog.
	structured atomic.Bool

	output io.Writer = os.Stderr
)

// RegisterFlags installs log flags on the given FlagSet.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVar(&logFormat, "log-fmt", logFormat, "format for structured logging output: json, logfmt or tint")
	fs.StringVar(&logLevel, "log-level", logLevel, "minimum structured logging level: debug, info, warn or error")
}

// Init configures logging based on the parsed flags.
func Init(fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}

	formatFlag := fs.Lookup("log-fmt")
	if formatFlag == nil || !formatFlag.Changed {
		return nil
	}

	level, err := slogLevel(logLevel)
	if err != nil {
		return err
	}

	handler, err := slogHandler(logFormat, output, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	})
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(handler))
	structured.Store(true)

	return nil
}

func slogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, Error.New("invalid log-level %q: expected debug, info, warn or error", level)
	}
}

// slogHandler returns a handler writing format to w. The tint handler only
// colours its output when w is a terminal.
func slogHandler(format string, w io.Writer, opts *slog.HandlerOptions) (slog.Handler, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	case "logfmt":
		return slog.NewTextHandler(w, opts), nil
	case "tint":
		return tint.NewHandler(w, &tint.Options{
			AddSource:  opts.AddSource,
			Level:      opts.Level,
			TimeFormat: time.Kitchen,
			NoColor:    !terminal(w),
		}), nil
	default:
		return nil, Error.New("invalid log-fmt %q: expected json, logfmt or tint", format)
	}
}

func terminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func logS(level slog.Level, msg string, args ...any) {
	if !structured.Load() {
		logGlog(level, msg, args...)
		return
	}

	logger := slog.Default()

	ctx := context.Background()
	if !logger.Enabled(ctx, level) {
		return
	}

	// Skip runtime.Callers, logS and the exported helper.
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	record := slog.NewRecord(time.Now(), level, msg, pcs[0])
	record.Add(args...)

	_ = logger.Handler().Handle(ctx, record)
}

func logGlog(level slog.Level, msg string, args ...any) {
	// Skip logGlog, logS and the exported helper.
	const depth = 3

	args = append([]any{msg}, args...)

	switch level {
	case slog.LevelWarn:
		glog.WarningDepth(depth, args...)
	case slog.LevelError:
		glog.ErrorDepth(depth, args...)
	case slog.LevelDebug:
		if glog.V(1) {
			glog.InfoDepth(depth, args...)
		}
	default:
		glog.InfoDepth(depth, args...)
	}
}

// InfoS logs at the Info level.
func InfoS(msg string, args ...any) {
	logS(slog.LevelInfo, msg, args...)
}

// WarnS logs at the Warn level.
func WarnS(msg string, args ...any) {
	logS(slog.LevelWarn, msg, args...)
}

// DebugS logs at the Debug level.
func DebugS(msg string, args ...any) {
	logS(slog.LevelDebug, msg, args...)
}

// ErrorS logs at the Error level.
func ErrorS(msg string, args ...any) {
	logS(slog.LevelError, msg, args...)
}

// SetLogger replaces the structured logger. The returned function restores
// the previous one.
func SetLogger(logger *slog.Logger) func() {
	if logger == nil {
		return func() {}
	}

	previousEnabled := structured.Load()
	previousDefault := slog.Default()

	slog.SetDefault(logger)
	structured.Store(true)

	return func() {
		slog.SetDefault(previousDefault)
		structured.Store(previousEnabled)
	}
}
