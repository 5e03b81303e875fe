package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Define log levels
const (
	DEBUG = iota
	INFO
	WARN
	ERROR
)

var (
	mu           sync.Mutex
	currentLevel = INFO
	outLogger    = log.New(os.Stdout, "", 0)
	errLogger    = log.New(os.Stderr, "", 0)
)

// SetLogLevel accepts debug, info, warn or error. Anything else means info.
func SetLogLevel(level string) {
	mu.Lock()
	defer mu.Unlock()

	switch strings.ToLower(level) {
	case "debug":
		currentLevel = DEBUG
	case "warn":
		currentLevel = WARN
	case "error":
		currentLevel = ERROR
	default:
		currentLevel = INFO
	}
}

// SetOutput redirects Debug and Info to out, Warn and Error to errOut.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	outLogger.SetOutput(out)
	errLogger.SetOutput(errOut)
}

func logf(logger *log.Logger, level int, name string, format string, args ...any) {
	mu.Lock()
	enabled := currentLevel <= level
	mu.Unlock()
	if !enabled {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	logger.Printf("[%s] %s: %s\n", timestamp, name, fmt.Sprintf(format, args...))
}

func Debug(format string, args ...any) {
	logf(outLogger, DEBUG, "DEBUG", format, args...)
}

func Info(format string, args ...any) {
	logf(outLogger, INFO, "INFO", format, args...)
}

func Warn(format string, args ...any) {
	logf(errLogger, WARN, "WARN", format, args...)
}

func Error(format string, args ...any) {
	logf(errLogger, ERROR, "ERROR", format, args...)
}
