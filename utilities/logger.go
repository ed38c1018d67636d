package utilities

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	infoLog  *log.Logger
	warnLog  *log.Logger
	errorLog *log.Logger
	logMutex sync.Mutex
)

// SetupLogging wires the leveled loggers to stdout and a rolling file.
func SetupLogging(logDir string) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Fatalf("Failed to create log directory: %v", err)
	}

	rolling := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "pathfinder.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
		Compress:   true,
	}

	infoWriter := io.MultiWriter(os.Stdout, rolling)
	warnWriter := io.MultiWriter(os.Stdout, rolling)
	errorWriter := io.MultiWriter(os.Stderr, rolling)

	infoLog = log.New(infoWriter, "INFO: ", log.Ldate|log.Ltime)
	warnLog = log.New(warnWriter, "WARNING: ", log.Ldate|log.Ltime)
	errorLog = log.New(errorWriter, "ERROR: ", log.Ldate|log.Ltime)

	// Override Go's default log
	log.SetOutput(infoWriter)
}

func getCallerInfo() string {
	pc, _, _, ok := runtime.Caller(3)
	if !ok {
		return "unknown"
	}
	return runtime.FuncForPC(pc).Name()
}

func logf(level string, format string, v ...interface{}) {
	logMutex.Lock()
	defer logMutex.Unlock()

	if infoLog == nil {
		log.Printf("[%s] "+format, append([]interface{}{level}, v...)...)
		return
	}

	message := fmt.Sprintf(format, v...)
	logEntry := fmt.Sprintf("[%s] %s", getCallerInfo(), message)

	switch level {
	case "WARNING":
		warnLog.Println(logEntry)
	case "ERROR":
		errorLog.Println(logEntry)
	default:
		infoLog.Println(logEntry)
	}
}

func Info(format string, v ...interface{}) {
	logf("INFO", format, v...)
}

func Warn(format string, v ...interface{}) {
	logf("WARNING", format, v...)
}

func Error(format string, v ...interface{}) {
	logf("ERROR", format, v...)
}

func Debug(format string, v ...interface{}) {
	logf("DEBUG", format, v...)
}
