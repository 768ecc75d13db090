package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel разбирает уровень из конфига, по умолчанию info
func ParseLevel(raw string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Logger printf-логгер с уровнями поверх zerolog
// Пишет JSON в stdout и, если указан файл, дублирует записи в него.
// После Close записи продолжают идти только в stdout
type Logger struct {
	mu     sync.RWMutex // Запись под RLock, Close под Lock
	zl     zerolog.Logger
	file   *os.File
	stdout io.Writer
	exitFn func(code int)
}

// New создает логгер. Пустой filePath означает только stdout
func New(filePath string, level string) (*Logger, error) {
	return newLogger(filePath, level, os.Stdout)
}

func newLogger(filePath string, level string, stdout io.Writer) (*Logger, error) {
	var (
		writer = stdout
		file   *os.File
	)

	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file %s: %w", filePath, err)
		}
		file = f
		writer = zerolog.MultiLevelWriter(stdout, f)
	}

	l := NewWithWriter(writer, level)
	l.file = file
	l.stdout = stdout
	return l, nil
}

// NewWithWriter создает логгер поверх произвольного writer (используется в тестах)
func NewWithWriter(w io.Writer, level string) *Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	return &Logger{
		zl:     zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger(),
		exitFn: os.Exit,
	}
}

// Debug пишет отладочное сообщение
func (l *Logger) Debug(format string, v ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.zl.Debug().Msgf(format, v...)
}

// Info пишет информационное сообщение
func (l *Logger) Info(format string, v ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.zl.Info().Msgf(format, v...)
}

// Warn пишет предупреждение
func (l *Logger) Warn(format string, v ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.zl.Warn().Msgf(format, v...)
}

// Error пишет ошибку
func (l *Logger) Error(format string, v ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.zl.Error().Msgf(format, v...)
}

// Fatal пишет ошибку и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.mu.RLock()
	l.zl.WithLevel(zerolog.FatalLevel).Msgf(format, v...)
	l.mu.RUnlock()
	l.Close()
	l.exitFn(1)
}

// Close закрывает файл логов, если он был открыт, и переключает вывод на stdout
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	l.zl = l.zl.Output(l.stdout)
	err := l.file.Close()
	l.file = nil
	return err
}
