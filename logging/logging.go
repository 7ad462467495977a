// Package logging wires zerolog for the front-ends
// Terminal UIs own stdout and stderr, so output only ever goes to a file
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/arena-fighter/parameter"
)

// Setup returns a disabled logger unless debug is set
// With debug, logs go to LogDir/LogFileName, rotated on startup when larger than LogMaxSize
// The stdlib logger is redirected the same way so stray log calls never reach the terminal
// A log file that cannot be opened disables logging and returns the cause for the caller to report
func Setup(debug bool) (zerolog.Logger, *os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil, nil
	}

	file, err := openLogFile()
	if err != nil {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil, err
	}

	log.SetOutput(file)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	logger := zerolog.New(file).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
	logger.Info().Int("pid", os.Getpid()).Msg("logging started")
	return logger, file, nil
}

func openLogFile() (*os.File, error) {
	if err := os.MkdirAll(parameter.LogDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log dir: %w", err)
	}

	path := filepath.Join(parameter.LogDir, parameter.LogFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > parameter.LogMaxSize {
		ext := filepath.Ext(parameter.LogFileName)
		base := parameter.LogFileName[:len(parameter.LogFileName)-len(ext)]
		rotated := filepath.Join(parameter.LogDir, fmt.Sprintf("%s_%s%s", base, time.Now().Format("20060102_150405"), ext))
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("failed to rotate log: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}
