package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "fov-demo.log"
	maxLogSize  = 10 * 1024 * 1024
	maxLogFiles = 5
)

// setupLogging discards log output unless debug is set, in which case it
// appends to logs/fov-demo.log, rotating the file once it exceeds maxLogSize.
// The terminal is owned by the screen, so logs never go to stdout or stderr
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("fov-demo-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err == nil {
			pruneLogs()
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("fov-demo logging started")
	return f
}

// pruneLogs keeps the newest maxLogFiles rotated logs
func pruneLogs() {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}
	var rotated []string
	for _, e := range entries {
		name := e.Name()
		if name != logFileName && strings.HasPrefix(name, "fov-demo-") && filepath.Ext(name) == ".log" {
			rotated = append(rotated, name)
		}
	}
	if len(rotated) <= maxLogFiles {
		return
	}
	// Timestamped names sort chronologically
	sort.Strings(rotated)
	for _, name := range rotated[:len(rotated)-maxLogFiles] {
		os.Remove(filepath.Join(logDir, name))
	}
}
