package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"NotesBuddy/internal/export"
	"NotesBuddy/internal/state"
	"NotesBuddy/internal/storage"
	"NotesBuddy/internal/ui"
)

func main() {
	logLevel := flag.String("log-level", "info", "logging level (debug, info, warn, error)")
	dataPath := flag.String("data", defaultDataPath(), "path to the settings database")
	exportDir := flag.String("export-dir", defaultExportDir(), "directory receiving exported pages")
	flag.Parse()

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logrus.WithField("log-level", *logLevel).Fatal("unrecognized log level")
	}
	logrus.SetLevel(level)

	settings := openSettings(*dataPath)
	if closer, ok := settings.(*storage.SQLite); ok {
		defer closer.Close()
	}

	ui.RunApp(ui.Deps{
		Settings: settings,
		Strokes:  state.NewStore(nil),
		Exporter: export.New(*exportDir),
	})
}

// openSettings falls back to an in-memory store when the database
// cannot be opened; the notebook stays usable, changes just don't
// survive a restart.
func openSettings(path string) storage.Store {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logrus.WithError(err).Warn("settings directory unavailable, changes will not persist")
		return storage.NewMemory()
	}
	s, err := storage.OpenSQLite(path)
	if err != nil {
		logrus.WithError(err).Warn("settings database unavailable, changes will not persist")
		return storage.NewMemory()
	}
	return s
}

func defaultDataPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "notesbuddy.db"
	}
	return filepath.Join(dir, "notesbuddy", "settings.db")
}

func defaultExportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	downloads := filepath.Join(home, "Downloads")
	if info, err := os.Stat(downloads); err == nil && info.IsDir() {
		return downloads
	}
	return home
}
