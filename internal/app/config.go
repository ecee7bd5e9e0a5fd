package app

import (
	"net/http"
	"os"
	"path/filepath"
)

// HomeEnv names the environment variable overriding the default home dir.
const HomeEnv = "CALCPAD_HOME"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string       // state directory, e.g. $HOME/.calcpad
	LogLevel  string       // debug, info, warn or error
	ServerURL string       // optional calcpad server, e.g. http://127.0.0.1:8080
	HTTP      *http.Client // optional; defaults to http.DefaultClient
	Ephemeral bool         // keep state in memory instead of under Home
}

// DefaultHome returns $CALCPAD_HOME if set, otherwise ~/.calcpad.
func DefaultHome() (string, error) {
	if h := os.Getenv(HomeEnv); h != "" {
		return h, nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".calcpad"), nil
}
