package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/inkspot/inkspot/internal/flagx"
	"github.com/inkspot/inkspot/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations can
// be spelled as strings like "10s" or as integer nanoseconds.
type JsonConfig struct {
	ServerBaseURL      string         `json:"server_base_url"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	SessionDB          string         `json:"session_db"`
	UnreadPollInterval timex.Duration `json:"unread_poll_interval"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when absent, nothing is loaded.
// Read or unmarshal errors panic (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.SessionDB != "" {
		cfg.SessionDB = jc.SessionDB
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.UnreadPollInterval.Duration != 0 {
		cfg.UnreadPollInterval = time.Duration(jc.UnreadPollInterval.Duration)
	}
}
