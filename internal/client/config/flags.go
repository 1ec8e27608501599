package config

import (
	"flag"
	"os"
	"time"

	"github.com/inkspot/inkspot/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend server (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-f string   path of the local session database file
//	-i int      unread poll interval in seconds (default from Config)
//
// The function filters os.Args to only include the flags it knows about, so
// it does not interfere with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-f", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the backend server")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.SessionDB, "f", cfg.SessionDB, "path of the local session database")
	pollInterval := fs.Int("i", int(cfg.UnreadPollInterval.Seconds()), "unread poll interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.UnreadPollInterval = time.Duration(*pollInterval) * time.Second
}
