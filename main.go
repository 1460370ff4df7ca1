package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ddvamp/transport-directory/cliconfig"
	"github.com/ddvamp/transport-directory/debugdump"
	"github.com/ddvamp/transport-directory/directory"
	"github.com/ddvamp/transport-directory/dispatch"
	"github.com/ddvamp/transport-directory/jsonio"
	"golang.org/x/exp/slog"
)

func main() {
	configPath := flag.String("config", "", "path to an optional YAML config file controlling logging")
	dumpConfigPath := flag.String("dump-config", "", "optional path to write the parsed base_requests/routing_settings as JSON, for offline inspection")
	flag.Parse()

	cfg, err := cliconfig.ReadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to read config file:", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(NewLogHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	if err := run(os.Stdin, os.Stdout, *dumpConfigPath); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// run reads one JSON config document from in, builds the directory,
// answers every stat_requests entry in order, and writes the JSON array
// of replies to out. No state persists across invocations.
func run(in io.Reader, out io.Writer, dumpConfigPath string) error {
	slog.Info("reading config document")
	input, err := jsonio.ReadInput(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if dumpConfigPath != "" {
		if err := debugdump.WriteJSON(input.Config, dumpConfigPath); err != nil {
			return fmt.Errorf("dump config: %w", err)
		}
	}

	start := time.Now()
	dir := directory.NewDirectory(input.Config)
	slog.Info("directory built",
		"stops", dir.StopCount(),
		"buses", dir.BusCount(),
		"elapsed", time.Since(start))

	responses, err := dispatch.ProcessAll(dir, input.StatRequests)
	if err != nil {
		return fmt.Errorf("process requests: %w", err)
	}

	data, err := json.Marshal(responses)
	if err != nil {
		return fmt.Errorf("encode responses: %w", err)
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write responses: %w", err)
	}
	return nil
}
