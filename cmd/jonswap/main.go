package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RyanBlaney/jonswap/logging"
	"github.com/RyanBlaney/jonswap/wavemaker"
	"github.com/RyanBlaney/jonswap/wavemaker/config"
)

var configPath = flag.String("config", "", "Path to a YAML configuration file (defaults apply when empty)")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Fatal(err, "Failed to load config")
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		logging.Warn("Falling back to info logging", logging.Fields{"level": cfg.Logging.Level})
	}
	logging.SetLevel(level)

	ctx := logging.ContextWithFields(context.Background(), logging.Fields{"config": *configPath})
	s, err := wavemaker.Run(ctx, cfg)
	if err != nil {
		logging.Fatal(err, "Run failed")
	}

	if cfg.Output.TablePath != "" {
		if err := writeTable(s, cfg.Output); err != nil {
			logging.Fatal(err, "Failed to write spectrum table", logging.Fields{"path": cfg.Output.TablePath})
		}
		logging.Info("Spectrum table written", logging.Fields{"path": cfg.Output.TablePath})
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(s.Summary()); err != nil {
		logging.Fatal(err, "Failed to encode summary")
	}
	if err := enc.Close(); err != nil {
		logging.Fatal(err, "Failed to flush summary")
	}
}

func writeTable(s *wavemaker.Spectrum, out config.OutputConfig) error {
	samples, err := s.Parameters().Sample(out.SampleStart, out.SampleStop, out.SampleStep)
	if err != nil {
		return err
	}

	f, err := os.Create(out.TablePath)
	if err != nil {
		return fmt.Errorf("failed to create table file: %w", err)
	}
	if err := wavemaker.WriteTable(f, samples); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
