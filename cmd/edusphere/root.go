package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/edusphere-backend/internal/app"
	"github.com/heartmarshall/edusphere-backend/internal/config"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "edusphere",
		Short:         "EduSphere text-correction service",
		Long:          "EduSphere detects known error patterns in student answers and suggests matching exercises.",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to YAML config (default $CONFIG_PATH or ./config.yaml)")

	cmd.AddCommand(
		newServeCmd(opts),
		newRulesCmd(opts),
		newAnalyseCmd(opts),
		newDecideCmd(),
	)

	return cmd
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configPath != "" {
		return config.LoadFrom(o.configPath)
	}
	return config.Load()
}

// newApp builds the application with logs on stderr so stdout carries only
// command output.
func (o *rootOptions) newApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	// Offline commands need no rate limiting.
	cfg.RateLimit.Enabled = false
	return app.New(cfg, app.NewLoggerTo(cmd.ErrOrStderr(), cfg.Log))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
