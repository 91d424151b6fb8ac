// Command survey-console is the terminal rendition of the survey administration console.
// It talks to the API through internal/apiclient with the static X-API-Key header.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"survey-console/configs"
	"survey-console/internal/apiclient"
	"survey-console/internal/config"
	"survey-console/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// console carries what every subcommand needs once flags are parsed.
type console struct {
	client *apiclient.Client
	log    *zap.Logger

	apiURL  string
	apiKey  string
	timeout time.Duration
	verbose bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &console{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "survey-console",
		Short: "Administer users, roles and surveys from the terminal",
		Long: `survey-console manages the survey administration API.

Connection settings come from CONSOLE_API_URL, CONSOLE_API_KEY and
CONSOLE_TIMEOUT (seconds); the --api-url, --api-key and --timeout flags
take precedence.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.log.Sync()
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&c.apiURL, "api-url", "", "API base URL (or set CONSOLE_API_URL)")
	root.PersistentFlags().StringVar(&c.apiKey, "api-key", "", "API key (or set CONSOLE_API_KEY)")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 0, "Request timeout (or set CONSOLE_TIMEOUT)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		c.usersCmd(),
		c.rolesCmd(),
		c.surveysCmd(),
		c.structureCmd(),
		c.editorCmd(),
		c.dashboardCmd(),
		c.questionTypesCmd(),
		c.healthCmd(),
	)
	return root
}

func (c *console) setup(cmd *cobra.Command, args []string) error {
	cfg, err := configs.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.API.URL = c.apiURL
	}
	if flags.Changed("api-key") {
		cfg.API.Key = c.apiKey
	}
	if flags.Changed("timeout") {
		if c.timeout <= 0 {
			return fmt.Errorf("--timeout must be positive, got %s", c.timeout)
		}
		cfg.API.Timeout = c.timeout
	}
	if c.verbose {
		cfg.Log.Level = "debug"
	}

	c.log = logger.New(config.LoggerConfig{Env: "development", Level: cfg.Log.Level}, cmd.ErrOrStderr())
	c.client = apiclient.New(cfg.API.URL, cfg.API.Key, cfg.API.Timeout)
	c.log.Debug("Console configured",
		zap.String("api_url", cfg.API.URL),
		zap.Bool("api_key_set", cfg.API.Key != ""),
		zap.Duration("timeout", cfg.API.Timeout))
	return nil
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
