package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/minhyannv/jobsync-ai/pkg/chat"
	configpkg "github.com/minhyannv/jobsync-ai/pkg/config"
)

const rootLongDesc string = `Chat with JobSync AI, a career assistant backed by a hosted model.

Type a message and press Enter. Type "exit" or "quit" to leave.

The API key is read from GEMINI_API_KEY (or OPENAI_API_KEY with
--provider openai). JOBSYNC_PROVIDER sets the provider when --provider is
not given. A .env file in the working directory is loaded first.

Examples:
  jobsync
  jobsync --name Ada --markdown
  jobsync --provider openai --model gpt-4o-mini`

// cliFlags holds raw flag values before they are merged into a Config.
type cliFlags struct {
	configFile string
	provider   string
	model      string
	baseURL    string
	user       string
	persona    string
	json       bool
	markdown   bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}

	cmd := &cobra.Command{
		Use:           "jobsync",
		Short:         "Chat with the JobSync AI career assistant",
		Long:          rootLongDesc,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()

			cfg, err := resolveConfig(cmd, flags, os.Getenv)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, runDeps{
				newSender: chat.NewSender,
				render:    markdownRenderer(os.Stdout, cfg.Markdown),
				in:        cmd.InOrStdin(),
				out:       cmd.OutOrStdout(),
				errOut:    cmd.ErrOrStderr(),
			})
		},
	}

	bindFlags(cmd, flags)
	return cmd
}

func bindFlags(cmd *cobra.Command, flags *cliFlags) {
	f := cmd.Flags()
	f.StringVarP(&flags.configFile, "config", "c", "", "Path to a YAML config file")
	f.StringVarP(&flags.provider, "provider", "p", configpkg.ProviderGemini, "Model provider: gemini or openai")
	f.StringVarP(&flags.model, "model", "m", "", "Model name (default depends on provider)")
	f.StringVar(&flags.baseURL, "base-url", "", "Override the provider API base URL")
	f.StringVarP(&flags.user, "name", "n", "", "Your name; asked interactively when empty")
	f.StringVar(&flags.persona, "persona", "", "Markdown persona file with YAML front matter")
	f.BoolVar(&flags.json, "json", false, "Print each turn as a JSON record")
	f.BoolVar(&flags.markdown, "markdown", false, "Render replies as markdown when stdout is a terminal")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "Verbose logging to stderr")
}

// resolveConfig merges defaults, the optional config file, the environment
// and explicitly set flags, in increasing order of precedence.
func resolveConfig(cmd *cobra.Command, flags *cliFlags, getenv func(string) string) (configpkg.Config, error) {
	cfg := configpkg.DefaultConfig()
	if path := strings.TrimSpace(flags.configFile); path != "" {
		loaded, err := configpkg.LoadFile(path, cfg)
		if err != nil {
			return configpkg.Config{}, err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if v := strings.TrimSpace(getenv("JOBSYNC_PROVIDER")); v != "" {
		cfg.Provider = v
	}
	if changed("provider") {
		cfg.Provider = flags.provider
	}
	cfg = configpkg.FromEnv(cfg, getenv)

	if changed("model") {
		cfg.Model = flags.model
	}
	if changed("base-url") {
		cfg.BaseURL = flags.baseURL
	}
	if changed("name") {
		cfg.User = flags.user
	}
	if changed("persona") {
		cfg.PersonaFile = flags.persona
	}
	if changed("json") {
		cfg.JSON = flags.json
	}
	if changed("markdown") {
		cfg.Markdown = flags.markdown
	}
	if changed("verbose") {
		cfg.Verbose = flags.verbose
	}
	return configpkg.Normalize(cfg), nil
}
