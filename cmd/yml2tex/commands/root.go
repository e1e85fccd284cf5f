// Package commands wires up the yml2tex command line interface.
package commands

import (
	"bufio"
	"embed"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthurkoziel/yml2tex/internal/version"
	"github.com/arthurkoziel/yml2tex/pkg/cobrax/topics"
	"github.com/arthurkoziel/yml2tex/pkg/config"
	"github.com/arthurkoziel/yml2tex/pkg/document"
	"github.com/arthurkoziel/yml2tex/pkg/highlight"
	"github.com/arthurkoziel/yml2tex/pkg/logging"
	"github.com/arthurkoziel/yml2tex/pkg/metas"
	"github.com/arthurkoziel/yml2tex/pkg/render"
)

//go:embed topics
var topicsFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "yml2tex <input.yml>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], configPath)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", MsgFlagConfig)

	rootCmd.AddCommand(newCompletionCmd())

	// Topic-based help with embedded docs; markdown topics render
	// through glamour.
	if sub, err := fs.Sub(topicsFS, "topics"); err == nil {
		opts := topics.Options{
			Extensions: []string{".txt", ".md"},
			Renderer:   topics.NewGlamourRenderer(),
		}
		_ = topics.Initialize(rootCmd, sub, opts)
	}

	return rootCmd
}

// runConvert is the whole pipeline: load config and document, resolve
// metadata, render, write to stdout. Strictly sequential; the first
// error halts the run with no partial output.
func runConvert(cmd *cobra.Command, inputPath, configPath string) error {
	logger := logging.GetLogger("cmd")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	doc, err := document.Load(inputPath)
	if err != nil {
		return err
	}

	meta, body, err := metas.Resolve(doc, cfg.BaseMetadata())
	if err != nil {
		return err
	}

	hl := highlight.Select(cfg.Highlight.Enabled, meta.HighlightStyle)
	logger.Debug().
		Str("input", inputPath).
		Str("theme", meta.Theme).
		Bool("highlight", cfg.Highlight.Enabled).
		Msg("rendering document")

	renderer := render.New(meta, hl, filepath.Dir(inputPath))
	fragments, err := renderer.Render(body)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, frag := range fragments {
		if _, err := w.WriteString(frag); err != nil {
			return err
		}
	}
	return w.Flush()
}
