package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dgallion1/docscope/internal/config"
	"github.com/dgallion1/docscope/internal/docs"
	"github.com/dgallion1/docscope/internal/library"
	"github.com/spf13/cobra"
)

var rootsFlag []string

var rootCmd = &cobra.Command{
	Use:   "docscope",
	Short: "Section-aware document explorer",
	Long: `Docscope indexes the header structure of documents (markdown, HTML, PDF,
DOCX, CSV, plain text) and serves bounded tables of contents, section
content, and per-document search, either as one-shot commands or over HTTP.`,
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&rootsFlag, "roots", nil,
		"document root directories (overrides DOC_ROOTS)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

// newService wires a document service from the environment, with any
// --roots override applied. One-shot commands log warnings only.
func newService() (*docs.Service, error) {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg := config.Load()
	if len(rootsFlag) > 0 {
		cfg.DocRoots = rootsFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lib := library.New(cfg.DocRoots, cfg.MaxFileBytes, cfg.PDFFallbackPdftotext, log)
	return docs.NewService(lib, cfg, log), nil
}
