package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"podopml/internal/app"
	"podopml/internal/config"
	"podopml/internal/domain"
	"syscall"

	"github.com/spf13/cobra"
)

const usageLine = "Usage: podopml <input_json_file> <output_opml_file>"

// run выполняет команду и возвращает код завершения процесса.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand(stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		var usageErr *domain.UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintln(stdout, usageLine)
			return 1
		}
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCommand(logOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "podopml <input_json_file> <output_opml_file>",
		Short: "Convert a podcast episode export into an OPML outline",
		Long: `Reads a JSON array of episode records (feedTitle, feedUrl, episodeUrl,
episodeGuid, episodeStatus, minLeft), groups the episodes by feed title
and writes an OPML 2.0 document. The input may be a local path or an
http(s) URL. The output file is replaced only after the whole document
has been built.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return &domain.UsageError{Got: len(args)}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(config.New(), logOut)
			if err != nil {
				return err
			}
			return a.Run(cmd.Context(), args[0], args[1])
		},
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &domain.UsageError{Got: -1}
	})
	return rootCmd
}
