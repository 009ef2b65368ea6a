package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/monee/internal/cli"
	"github.com/Veraticus/monee/internal/common"
	"github.com/Veraticus/monee/internal/config"
	"github.com/Veraticus/monee/internal/ledger"
	"github.com/Veraticus/monee/internal/ofx"
	"github.com/Veraticus/monee/internal/session"
	"github.com/spf13/cobra"
)

// Import formats.
const (
	formatAuto = "auto"
	formatCSV  = "csv"
	formatOFX  = "ofx"
)

func importCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from a bank export",
		Long: `Import transactions from a quoted CSV export or an OFX/QFX file.

New entries are appended after the existing ledger with fresh ids; lines
that cannot be read are skipped and counted.

Examples:
  # Import a CSV export
  monee import ~/Downloads/statement.csv

  # Preview an OFX import without saving
  monee import --dry-run ~/Downloads/checking.qfx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			return a.runImport(cmd, args[0], format, dryRun)
		},
	}

	cmd.Flags().StringP("format", "f", formatAuto, "file format (csv, ofx, auto)")
	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")
	return cmd
}

// resolveFormat picks the parser for path. auto selects OFX for .ofx and
// .qfx files and CSV for everything else.
func resolveFormat(format, path string) (string, error) {
	switch strings.ToLower(format) {
	case formatCSV:
		return formatCSV, nil
	case formatOFX:
		return formatOFX, nil
	case formatAuto, "":
		switch strings.ToLower(filepath.Ext(path)) {
		case ".ofx", ".qfx":
			return formatOFX, nil
		default:
			return formatCSV, nil
		}
	default:
		return "", fmt.Errorf("%w: unknown format %q", common.ErrInvalidInput, format)
	}
}

func (a *app) runImport(cmd *cobra.Command, path, format string, dryRun bool) error {
	format, err := resolveFormat(format, path)
	if err != nil {
		return err
	}

	path = config.ExpandPath(path)
	f, err := os.Open(path)
	if err != nil {
		return common.NewUserError("Could not open import file", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	state, store, err := a.openSession(cmd.Context())
	if err != nil {
		return err
	}
	if store != nil {
		defer func() { _ = store.Close() }()
	}

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx := handler.HandleInterrupts(cmd.Context(), "Import", store != nil && !dryRun)
	defer handler.Stop()

	slog.Info("Importing transactions", "file", filepath.Base(path), "format", format, "dry_run", dryRun)

	bar := cli.NewImportProgress(cmd.ErrOrStderr(), info.Size(), "Reading "+filepath.Base(path))
	reader := cli.TrackReader(f, bar)

	var (
		next   session.State
		result ledger.Result
	)
	switch format {
	case formatOFX:
		records, err := ofx.NewParser().ParseFile(ctx, reader)
		if err != nil {
			return common.NewUserError("Could not read OFX file", err)
		}
		next, result = session.AppendRecords(state, records)
	default:
		next, result, err = session.ImportLedgerReader(ctx, state, reader)
		if err != nil {
			return fmt.Errorf("failed to import %s: %w", path, err)
		}
	}
	_ = bar.Finish()

	if err := ctx.Err(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Imported %d transactions from %s", result.Added, filepath.Base(path))))
	if result.Skipped > 0 {
		fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("Skipped %d unreadable lines", result.Skipped)))
	}
	if result.Added > 0 {
		added := next.User().Transactions[len(state.User().Transactions):]
		fmt.Fprintln(out, cli.RenderTransactions(added))
	}

	if dryRun {
		fmt.Fprintln(out, cli.FormatInfo("Dry run complete - no data saved"))
		return nil
	}
	if store == nil {
		fmt.Fprintln(out, cli.FormatInfo("No --db configured; the import lasts for this session only"))
		return nil
	}
	if err := store.SaveUser(ctx, next.User()); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	common.LogInfo("Snapshot saved", common.Fields{"path": store.Path(), "transactions": len(next.User().Transactions)})
	return nil
}
