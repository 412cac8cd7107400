package cli

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/local/slidetrim/internal/dedupe"
	"github.com/local/slidetrim/internal/fetch"
	"github.com/local/slidetrim/internal/filetype"
	"github.com/local/slidetrim/internal/pdf"
)

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	inputRef := args[0]

	if flagLogLevel != "" {
		lvl, err := zerolog.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q", flagLogLevel)
		}
		log.Logger = log.Logger.Level(lvl)
	}

	threshold := flagThreshold
	if !cmd.Flags().Changed("threshold") {
		threshold = appConfig.Clean.Threshold
	}
	if err := validateThreshold(threshold); err != nil {
		return err
	}

	runID := uuid.NewString()[:8]
	logg := log.With().Str("run_id", runID).Str("input", inputRef).Logger()

	localPath, tmp, err := fetch.Resolve(ctx, inputRef)
	if err != nil {
		return fmt.Errorf("resolve input %s: %w", inputRef, err)
	}
	if tmp != "" {
		defer os.Remove(tmp)
	}

	if _, err := os.Stat(localPath); err != nil {
		return fmt.Errorf("input not readable %s: %w", inputRef, err)
	}
	isPDF, mime, err := filetype.IsPDF(localPath)
	if err != nil {
		return err
	}
	if !isPDF {
		return fmt.Errorf("input is not a PDF (detected %s): %s", mime, inputRef)
	}

	outPath := flagOut
	if outPath == "" {
		outPath = defaultOutPath(inputRef, localPath, appConfig.Clean.OutputSuffix)
	}
	if !flagDryRun {
		if err := validateOutPath(outPath, localPath); err != nil {
			return err
		}
	}

	total, err := pdf.PageCount(localPath)
	if err != nil {
		return err
	}
	if total == 0 {
		return fmt.Errorf("no pages in %s", inputRef)
	}

	pages, err := pdf.Open(localPath)
	if err != nil {
		return err
	}

	normalized := make([]dedupe.NormalizedPage, len(pages))
	for i, p := range pages {
		normalized[i] = dedupe.NormalizePage(p.Index, p.Text)
		if normalized[i].TokenCount == 0 {
			logg.Warn().Int("page", i+1).Msg("no extractable text on page")
		}
	}

	decisions := dedupe.Collapse(normalized, threshold)
	kept := dedupe.KeptIndices(decisions)
	logg.Info().
		Float64("threshold", threshold).
		Int("pages", len(pages)).
		Int("kept", len(kept)).
		Msg("collapse pass complete")

	out := cmd.OutOrStdout()
	if flagVerbose {
		for _, line := range dedupe.Trace(decisions) {
			fmt.Fprintln(out, line)
		}
	}

	if flagDryRun {
		removed := dedupe.RemovedIndices(decisions)
		human := make([]int, len(removed))
		for i, idx := range removed {
			human[i] = idx + 1
		}
		fmt.Fprintf(out, "Pages to remove: %v\n", human)
		fmt.Fprintf(out, "Pages kept: %d / %d\n", len(kept), len(pages))
		return nil
	}

	if err := pdf.Write(localPath, kept, outPath); err != nil {
		return err
	}

	fmt.Fprintf(out, "Saved cleaned PDF: %s\n", outPath)
	fmt.Fprintf(out, "Pages kept: %d / %d\n", len(kept), len(pages))
	return nil
}

func validateThreshold(t float64) error {
	if t <= 0 || t > 1 {
		return fmt.Errorf("threshold must be in (0,1], got %g", t)
	}
	return nil
}

// validateOutPath rejects output paths that would clobber the input or
// point into a directory that does not exist, before any page processing.
func validateOutPath(outPath, inputPath string) error {
	absOut, err := filepath.Abs(outPath)
	if err != nil {
		return fmt.Errorf("invalid output path %s: %w", outPath, err)
	}
	absIn, err := filepath.Abs(inputPath)
	if err != nil {
		return fmt.Errorf("invalid input path %s: %w", inputPath, err)
	}
	if absOut == absIn {
		return fmt.Errorf("output path equals input path: %s", outPath)
	}
	if info, err := os.Stat(filepath.Dir(absOut)); err != nil || !info.IsDir() {
		return fmt.Errorf("output directory does not exist: %s", filepath.Dir(outPath))
	}
	return nil
}

// defaultOutPath derives "<stem><suffix><ext>" next to the input. Local
// refs (plain paths and file://) use the resolved local path, so the output
// lands beside the source document; remote refs resolve to their base name
// in the working directory, since localPath is then a temp download.
func defaultOutPath(inputRef, localPath, suffix string) string {
	ref := inputRef
	if i := strings.Index(ref, "#"); i >= 0 {
		ref = ref[:i]
	}

	base := localPath
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "s3://") {
		base = path.Base(ref)
	}

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = ".pdf"
	}
	return stem + suffix + ext
}
