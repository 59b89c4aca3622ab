package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Veraticus/wastewise/internal/advisor"
	"github.com/Veraticus/wastewise/internal/cli"
	"github.com/Veraticus/wastewise/internal/common"
	"github.com/Veraticus/wastewise/internal/model"
	"github.com/Veraticus/wastewise/internal/session"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [photo]",
		Short: "Classify a waste item and show what to do with it",
		Long: `Classify a photo of a waste item and print the recommended actions,
best option first.

Examples:
  wastewise classify bottle.jpg             # Classify a photo
  wastewise classify                        # Classify without a photo
  wastewise classify bottle.jpg --seed 42   # Reproducible selection
  wastewise classify --latency 0            # Skip the simulated analysis time`,
		Args: cobra.MaximumNArgs(1),
		RunE: runClassify,
	}

	addClassifierFlags(cmd)
	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	sample := advisor.Sample{Name: "camera capture"}
	if len(args) == 1 {
		sample, err = advisor.SampleFromFile(args[0])
		if err != nil {
			return common.NewUserError(fmt.Sprintf("Could not read %s", args[0]), err)
		}
	}

	out := cmd.OutOrStdout()
	handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx := handler.HandleInterrupts(cmd.Context(), "")
	defer handler.Stop()

	sess := session.New(newAdvisor(cfg, cat))
	defer sess.Reset()

	if err := sess.ProvideSample(sample); err != nil {
		return err
	}

	result, err := classifyWithSpinner(ctx, sess, cmd.ErrOrStderr(), cfg.Latency > 0)
	if err != nil {
		if handler.WasInterrupted() {
			return nil
		}
		if errors.Is(err, common.ErrClassificationUnavailable) {
			return common.NewUserError("Classification is unavailable right now, please try again", err)
		}
		return err
	}

	common.LogDebug("Classified sample", common.Fields{
		"sample":    sample.Name,
		"material":  result.Profile.Material,
		"result_id": result.ID,
	})
	_, err = fmt.Fprintln(out, cli.RenderResult(result))
	return err
}

// classifyWithSpinner runs the classification while a spinner shows progress on w.
func classifyWithSpinner(ctx context.Context, sess *session.Session, w io.Writer, show bool) (*model.ClassificationResult, error) {
	if !show {
		return sess.Classify(ctx)
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetDescription("[green]Analyzing with AI...[reset]"),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := bar.Add(1); err != nil {
					slog.Warn("Failed to update spinner", "error", err)
				}
			}
		}
	}()

	result, err := sess.Classify(ctx)
	close(done)
	if finishErr := bar.Finish(); finishErr != nil {
		slog.Warn("Failed to finish spinner", "error", finishErr)
	}
	return result, err
}
