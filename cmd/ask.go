package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bnema/wikiask-cli/internal/application"
	"github.com/bnema/wikiask-cli/internal/domain"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	progressBuffer       = 64
	progressPollInterval = 100 * time.Millisecond
)

type askOptions struct {
	rawMode    string
	asJSON     bool
	noProgress bool
}

type askOutput struct {
	Expert    string `json:"expert"`
	SessionID string `json:"session_id"`
	Mode      string `json:"mode,omitempty"`
	Response  string `json:"response"`
	ErrorKind string `json:"error_kind,omitempty"`
}

func newAskCmd(app *app) *cobra.Command {
	var opts askOptions

	cmd := &cobra.Command{
		Use:   "ask <expert> <question...>",
		Short: "Ask an expert a single question and print the reply",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, app, args[0], strings.Join(args[1:], " "), opts)
		},
	}

	cmd.Flags().StringVar(&opts.rawMode, "mode", "", "Search mode for experts that support it (fast|normal|deep)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&opts.noProgress, "no-progress", false, "Do not show progress on stderr")

	return cmd
}

func runAsk(cmd *cobra.Command, app *app, expertID, question string, opts askOptions) error {
	mode, err := app.resolveMode(opts.rawMode)
	if err != nil {
		return err
	}

	session, err := app.service.NewChat(expertID, mode)
	if err != nil {
		return err
	}
	defer session.Animator().Stop()

	ctx := cmd.Context()
	var reply domain.Message
	var submitErr error
	submit := func(ctx context.Context) error {
		reply, submitErr = session.Submit(ctx, question)
		return submitErr
	}

	switch {
	case opts.asJSON || opts.noProgress:
		_ = submit(ctx)
	case session.Expert().SupportsModes:
		runWithResearchProgress(ctx, cmd.ErrOrStderr(), session.Animator(), submit)
	default:
		if err := runWaitSpinner(ctx, cmd.ErrOrStderr(), waitLabel(session.Language(question)), submit); err != nil && submitErr == nil {
			return err
		}
	}

	var classified *domain.ClassifiedError
	if submitErr != nil && !errors.As(submitErr, &classified) {
		return submitErr
	}

	if opts.asJSON {
		if err := writeAskJSON(cmd.OutOrStdout(), app, session, reply, classified); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintln(cmd.OutOrStdout(), reply.Content); err != nil {
		return err
	}

	if classified != nil {
		return fmt.Errorf("%s did not answer: %w", session.Expert().ID, classified)
	}
	return nil
}

func writeAskJSON(out io.Writer, app *app, session *application.ChatSession, reply domain.Message, classified *domain.ClassifiedError) error {
	sessionID, _ := app.service.Sessions().Current(session.Expert().ID)
	output := askOutput{
		Expert:    string(session.Expert().ID),
		SessionID: sessionID,
		Response:  reply.Content,
	}
	if reply.Mode != nil {
		output.Mode = string(*reply.Mode)
	} else if session.Expert().SupportsModes {
		output.Mode = string(session.Mode())
	}
	if classified != nil {
		output.ErrorKind = string(classified.Kind)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// runWithResearchProgress prints each source as the animator reaches it while
// submit runs. The printer stops as soon as submit returns.
func runWithResearchProgress(ctx context.Context, out io.Writer, animator *application.ProgressAnimator, submit func(context.Context) error) {
	updates := make(chan application.Progress, progressBuffer)
	animator.OnChange(func(progress application.Progress) {
		select {
		case updates <- progress:
		default:
		}
	})

	done := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(done)
		return submit(gctx)
	})
	g.Go(func() error {
		printProgress(out, animator, updates, done)
		return nil
	})
	_ = g.Wait()
}

func printProgress(out io.Writer, animator *application.ProgressAnimator, updates <-chan application.Progress, done <-chan struct{}) {
	ticker := time.NewTicker(progressPollInterval)
	defer ticker.Stop()

	printer := progressPrinter{out: out}
	for {
		select {
		case progress := <-updates:
			printer.print(progress)
		case <-ticker.C:
			printer.print(animator.Snapshot())
		case <-done:
			printer.print(animator.Snapshot())
			return
		}
	}
}

type progressPrinter struct {
	out     io.Writer
	epoch   uint64
	printed int
}

func (p *progressPrinter) print(progress application.Progress) {
	if progress.State == application.AnimationIdle {
		return
	}
	if progress.Epoch != p.epoch {
		p.epoch = progress.Epoch
		p.printed = 0
	}

	for p.printed <= progress.Current && p.printed < len(progress.Steps) {
		step := progress.Steps[p.printed]
		_, _ = fmt.Fprintf(p.out, "%s %s\n", step.Icon, step.Name)
		p.printed++
	}
	if progress.State == application.AnimationSettling && p.printed == len(progress.Steps) && progress.Label != "" {
		_, _ = fmt.Fprintf(p.out, "✓ %s\n", progress.Label)
		p.printed++
	}
}
