package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formguard/pkg/tui"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Fill in the signup form interactively",
	Long: `Prompt for every field in display order. Messages for the edited field
and for every field that depends on it are printed after each answer.
Submitting an invalid form re-prompts the field that received focus.`,
	Args: cobra.NoArgs,
	RunE: runPrompt,
}

func init() {
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, _ []string) error {
	form, err := newForm()
	if err != nil {
		return err
	}
	session := tui.NewSession(
		tui.WithPromptDriver(tui.NewSurveyDriver(cmd.OutOrStdout())),
		tui.WithPageSize(app.cfg.PageSize),
	)

	sub, err := session.Run(cmd.Context(), form)
	switch {
	case errors.Is(err, tui.ErrAborted), errors.Is(err, tui.ErrDeclined):
		fmt.Fprintln(cmd.ErrOrStderr(), "form not submitted")
		return nil
	case err != nil:
		return err
	}
	app.logger.Info("signup completed", "valid", sub.Valid)
	return nil
}
