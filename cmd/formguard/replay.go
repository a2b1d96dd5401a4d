package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formguard/pkg/script"
)

var replayFlags struct {
	expectValid bool
}

var replayCmd = &cobra.Command{
	Use:   "replay <script>...",
	Short: "Replay scripted events against a fresh signup form",
	Long: `Replay JSON or YAML scripts of set/submit steps and print a YAML
transcript with the messages visible after each step.

Examples:
  # Print the transcript of a script
  formguard replay scripts/postal.yaml

  # Fail unless the last submit of every script is valid
  formguard replay --expect-valid scripts/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().BoolVar(&replayFlags.expectValid, "expect-valid", false, "fail when the last submit of a script is invalid")
}

func runReplay(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		s, err := script.LoadFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
		if err != nil {
			return err
		}
		form, err := newForm()
		if err != nil {
			return err
		}
		transcript, err := script.Replay(form, s)
		if err != nil {
			return fmt.Errorf("replay %s: %w", path, err)
		}
		if transcript.Name == "" {
			transcript.Name = path
		}
		if err := transcript.WriteYAML(cmd.OutOrStdout()); err != nil {
			return err
		}
		if replayFlags.expectValid && !lastSubmitValid(transcript) {
			return fmt.Errorf("replay %s: last submit was not valid", path)
		}
	}
	return nil
}

func lastSubmitValid(t script.Transcript) bool {
	for i := len(t.Frames) - 1; i >= 0; i-- {
		if t.Frames[i].Valid != nil {
			return *t.Frames[i].Valid
		}
	}
	return false
}
