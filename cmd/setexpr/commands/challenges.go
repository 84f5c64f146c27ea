package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gosets/pkg/curriculum"
)

func newChallengesCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenges",
		Short: "Check, regenerate and grade challenge packs",
	}
	cmd.AddCommand(
		newChallengesCheckCmd(e),
		newChallengesRegenCmd(e),
		newChallengesGradeCmd(e),
	)
	return cmd
}

func newChallengesCheckCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "check PACK",
		Short: "Report challenges whose target or count disagree with their reference answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := curriculum.NewLoader(e.logger).LoadFile(args[0])
			if err != nil {
				return err
			}
			findings, err := curriculum.Audit(p)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, f := range findings {
				fmt.Fprintln(out, f)
			}
			if len(findings) > 0 {
				return fmt.Errorf("%d of %d challenges need attention", len(findings), len(p.Challenges))
			}
			fmt.Fprintf(out, "%d challenges ok\n", len(p.Challenges))
			return nil
		},
	}
}

// regen works on a single document so that include lists survive the
// rewrite.
func newChallengesRegenCmd(e *env) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "regen PACK",
		Short: "Rewrite targets and counts from the reference answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			p, err := curriculum.Decode(bytes.NewReader(data))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			changed, err := curriculum.Regenerate(p)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			for _, id := range changed {
				e.logger.Info("regenerated challenge", "id", id)
			}

			var buf bytes.Buffer
			if err := curriculum.Save(&buf, p); err != nil {
				return err
			}
			if !write {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if len(changed) == 0 {
				e.logger.Info("pack already up to date", "path", path)
				return nil
			}
			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			return os.WriteFile(path, buf.Bytes(), info.Mode().Perm())
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the pack instead of stdout")
	return cmd
}

func newChallengesGradeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "grade PACK ID ANSWER",
		Short: "Grade an answer to one challenge",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := curriculum.NewLoader(e.logger).LoadFile(args[0])
			if err != nil {
				return err
			}
			ch, ok := p.Challenge(args[1])
			if !ok {
				return fmt.Errorf("no challenge %q in %s", args[1], args[0])
			}
			u, err := p.Universe()
			if err != nil {
				return err
			}
			res, err := curriculum.Grade(u, ch, args[2])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case !res.Valid:
				fmt.Fprintln(out, "invalid:", res.Err)
			case res.Correct:
				fmt.Fprintln(out, "correct")
			default:
				fmt.Fprintln(out, "incorrect")
				if len(res.Missing) > 0 {
					fmt.Fprintln(out, "  missing:", res.Missing)
				}
				if len(res.Extra) > 0 {
					fmt.Fprintln(out, "  extra:  ", res.Extra)
				}
				if ch.Count != nil && len(res.Regions) != *ch.Count {
					fmt.Fprintf(out, "  shades %d regions, expected %d\n", len(res.Regions), *ch.Count)
				}
			}
			return nil
		},
	}
}
