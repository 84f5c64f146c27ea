package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gosets/pkg/setexpr"
)

// errNotEquivalent makes `equiv` exit non-zero for differing expressions.
var errNotEquivalent = errors.New("expressions are not equivalent")

func newTokensCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens EXPR",
		Short: "Print the tokens of an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := setexpr.Lex(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Tokens (%d)\n", len(tokens))
			for _, tok := range tokens {
				fmt.Fprintln(out, " ", tok)
			}
			return nil
		},
	}
}

func newParseCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "parse EXPR",
		Short: "Parse an expression and print its tree and simplified form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := setexpr.ParseString(args[0], e.universe)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "ast:       ", expr)
			fmt.Fprintln(out, "simplified:", setexpr.Simplify(expr))
			fmt.Fprintln(out, "sets:      ", strings.Join(setexpr.Names(expr), ", "))
			return nil
		},
	}
}

func newEvalCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR",
		Short: "Print the regions an expression denotes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := setexpr.EvaluateString(args[0], e.universe)
			if err != nil {
				return err
			}
			e.logger.Debug("evaluated", "expr", args[0], "regions", s.Len())

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "regions:  ", s)
			fmt.Fprintln(out, "count:    ", s.Len())
			fmt.Fprintln(out, "canonical:", e.universe.Expression(s))
			for _, id := range s.IDs() {
				name, err := e.universe.RegionName(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  %2d  %s\n", id, name)
			}
			return nil
		},
	}
}

func newEquivCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "equiv EXPR EXPR",
		Short: "Decide whether two expressions denote the same regions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := setexpr.Diff(args[0], args[1], e.universe)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if d.Same() {
				fmt.Fprintln(out, "equivalent")
				return nil
			}
			fmt.Fprintln(out, "not equivalent")
			if len(d.OnlyLeft) > 0 {
				fmt.Fprintln(out, "  only left: ", d.OnlyLeft)
			}
			if len(d.OnlyRight) > 0 {
				fmt.Fprintln(out, "  only right:", d.OnlyRight)
			}
			return errNotEquivalent
		},
	}
}

func newRegionsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the regions of the configured universe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sets %s, layout %s, %d regions\n",
				strings.Join(e.universe.Names(), ","), e.universe.Layout(), e.universe.Size())
			for id := 1; id <= e.universe.Size(); id++ {
				name, err := e.universe.RegionName(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  %2d  %s\n", id, name)
			}
			return nil
		},
	}
}

func newJSONLogicCmd(e *env) *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "jsonlogic EXPR",
		Short: "Export an expression as a JSON Logic rule over set membership",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := setexpr.ParseString(args[0], e.universe)
			if err != nil {
				return err
			}
			rule, err := json.MarshalIndent(setexpr.ToJSONLogic(expr), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(rule))

			if !check {
				return nil
			}
			got, err := setexpr.EvaluateJSONLogic(expr, e.universe)
			if err != nil {
				return err
			}
			if want := setexpr.Evaluate(expr, e.universe); !got.Equal(want) {
				return fmt.Errorf("rule selects %s, expression denotes %s", got, want)
			}
			e.logger.Info("rule agrees with the expression", "regions", got.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "apply the rule to every region and compare with the engine")
	return cmd
}
