package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tiny"
	"github.com/vango-dev/tiny/internal/describe"
)

func renderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Mount a description and print the resulting HTML",
		Long: `Mount a YAML or JSON element description into a fresh document and
print the container's HTML, including identifier attributes.

Examples:
  tiny render tree.yaml
  tiny render --config tiny.yaml tree.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			el, err := describe.ParseFile(args[0])
			if err != nil {
				return err
			}

			s := a.newSession()
			var root *tiny.Root
			if err := safely(func() { root = s.env.Render(el, s.env.Body()) }); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), root.HTML())
			return s.close(cmd.ErrOrStderr())
		},
	}
	return cmd
}

func diffCmd(a *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "diff OLD NEW",
		Short: "Print the operations that reconcile OLD into NEW",
		Long: `Mount OLD, reconcile it against NEW and print every INSERT, REMOVE
and MOVE operation the reconciler applied, followed by the resulting HTML.

Examples:
  tiny diff before.yaml after.yaml
  tiny diff --quiet before.yaml after.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prev, err := describe.ParseFile(args[0])
			if err != nil {
				return err
			}
			next, err := describe.ParseFile(args[1])
			if err != nil {
				return err
			}

			s := a.newSession()
			var ops []tiny.Op
			var root *tiny.Root
			err = safely(func() {
				root = s.env.Render(prev, s.env.Body())
				ops = root.Update(next)
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printOps(out, ops)
			if !quiet {
				fmt.Fprintln(out)
				fmt.Fprintln(out, root.HTML())
			}
			return s.close(cmd.ErrOrStderr())
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the operations")

	return cmd
}
