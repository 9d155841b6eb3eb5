package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tiny"
	"github.com/vango-dev/tiny/internal/describe"
	"github.com/vango-dev/tiny/internal/watch"
)

func watchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Re-render a description on every change",
		Long: `Mount FILE, then reconcile the mounted tree against the file's new
content every time it is saved. The operations of each update are printed.
Press Ctrl+C to stop.

Examples:
  tiny watch tree.yaml
  TINY_WATCH_DEBOUNCE=500ms tiny watch tree.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.runWatch(ctx, cmd, args[0])
		},
	}
	return cmd
}

func (a *app) runWatch(ctx context.Context, cmd *cobra.Command, path string) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	el, err := describe.ParseFile(path)
	if err != nil {
		return err
	}

	s := a.newSession()
	var root *tiny.Root
	if err := safely(func() { root = s.env.Render(el, s.env.Body()) }); err != nil {
		return err
	}

	printBanner(out)
	info(out, "watching %s", path)
	fmt.Fprintln(out)
	fmt.Fprintln(out, root.HTML())

	w := watch.New(watch.Config{
		Files:    []string{path},
		Debounce: a.cfg.Watch.Debounce,
		Logger:   a.logger,
	})
	w.OnChange(func(c watch.Change) {
		next, err := describe.ParseFile(path)
		if err != nil {
			errorMsg(errOut, "%s", err)
			return
		}
		var ops []tiny.Op
		if err := safely(func() { ops = root.Update(next) }); err != nil {
			errorMsg(errOut, "%s", err)
			return
		}
		success(out, "%s changed: %d operations", path, len(ops))
		printOps(out, ops)
		a.logger.Debug("re-rendered", "path", c.Path, "op", c.Op.String())
	})

	err = w.Start(ctx)
	if stderrors.Is(err, context.Canceled) {
		fmt.Fprintln(out, "\n  Stopped.")
		err = nil
	}
	if cerr := s.close(errOut); err == nil {
		err = cerr
	}
	return err
}
