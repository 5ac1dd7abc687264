package main

import (
	"github.com/spf13/cobra"

	"javapy/internal/buildpipeline"
	"javapy/internal/ui"
)

// runWithProgress runs work with a progress sink on stderr: the Bubble
// Tea view when enabled, plain lines otherwise, nothing with --quiet.
func (a *app) runWithProgress(cmd *cobra.Command, title string, mode uiMode, work func(buildpipeline.ProgressSink) error) error {
	errOut := cmd.ErrOrStderr()
	if !shouldUseTUI(mode, errOut) {
		var sink buildpipeline.ProgressSink
		if !a.quiet {
			sink = ui.NewLineSink(errOut)
		}
		return work(sink)
	}

	events := make(chan buildpipeline.Event, 256)
	workErr := make(chan error, 1)
	go func() {
		workErr <- work(buildpipeline.ChannelSink{Ch: events})
		close(events)
	}()

	uiErr := ui.Run(errOut, title, nil, events)
	// view may quit early (ctrl+c); keep the producer unblocked
	for range events {
	}
	err := <-workErr
	if uiErr != nil {
		return uiErr
	}
	return err
}
