package build

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/synthdocs/internal/config"
	"git.home.luguber.info/inful/synthdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/synthdocs/internal/logfields"
	"git.home.luguber.info/inful/synthdocs/internal/markdown"
)

func stageVerifyAnchors(_ context.Context, bs *State) error {
	broken := markdown.VerifyAnchors([]byte(bs.Body), markdown.Options{Tables: true})
	bs.Report.BrokenAnchors = broken
	bs.Recorder.SetBrokenAnchors(len(broken))
	if len(broken) == 0 {
		return nil
	}

	frags := make([]string, len(broken))
	for i, b := range broken {
		frags[i] = "#" + b.Fragment
	}

	if bs.Config.Build.VerifyAnchors == config.VerifyError {
		return errors.RenderError("document links to missing sections").
			WithContext("anchors", strings.Join(frags, ",")).
			Build()
	}
	for _, b := range broken {
		bs.Logger.Warn("Link to missing section", logfields.Stage(string(StageVerifyAnchors)),
			slog.String("anchor", b.Fragment), logfields.Count(b.Occurrences))
		bs.Report.AddWarning(StageVerifyAnchors, fmt.Sprintf("#%s is linked %d time(s) but no heading has that id", b.Fragment, b.Occurrences))
	}
	return nil
}
