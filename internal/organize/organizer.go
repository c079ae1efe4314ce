package organize

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"specsort/internal/classify"
	"specsort/internal/config"
	"specsort/internal/fileutil"
	"specsort/internal/history"
	"specsort/internal/logging"
	"specsort/internal/preflight"
)

// Organizer runs the reorganization pass over a working directory.
type Organizer struct {
	cfg    *config.Config
	store  *history.Store
	logger *slog.Logger
}

// New constructs an organizer. The history store may be nil, in which case
// runs are not recorded.
func New(cfg *config.Config, store *history.Store, logger *slog.Logger) *Organizer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Organizer{
		cfg:    cfg,
		store:  store,
		logger: logger.With(logging.String(logging.FieldComponent, "organizer")),
	}
}

// Run reorganizes root in place and returns a per-file report. Individual
// file failures land in the report; the returned error is non-nil only when
// the whole pass could not start (unusable directory, unreadable root).
func (o *Organizer) Run(ctx context.Context, root string) (*Report, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, Wrap(ErrPreflight, "resolve root", root, "", err)
	}

	checks := preflight.CheckAll(root, o.cfg.Organize.MinFreeSpaceMiB)
	if failure, failed := preflight.FirstFailure(checks); failed {
		return nil, Wrap(ErrPreflight, "preflight", failure.Name, failure.Detail, nil)
	}

	report := &Report{Root: root}
	var run *history.Run
	if o.store != nil {
		if run, err = o.store.BeginRun(ctx, root); err != nil {
			o.logger.Warn("failed to record run start", logging.Error(err))
			run = nil
		} else {
			report.RunID = run.ID
			ctx = logging.WithRunID(ctx, run.ID)
		}
	}
	logger := logging.WithContext(ctx, o.logger)

	plans, err := PlanDir(root, o.cfg)
	if err != nil {
		return nil, Wrap(ErrFilesystem, "scan", root, "", err)
	}
	logger.Info("starting organization",
		logging.String("root", root),
		logging.Int("entries", len(plans)),
	)

	// Instrument binaries go first so a later failure never leaves them behind.
	for _, plan := range plans {
		if plan.Classification.Kind != classify.KindBinary {
			continue
		}
		outcome := Outcome{Name: plan.Name, Action: history.ActionDeleted}
		if err := os.Remove(filepath.Join(root, plan.Name)); err != nil {
			outcome.Action = history.ActionFailed
			outcome.Err = Wrap(ErrFilesystem, "delete binary", plan.Name, "", err)
			logger.Warn("binary deletion failed", logging.String(logging.FieldFile, plan.Name), logging.Error(err))
		} else {
			logger.Info("deleted instrument binary", logging.String(logging.FieldFile, plan.Name))
		}
		o.record(ctx, report, outcome)
	}

	createdDirs := make(map[string]struct{})
	refDir := filepath.Join(root, o.cfg.Organize.ReferenceDir)
	if err := os.MkdirAll(refDir, 0o755); err != nil {
		return nil, Wrap(ErrFilesystem, "create directory", o.cfg.Organize.ReferenceDir, "", err)
	}
	createdDirs[refDir] = struct{}{}

	for _, plan := range plans {
		switch plan.Classification.Kind {
		case classify.KindBinary:
			// handled above
		case classify.KindExcluded:
			logger.Debug("skipping excluded file", logging.String(logging.FieldFile, plan.Name))
			o.record(ctx, report, Outcome{Name: plan.Name, Action: history.ActionSkipped})
		case classify.KindMalformed:
			err := Wrap(ErrMalformedName, "classify", plan.Name, plan.Classification.Reason, nil)
			logger.Warn("unclassifiable file", logging.String(logging.FieldFile, plan.Name), logging.Error(err))
			o.record(ctx, report, Outcome{Name: plan.Name, Action: history.ActionFailed, Err: err})
		case classify.KindReference, classify.KindSample:
			o.record(ctx, report, o.apply(logger, root, plan, createdDirs))
		}
	}

	if run != nil {
		run.Moved = report.Count(history.ActionMoved)
		run.Deleted = report.Count(history.ActionDeleted)
		run.Skipped = report.Count(history.ActionSkipped)
		run.Failed = report.Count(history.ActionFailed)
		if err := o.store.FinishRun(ctx, run); err != nil {
			logger.Warn("failed to record run completion", logging.Error(err))
		}
	}

	logger.Info("organization finished",
		logging.Int("moved", report.Count(history.ActionMoved)),
		logging.Int("deleted", report.Count(history.ActionDeleted)),
		logging.Int("skipped", report.Count(history.ActionSkipped)),
		logging.Int("failed", report.Count(history.ActionFailed)),
	)
	return report, nil
}

// apply moves one reference or sample spectrum into place.
func (o *Organizer) apply(logger *slog.Logger, root string, plan Plan, createdDirs map[string]struct{}) Outcome {
	outcome := Outcome{Name: plan.Name, Destination: plan.Destination}
	src := filepath.Join(root, plan.Name)
	dst := filepath.Join(root, plan.Destination)

	dstDir := filepath.Dir(dst)
	if _, created := createdDirs[dstDir]; !created {
		if err := os.MkdirAll(dstDir, 0o755); err != nil {
			outcome.Action = history.ActionFailed
			outcome.Err = Wrap(ErrFilesystem, "create directory", filepath.Dir(plan.Destination), "", err)
			logger.Warn("directory creation failed", logging.String(logging.FieldFile, plan.Name), logging.Error(outcome.Err))
			return outcome
		}
		createdDirs[dstDir] = struct{}{}
	}

	if _, err := os.Lstat(dst); err == nil {
		same, cmpErr := fileutil.SameContent(src, dst)
		switch {
		case cmpErr != nil:
			outcome.Action = history.ActionFailed
			outcome.Err = Wrap(ErrFilesystem, "compare with destination", plan.Name, "", cmpErr)
			return outcome
		case same:
			// Same bytes already in place; leave the source untouched so
			// nothing is ever deleted on ambiguity.
			logger.Info("destination already holds identical content",
				logging.String(logging.FieldFile, plan.Name),
				logging.String("destination", plan.Destination),
			)
			outcome.Action = history.ActionSkipped
			return outcome
		case !o.cfg.Organize.OverwriteExisting:
			outcome.Action = history.ActionFailed
			outcome.Err = Wrap(ErrCollision, "move", plan.Name, "destination "+plan.Destination+" exists with different content", nil)
			logger.Warn("destination collision", logging.String(logging.FieldFile, plan.Name), logging.Error(outcome.Err))
			return outcome
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		outcome.Action = history.ActionFailed
		outcome.Err = Wrap(ErrFilesystem, "stat destination", plan.Destination, "", err)
		return outcome
	}

	if err := fileutil.MoveFile(src, dst); err != nil {
		outcome.Action = history.ActionFailed
		outcome.Err = Wrap(ErrFilesystem, "move", plan.Name, "to "+plan.Destination, err)
		logger.Warn("move failed", logging.String(logging.FieldFile, plan.Name), logging.Error(err))
		return outcome
	}

	outcome.Action = history.ActionMoved
	logger.Info("moved spectrum",
		logging.String(logging.FieldFile, plan.Name),
		logging.String("destination", plan.Destination),
	)
	return outcome
}

func (o *Organizer) record(ctx context.Context, report *Report, outcome Outcome) {
	report.add(outcome)
	if o.store == nil || report.RunID == "" {
		return
	}
	rec := history.FileRecord{
		RunID:       report.RunID,
		Name:        outcome.Name,
		Destination: outcome.Destination,
		Action:      outcome.Action,
	}
	if outcome.Err != nil {
		rec.Error = outcome.Err.Error()
	}
	if err := o.store.AddFile(ctx, rec); err != nil {
		o.logger.Warn("failed to record file outcome", logging.String(logging.FieldFile, outcome.Name), logging.Error(err))
	}
}
