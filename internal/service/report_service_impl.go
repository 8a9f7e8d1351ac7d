package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/alexanderramin/hoursreport/internal/domain"
	rerr "github.com/alexanderramin/hoursreport/internal/errors"
	"github.com/alexanderramin/hoursreport/internal/importer"
	"github.com/alexanderramin/hoursreport/internal/layout"
	"github.com/alexanderramin/hoursreport/internal/logger"
	"github.com/alexanderramin/hoursreport/internal/projectconfig"
	"github.com/alexanderramin/hoursreport/internal/report"
	"github.com/alexanderramin/hoursreport/internal/viewer"
	"github.com/google/uuid"
)

type reportService struct {
	registry *projectconfig.Registry
	saver    WorkbookSaver
	viewer   viewer.Viewer
	history  HistoryService
	layout   layout.Options
	log      *logger.Logger
	observer UseCaseObserver

	newID func() string
	now   func() time.Time
}

// NewReportService wires the generation pipeline. A nil viewer is a no-op and
// a nil history disables run recording.
func NewReportService(
	registry *projectconfig.Registry,
	saver WorkbookSaver,
	v viewer.Viewer,
	history HistoryService,
	log *logger.Logger,
	observers ...UseCaseObserver,
) ReportService {
	if v == nil {
		v = viewer.Noop{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &reportService{
		registry: registry,
		saver:    saver,
		viewer:   v,
		history:  history,
		layout:   layout.DefaultOptions(),
		log:      log,
		observer: useCaseObserverOrNoop(observers),
		newID:    uuid.NewString,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *reportService) Generate(ctx context.Context, req GenerateRequest) (result *GenerateResult, err error) {
	startedAt := time.Now().UTC()
	runID := s.newID()
	ctx = logger.WithRun(ctx, runID, req.ConfigKey)
	log := logger.C(ctx, s.log)
	fields := map[string]any{"output": req.OutputPath}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-report",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	cfg, err := s.registry.MustGet(req.ConfigKey)
	if err != nil {
		return nil, err
	}
	if req.OutputPath == "" {
		return nil, rerr.WithField(rerr.Configf("output path is required"), "output")
	}

	files, err := inputFiles(req)
	if err != nil {
		return nil, err
	}
	fields["files"] = len(files)

	inputs, err := loadInputs(files)
	if err != nil {
		return nil, err
	}

	projects := report.Assemble(inputs, cfg)
	for _, p := range projects {
		if p.Dropped > 0 {
			log.Warn().Str("project", p.Identity.Title).Int("dropped", p.Dropped).
				Msg("sessions outside every category")
		}
	}

	opts := s.layout
	opts.TotalSheetFirst = req.TotalSheetFirst
	wb, err := layout.NewEngine(opts).Render(projects)
	if err != nil {
		return nil, err
	}
	fields["sheets"] = len(wb.Sheets)

	if err := ctx.Err(); err != nil {
		return nil, rerr.WithOp(rerr.Wrap(err, rerr.KindUnknown, "cancelled before saving"), "persist")
	}

	result = &GenerateResult{Projects: projects, SheetNames: wb.Names()}

	if req.ReopenViewer {
		wasOpen, cerr := s.viewer.Close(ctx)
		if cerr != nil {
			log.Warn().Err(cerr).Msg("closing spreadsheet viewer")
			result.Warnings = append(result.Warnings, fmt.Sprintf("could not close viewer: %v", cerr))
		}
		log.Debug().Bool("was_open", wasOpen).Msg("viewer closed")
	}

	if err := s.saver.Save(ctx, wb, req.OutputPath); err != nil {
		return nil, err
	}
	out := absPath(req.OutputPath)
	log.Info().Str("path", out).Int("sheets", len(wb.Sheets)).Msg("report saved")

	if req.ReopenViewer {
		if oerr := s.viewer.Open(ctx, out); oerr != nil {
			log.Warn().Err(oerr).Msg("opening report")
			result.Warnings = append(result.Warnings, fmt.Sprintf("could not open %s: %v", out, oerr))
		}
	}

	result.Run = s.newRun(runID, cfg.Key(), out, len(wb.Sheets), projects)
	fields["total_hours"] = result.Run.TotalHours

	if s.history != nil {
		if herr := s.history.Record(ctx, result.Run); herr != nil {
			log.Warn().Err(herr).Msg("recording run history")
			result.Warnings = append(result.Warnings, fmt.Sprintf("run history not recorded: %v", herr))
		}
	}
	return result, nil
}

func (s *reportService) newRun(id, key, out string, sheets int, projects []domain.ProjectReport) *domain.ReportRun {
	run := &domain.ReportRun{
		ID:           id,
		ConfigKey:    key,
		OutputPath:   out,
		ProjectCount: len(projects),
		SheetCount:   sheets,
		CreatedAt:    s.now(),
		Projects:     make([]domain.RunProject, 0, len(projects)),
	}
	for _, p := range projects {
		line := domain.RunProjectOf(p)
		run.TotalHours += line.Hours
		run.Projects = append(run.Projects, line)
	}
	return run
}

func inputFiles(req GenerateRequest) ([]string, error) {
	if len(req.Files) > 0 {
		return req.Files, nil
	}
	if req.DataDir == "" {
		return nil, rerr.WithField(rerr.Inputf("no input files given and no data directory configured"), "data_dir")
	}
	files, err := importer.ScanDir(req.DataDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, rerr.WithField(rerr.Inputf("no CSV files in %s", req.DataDir), "data_dir")
	}
	return files, nil
}

// loadInputs parses every file and reports all rejected files together.
func loadInputs(files []string) ([]report.Input, error) {
	inputs := make([]report.Input, 0, len(files))
	var errs []error
	for _, f := range files {
		sessions, err := importer.LoadFile(f)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		inputs = append(inputs, report.Input{SourceFile: f, Sessions: sessions})
	}
	switch len(errs) {
	case 0:
		return inputs, nil
	case 1:
		return nil, errs[0]
	default:
		return nil, rerr.WithOp(rerr.List(rerr.KindInput, "input files rejected", errs), "import")
	}
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
