package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/hoursreport/internal/db"
	"github.com/alexanderramin/hoursreport/internal/domain"
	rerr "github.com/alexanderramin/hoursreport/internal/errors"
	"github.com/alexanderramin/hoursreport/internal/repository"
)

type historyService struct {
	runs repository.RunRepo
	uow  db.UnitOfWork
	keep int
}

// NewHistoryService records runs through uow and reads through runs. keep > 0
// prunes all but the newest keep runs after each record.
func NewHistoryService(runs repository.RunRepo, uow db.UnitOfWork, keep int) HistoryService {
	return &historyService{runs: runs, uow: uow, keep: keep}
}

func (s *historyService) Record(ctx context.Context, run *domain.ReportRun) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRuns := repository.NewSQLiteRunRepo(tx)
		if err := txRuns.Create(ctx, run); err != nil {
			return err
		}
		if s.keep > 0 {
			if _, err := txRuns.Prune(ctx, s.keep); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *historyService) Recent(ctx context.Context, configKey string, limit int) ([]*domain.ReportRun, error) {
	runs, err := s.runs.ListRecent(ctx, configKey, limit)
	if err != nil {
		return nil, rerr.Wrap(err, rerr.KindPersistence, "reading run history")
	}
	return runs, nil
}

// Get accepts a full run ID or a unique prefix of one.
func (s *historyService) Get(ctx context.Context, id string) (*domain.ReportRun, error) {
	full, err := s.runs.ResolveID(ctx, id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, rerr.WithField(rerr.Inputf("no report run %q", id), "id")
	case errors.Is(err, repository.ErrAmbiguous):
		return nil, rerr.WithField(rerr.Inputf("run id prefix %q matches several runs", id), "id")
	case err != nil:
		return nil, rerr.Wrapf(err, rerr.KindPersistence, "reading run %s", id)
	}

	run, err := s.runs.GetByID(ctx, full)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, rerr.WithField(rerr.Inputf("no report run %q", id), "id")
	}
	if err != nil {
		return nil, rerr.Wrapf(err, rerr.KindPersistence, "reading run %s", id)
	}
	return run, nil
}
