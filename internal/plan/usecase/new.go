package usecase

import (
	"cooked-flow/internal/plan/repository"
	pkgLog "cooked-flow/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository // nil when no store is configured
}

// New creates a new plan UseCase instance. repo may be nil; generated plans
// are then returned without being saved and List/Detail report empty results.
func New(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
