package usecase

import (
	"context"
	"strings"

	"financial-assistant/internal/model"
	"financial-assistant/internal/sqlgen"
)

// RunSQL executes a generated query after the read-only guard.
func (uc *implUseCase) RunSQL(ctx context.Context, query string) (model.ResultSet, error) {
	if strings.TrimSpace(query) == "" {
		return model.ResultSet{}, sqlgen.ErrEmptySQL
	}
	if !sqlgen.IsReadQuery(query) {
		uc.l.Warnf(ctx, "RunSQL: rejected non-read query %q", query)
		return model.ResultSet{}, sqlgen.ErrNotReadQuery
	}

	rs, err := uc.dataRepo.RunQuery(ctx, query)
	if err != nil {
		return model.ResultSet{}, err
	}

	uc.l.Infof(ctx, "RunSQL: %s", rs.Summary())
	return rs, nil
}
