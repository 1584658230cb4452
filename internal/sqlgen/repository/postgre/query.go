package postgre

import (
	"context"
	"database/sql"

	"financial-assistant/internal/model"
	"financial-assistant/internal/sqlgen/repository"
)

// RunQuery executes a read-only query and materializes every value as a
// string. Column set and types are unknown at compile time — the SQL was
// generated from natural language.
func (r *implRepository) RunQuery(ctx context.Context, query string) (model.ResultSet, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "sqlgen/repository/postgre.RunQuery: %v", err)
		return model.ResultSet{}, repository.ErrFailedToQuery
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		r.l.Errorf(ctx, "sqlgen/repository/postgre.RunQuery columns: %v", err)
		return model.ResultSet{}, repository.ErrFailedToQuery
	}

	rs := model.ResultSet{Columns: columns}

	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}

		if err := rows.Scan(dest...); err != nil {
			r.l.Errorf(ctx, "sqlgen/repository/postgre.RunQuery scan: %v", err)
			return model.ResultSet{}, repository.ErrFailedToQuery
		}

		row := make([]string, len(columns))
		for i, v := range values {
			if v.Valid {
				row[i] = v.String
			} else {
				row[i] = "NULL"
			}
		}
		rs.Rows = append(rs.Rows, row)
	}

	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "sqlgen/repository/postgre.RunQuery rows: %v", err)
		return model.ResultSet{}, repository.ErrFailedToQuery
	}

	return rs, nil
}
