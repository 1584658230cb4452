package sqlgen

import "testing"

func TestIsReadQuery(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  bool
	}{
		{"simple select", "SELECT * FROM ai_trading.portfolio_summary", true},
		{"select with trailing semicolon", "SELECT portfolio_name FROM ai_trading.portfolio_summary;", true},
		{"lowercase select", "select ytd_return from ai_trading.portfolio_summary", true},
		{"cte", "WITH top AS (SELECT * FROM ai_trading.portfolio_summary) SELECT * FROM top", true},
		{"column named like keyword", "SELECT created_at, updated_at FROM ai_trading.portfolio_summary", true},
		{"empty", "", false},
		{"whitespace only", "   \n\t ", false},
		{"bare semicolon", ";", false},
		{"insert", "INSERT INTO ai_trading.portfolio_summary VALUES (1)", false},
		{"update", "UPDATE ai_trading.portfolio_summary SET ytd_return = 0", false},
		{"delete", "DELETE FROM ai_trading.portfolio_summary", false},
		{"drop", "DROP TABLE ai_trading.portfolio_summary", false},
		{"select hiding a drop", "SELECT 1; DROP TABLE ai_trading.portfolio_summary", false},
		{"select into ddl-ish", "SELECT * INTO backup FROM x; TRUNCATE x", false},
		{"explanatory prose", "Here is the SQL you asked for", false},
		{"delete disguised in cte", "WITH d AS (DELETE FROM x RETURNING *) SELECT * FROM d", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsReadQuery(tc.query); got != tc.want {
				t.Errorf("IsReadQuery(%q) = %v, want %v", tc.query, got, tc.want)
			}
		})
	}
}
