package sqlgen

// DefaultTrainingSet returns the built-in knowledge base for the ai_trading
// schema: table/column documentation plus known-good question-SQL pairs.
// Seeded at startup and by scripts/train-knowledge.
func DefaultTrainingSet() []TrainingItem {
	return []TrainingItem{
		{
			Kind:          KindDocumentation,
			Documentation: "Table ai_trading.portfolio_summary provides aggregated summary metrics for each investment portfolio, including various time-based returns, profit figures, and net liquidity. Key columns: portfolio_name, ytd_return, ytd_profit, all_profit, net_liquidity.",
		},
		{
			Kind:          KindDocumentation,
			Documentation: "Column ai_trading.portfolio_summary.ytd_return is the Year-To-Date (YTD) percentage return of the portfolio. Key metric for annual performance.",
		},
		{
			Kind:          KindDocumentation,
			Documentation: "Column ai_trading.portfolio_summary.ytd_profit is the Year-To-Date (YTD) monetary profit (P&L) of the portfolio.",
		},
		{
			Kind:          KindDocumentation,
			Documentation: "Table ai_trading.portfolio_holdings_realized_pnl provides detailed profit and loss (P&L) information for portfolio holdings, including unrealized and realized gains/losses. Rows are timestamped in the datetime column.",
		},
		{
			Kind:     KindQuestionSQL,
			Question: "What is the best performing portfolio by YTD return?",
			SQL:      "SELECT portfolio_name, ytd_return FROM ai_trading.portfolio_summary ORDER BY ytd_return DESC LIMIT 1;",
		},
		{
			Kind:     KindQuestionSQL,
			Question: "Which portfolio has the highest all-time profit?",
			SQL:      "SELECT portfolio_name, all_profit FROM ai_trading.portfolio_summary ORDER BY all_profit DESC LIMIT 1;",
		},
		{
			Kind:     KindQuestionSQL,
			Question: "Show me my realized gains this month.",
			SQL:      "SELECT SUM(daily_realized_pnl) AS realized_gains_this_month FROM ai_trading.portfolio_holdings_realized_pnl WHERE datetime >= date_trunc('month', current_date) AND datetime < date_trunc('month', current_date) + interval '1 month';",
		},
	}
}
