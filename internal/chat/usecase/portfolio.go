package usecase

import (
	"context"

	"financial-assistant/internal/chat"
	"financial-assistant/internal/sqlgen"
)

// answerPortfolio handles database-backed questions: generate SQL, guard it,
// execute it, and explain the result. Every failure becomes the fixed
// portfolio apology so the handler always produces an answer.
func (uc *implUseCase) answerPortfolio(ctx context.Context, state chat.TurnState) chat.TurnState {
	query, err := uc.sqlGen.GenerateSQL(ctx, state.ProcessedQuestion)
	if err != nil {
		uc.l.Warnf(ctx, "portfolio: SQL generation failed: %v", err)
		state.FinalAnswer = chat.MsgPortfolioUnavailable
		return state
	}

	if !sqlgen.IsReadQuery(query) {
		uc.l.Warnf(ctx, "portfolio: rejected generated query %q", query)
		state.FinalAnswer = chat.MsgPortfolioUnavailable
		return state
	}
	state.GeneratedSQL = query

	rs, err := uc.sqlGen.RunSQL(ctx, query)
	if err != nil {
		uc.l.Warnf(ctx, "portfolio: execution failed: %v", err)
		state.FinalAnswer = chat.MsgPortfolioUnavailable
		return state
	}
	state.Results = &rs

	if rs.Empty() {
		state.FinalAnswer = chat.MsgNoData
		return state
	}

	explanation, err := uc.sqlGen.Explain(ctx, sqlgen.ExplainInput{
		Question: state.ProcessedQuestion,
		SQL:      query,
		Results:  rs,
	})
	if err != nil {
		uc.l.Warnf(ctx, "portfolio: explanation failed: %v", err)
		state.FinalAnswer = chat.MsgPortfolioUnavailable
		return state
	}

	state.FinalAnswer = explanation
	return state
}
