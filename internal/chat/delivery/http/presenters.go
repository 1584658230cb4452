package http

import (
	"financial-assistant/internal/chat"
	"financial-assistant/internal/model"
)

// --- Request DTOs ---

type messageReq struct {
	Role    string `json:"role"    binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

type askReq struct {
	Question       string       `json:"question" binding:"required,max=2000"`
	History        []messageReq `json:"history"  binding:"max=50,dive"`
	UserID         string       `json:"user_id"`
	ConversationID string       `json:"conversation_id"`
}

func (r askReq) validate() error { return nil }

func (r askReq) toScope() model.Scope {
	return model.Scope{
		UserID:         r.UserID,
		ConversationID: r.ConversationID,
	}
}

func (r askReq) toInput() chat.AskInput {
	history := make([]model.Message, len(r.History))
	for i, msg := range r.History {
		history[i] = model.Message{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}
	return chat.AskInput{
		Question: r.Question,
		History:  history,
	}
}

// --- Response DTOs ---

type resultsResp struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

type askResp struct {
	Answer       string       `json:"answer"`
	GeneratedSQL string       `json:"generated_sql,omitempty"`
	Results      *resultsResp `json:"results,omitempty"`
}

func (h *handler) newAskResp(out chat.AskOutput) askResp {
	resp := askResp{
		Answer:       out.Answer,
		GeneratedSQL: out.GeneratedSQL,
	}
	if out.Results != nil {
		resp.Results = &resultsResp{
			Columns: out.Results.Columns,
			Rows:    out.Results.Rows,
		}
	}
	return resp
}
