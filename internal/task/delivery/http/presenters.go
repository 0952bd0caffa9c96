package http

import (
	"time"

	"duedate-service/internal/task"
	"duedate-service/pkg/response"
)

// --- Request DTOs ---

type parseReq struct {
	Title string `json:"title" binding:"required,min=1,max=1000"`
	// ReferenceTime optionally pins "now" (RFC3339). Defaults to server time.
	ReferenceTime string `json:"reference_time" binding:"omitempty"`
}

func (r parseReq) toInput() (task.ExtractInput, error) {
	ref, err := parseReferenceTime(r.ReferenceTime)
	if err != nil {
		return task.ExtractInput{}, err
	}
	return task.ExtractInput{
		Title:         r.Title,
		ReferenceTime: ref,
	}, nil
}

type parseBulkReq struct {
	Titles        []string `json:"titles" binding:"required,min=1"`
	ReferenceTime string   `json:"reference_time" binding:"omitempty"`
}

func (r parseBulkReq) toInput() (task.ExtractBulkInput, error) {
	ref, err := parseReferenceTime(r.ReferenceTime)
	if err != nil {
		return task.ExtractBulkInput{}, err
	}
	return task.ExtractBulkInput{
		Titles:        r.Titles,
		ReferenceTime: ref,
	}, nil
}

func parseReferenceTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	ref, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errInvalidReferenceTime
	}
	return ref, nil
}

// --- Response DTOs ---

type parseResp struct {
	Found        bool                `json:"found"`
	Title        string              `json:"title"`
	CleanedTitle string              `json:"cleaned_title"`
	DueDate      *response.Date      `json:"due_date,omitempty"`
	DueTime      *response.TimeOfDay `json:"due_time,omitempty"`
	MatchedText  string              `json:"matched_text,omitempty"`
	MatchStart   int                 `json:"match_start"`
	MatchEnd     int                 `json:"match_end"`
}

func newParseResp(out task.ExtractOutput) parseResp {
	resp := parseResp{
		Found:        out.Found,
		Title:        out.Task.Title,
		CleanedTitle: out.Task.CleanedTitle,
		MatchedText:  out.Task.MatchedText,
		MatchStart:   out.MatchStart,
		MatchEnd:     out.MatchEnd,
	}
	if out.Found {
		d := response.Date(out.Task.DueDate)
		resp.DueDate = &d
	}
	if out.Task.HasDueTime {
		t := response.TimeOfDay(out.Task.DueTime)
		resp.DueTime = &t
	}
	return resp
}

type parseBulkResp struct {
	Items      []parseResp `json:"items"`
	Count      int         `json:"count"`
	FoundCount int         `json:"found_count"`
}

func newParseBulkResp(out task.ExtractBulkOutput) parseBulkResp {
	items := make([]parseResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newParseResp(item)
	}
	return parseBulkResp{
		Items:      items,
		Count:      out.Count,
		FoundCount: out.FoundCount,
	}
}
