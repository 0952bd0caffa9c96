package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"duedate-service/internal/model"
	"duedate-service/internal/task"
)

// Extract parses a single task title for an embedded due-date expression.
func (uc *implUseCase) Extract(ctx context.Context, input task.ExtractInput) (task.ExtractOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.ExtractOutput{}, task.ErrEmptyTitle
	}

	now := input.ReferenceTime
	if now.IsZero() {
		now = time.Now()
	}

	key := cacheKey(title, now)
	if uc.cache != nil {
		if out, ok := uc.cache.Get(key); ok {
			uc.l.Debugf(ctx, "task.Extract: cache hit for %q", title)
			return out, nil
		}
	}

	out := uc.extract(title, now)
	if uc.cache != nil {
		uc.cache.Add(key, out)
	}

	uc.l.Infof(ctx, "task.Extract: found=%v matched=%q", out.Found, out.Task.MatchedText)
	return out, nil
}

// ExtractBulk parses a batch of titles. Individual titles that are empty
// after trimming are reported as not-found rather than failing the batch.
func (uc *implUseCase) ExtractBulk(ctx context.Context, input task.ExtractBulkInput) (task.ExtractBulkOutput, error) {
	if len(input.Titles) == 0 {
		return task.ExtractBulkOutput{}, task.ErrNoTitles
	}
	if len(input.Titles) > task.MaxBulkTitles {
		return task.ExtractBulkOutput{}, fmt.Errorf("%w: got %d, max %d",
			task.ErrTooManyTitles, len(input.Titles), task.MaxBulkTitles)
	}

	out := task.ExtractBulkOutput{
		Items: make([]task.ExtractOutput, 0, len(input.Titles)),
	}
	for _, title := range input.Titles {
		item, err := uc.Extract(ctx, task.ExtractInput{
			Title:         title,
			ReferenceTime: input.ReferenceTime,
		})
		if err != nil {
			// Empty line in a batch: keep position, mark as no match.
			trimmed := strings.TrimSpace(title)
			item = task.ExtractOutput{Task: model.Task{Title: trimmed, CleanedTitle: trimmed}}
		}
		if item.Found {
			out.FoundCount++
		}
		out.Items = append(out.Items, item)
	}
	out.Count = len(out.Items)

	uc.l.Infof(ctx, "task.ExtractBulk: %d/%d titles carried a due date", out.FoundCount, out.Count)
	return out, nil
}

func (uc *implUseCase) extract(title string, now time.Time) task.ExtractOutput {
	res, ok := uc.parser.Parse(title, now)
	if !ok {
		return task.ExtractOutput{
			Task: model.Task{Title: title, CleanedTitle: title},
		}
	}
	return task.ExtractOutput{
		Found: true,
		Task: model.Task{
			Title:        title,
			CleanedTitle: res.CleanedTitle(title),
			DueDate:      res.Date,
			DueTime:      res.Time,
			HasDueTime:   res.HasTime,
			MatchedText:  res.MatchedText,
		},
		MatchStart: res.MatchStart,
		MatchEnd:   res.MatchEnd,
	}
}

// cacheKey buckets results by minute so relative expressions ("in 20
// minutes") never serve a stale resolution for long.
func cacheKey(title string, now time.Time) string {
	return title + "|" + now.Format("2006-01-02T15:04")
}
