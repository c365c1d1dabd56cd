package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/kosmi-edu/kosmi/ent"
	"github.com/kosmi-edu/kosmi/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error) {
	query := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(llmrequestevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	records := make([]LLMEventRecord, len(events))
	for i, e := range events {
		records[i] = toLLMEventRecord(e)
	}
	return records, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	rec := toLLMEventRecord(e)
	return &rec, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	return r.usage(ctx, func(e *ent.LLMRequestEvent) LLMUsage {
		return LLMUsage{Purpose: e.Purpose}
	})
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMUsage, error) {
	return r.usage(ctx, func(e *ent.LLMRequestEvent) LLMUsage {
		return LLMUsage{Model: e.Model}
	})
}

// usage groups all events by the key built by keyOf. The audit log is small
// enough to aggregate in memory, which keeps the query portable across
// SQLite and PostgreSQL.
func (r *eventRepo) usage(ctx context.Context, keyOf func(*ent.LLMRequestEvent) LLMUsage) ([]LLMUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage: %w", err)
	}

	type acc struct {
		LLMUsage
		latency int64
	}
	groups := make(map[LLMUsage]*acc)
	var order []LLMUsage
	for _, e := range events {
		key := keyOf(e)
		g, ok := groups[key]
		if !ok {
			g = &acc{LLMUsage: key}
			groups[key] = g
			order = append(order, key)
		}
		g.Calls++
		g.InputTokens += e.InputTokens
		g.OutputTokens += e.OutputTokens
		g.latency += e.LatencyMs
	}

	out := make([]LLMUsage, 0, len(order))
	for _, key := range order {
		g := groups[key]
		g.AvgLatencyMs = g.latency / int64(g.Calls)
		out = append(out, g.LLMUsage)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Calls > out[j].Calls })
	return out, nil
}

func toLLMEventRecord(e *ent.LLMRequestEvent) LLMEventRecord {
	return LLMEventRecord{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}
}
