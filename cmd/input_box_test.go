package main

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/supp-info/wikiglue/jsonvalue"
	"github.com/supp-info/wikiglue/output"
	"github.com/supp-info/wikiglue/topology"
)

type sliceInput struct {
	mu     sync.Mutex
	events []string
	closed bool
}

func (p *sliceInput) ReadOneEvent() jsonvalue.Value {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || len(p.events) == 0 {
		return nil
	}
	e := p.events[0]
	p.events = p.events[1:]
	return jsonvalue.MustParse(e)
}

func (p *sliceInput) Shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
}

type memoryOutput struct {
	mu     sync.Mutex
	events []string
}

func (o *memoryOutput) Emit(event jsonvalue.Value) {
	b, _ := jsonvalue.Marshal(event)
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, string(b))
}

func (o *memoryOutput) Shutdown() {}

var memory = &memoryOutput{}

func init() {
	output.Register("Memory", func(map[any]any) topology.Output { return memory })
}

func TestInputBoxBeat(t *testing.T) {
	config := map[string]any{
		"filters": []any{
			map[any]any{"JsonDelete": map[any]any{"path": []any{"notes", "-1"}}},
			map[any]any{"RenameKey": map[any]any{"fields": map[any]any{"Old": "New"}}},
		},
		"outputs": []any{
			map[any]any{"Memory": map[any]any{}},
		},
	}
	in := &sliceInput{events: []string{
		`{"Old":{"x":1},"notes":[1,2,3]}`,
		`{"notes":[]}`,
	}}

	box := NewInputBox(in, config)
	require.NoError(t, box.Beat(context.Background(), 1))

	require.Equal(t, []string{
		`{"New":{"x":1},"notes":[1,2]}`,
		`{"notes":[]}`,
	}, memory.events)

	in.mu.Lock()
	defer in.mu.Unlock()
	require.True(t, in.closed)
}

func TestInputBoxBeatCancel(t *testing.T) {
	config := map[string]any{
		"outputs": []any{
			map[any]any{"Memory": map[any]any{}},
		},
	}
	in := &blockingInput{stop: make(chan struct{})}
	box := NewInputBox(in, config)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- box.Beat(ctx, 2) }()

	cancel()
	require.NoError(t, <-done)

	in.mu.Lock()
	defer in.mu.Unlock()
	require.GreaterOrEqual(t, in.shutdowns, 1)
}

// blockingInput blocks in ReadOneEvent until it is shut down.
type blockingInput struct {
	mu        sync.Mutex
	once      sync.Once
	stop      chan struct{}
	shutdowns int
}

func (p *blockingInput) ReadOneEvent() jsonvalue.Value {
	<-p.stop
	return nil
}

func (p *blockingInput) Shutdown() {
	p.mu.Lock()
	p.shutdowns++
	p.mu.Unlock()
	p.once.Do(func() { close(p.stop) })
}

func TestBuildPluginLink(t *testing.T) {
	_, err := buildPluginLink(map[string]any{})
	require.Error(t, err)

	_, err = buildPluginLink(map[string]any{
		"inputs": []any{map[any]any{"NoSuchInput": map[any]any{}}},
	})
	require.Error(t, err)

	boxes, err := buildPluginLink(map[string]any{
		"inputs": []any{map[any]any{"Stdin": map[any]any{"codec": "json"}}},
	})
	require.NoError(t, err)
	require.Len(t, boxes, 1)
	boxes[0].input.Shutdown()
}
