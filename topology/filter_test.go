package topology

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/supp-info/wikiglue/jsonvalue"
)

type funcFilter func(jsonvalue.Value) (jsonvalue.Value, bool)

func (f funcFilter) Filter(event jsonvalue.Value) (jsonvalue.Value, bool) {
	return f(event)
}

var (
	passFilter = funcFilter(func(e jsonvalue.Value) (jsonvalue.Value, bool) { return e, true })
	failFilter = funcFilter(func(e jsonvalue.Value) (jsonvalue.Value, bool) { return e, false })
	dropFilter = funcFilter(func(e jsonvalue.Value) (jsonvalue.Value, bool) { return nil, true })
)

type collectOutput struct {
	events []jsonvalue.Value
}

func (o *collectOutput) Emit(event jsonvalue.Value) { o.events = append(o.events, event) }
func (o *collectOutput) Shutdown()                  {}

func TestFilterBoxPostProcess(t *testing.T) {
	for _, c := range []struct {
		config map[any]any
		filter Filter
		event  string
		want   string
	}{
		{
			config: map[any]any{"remove_fields": []any{"a", "[b][c]"}},
			filter: passFilter,
			event:  `{"a":1,"b":{"c":2,"d":3}}`,
			want:   `{"b":{"d":3}}`,
		},
		{
			config: map[any]any{"remove_fields": []any{"a"}, "failTag": "failed"},
			filter: failFilter,
			event:  `{"a":1}`,
			want:   `{"a":1,"tags":"failed"}`,
		},
		{
			config: map[any]any{"failTag": "failed"},
			filter: failFilter,
			event:  `{"tags":"old"}`,
			want:   `{"tags":["old","failed"]}`,
		},
		{
			config: map[any]any{"failTag": "failed"},
			filter: failFilter,
			event:  `{"tags":["x","y"]}`,
			want:   `{"tags":["x","y","failed"]}`,
		},
		{
			config: map[any]any{"failTag": "failed"},
			filter: failFilter,
			event:  `[1]`,
			want:   `[1]`,
		},
		{
			config: map[any]any{},
			filter: failFilter,
			event:  `{"a":1}`,
			want:   `{"a":1}`,
		},
	} {
		box := NewFilterBox(c.config)
		box.Filter = c.filter
		got := box.Process(jsonvalue.MustParse(c.event))
		if !jsonvalue.Equal(got, jsonvalue.MustParse(c.want)) {
			b, _ := jsonvalue.Marshal(got)
			t.Errorf("config %v event %s: got %s, want %s", c.config, c.event, b, c.want)
		}
	}
}

func TestChain(t *testing.T) {
	out := &collectOutput{}
	outputs := []*OutputBox{{out}}

	counted := NewFilterBox(map[any]any{
		"remove_fields": []any{"secret"},
		"prometheus_counter": map[string]string{
			"namespace": "chain_test",
			"name":      "events_total",
			"help":      "events seen by the chain test",
		},
	})
	counted.Filter = passFilter
	dropping := NewFilterBox(map[any]any{})
	dropping.Filter = dropFilter

	chain := NewChain([]*FilterBox{counted}, outputs)
	chain.Process(jsonvalue.MustParse(`{"secret":1,"keep":2}`))
	chain.Process(jsonvalue.MustParse(`[]`))

	if len(out.events) != 2 {
		t.Fatalf("got %d events, want 2", len(out.events))
	}
	if b, _ := jsonvalue.Marshal(out.events[0]); string(b) != `{"keep":2}` {
		t.Errorf("got %s", b)
	}
	if n := testutil.ToFloat64(counted.counter); n != 2 {
		t.Errorf("counter = %v, want 2", n)
	}

	NewChain([]*FilterBox{dropping, counted}, outputs).Process(jsonvalue.MustParse(`{}`))
	if len(out.events) != 2 {
		t.Errorf("dropped event reached the output")
	}
}

func TestBuildFilterBoxes(t *testing.T) {
	config := map[string]any{
		"filters": []any{
			map[any]any{"A": map[any]any{"failTag": "a"}},
			map[any]any{"B": nil},
		},
	}
	var built []string
	boxes := BuildFilterBoxes(config, func(filterType string, _ map[any]any) Filter {
		built = append(built, filterType)
		return passFilter
	})
	if len(boxes) != 2 || len(built) != 2 || built[0] != "A" || built[1] != "B" {
		t.Fatalf("got %d boxes built from %v", len(boxes), built)
	}
	if boxes[0].failTag != "a" || boxes[0].Filter == nil {
		t.Errorf("unexpected box %+v", boxes[0])
	}

	if BuildFilterBoxes(map[string]any{}, nil) != nil {
		t.Error("no filters section should build nothing")
	}
}

func TestBuildOutputs(t *testing.T) {
	config := map[string]any{
		"outputs": []any{
			map[any]any{"Collect": map[any]any{}},
			map[any]any{"Collect": nil},
		},
	}
	boxes := BuildOutputs(config, func(outputType string, _ map[any]any) Output {
		return &collectOutput{}
	})
	if len(boxes) != 2 {
		t.Errorf("got %d outputs, want 2", len(boxes))
	}
}
