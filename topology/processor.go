package topology

import "github.com/supp-info/wikiglue/jsonvalue"

type Processor interface {
	// Process handles the event and returns what the next processor should
	// get, nil to stop.
	Process(jsonvalue.Value) jsonvalue.Value
}

// Chain runs an event through processors in order.
type Chain []Processor

func NewChain(filters []*FilterBox, outputs []*OutputBox) Chain {
	c := make(Chain, 0, len(filters)+1)
	for _, f := range filters {
		c = append(c, f)
	}
	return append(c, OutputsProcessor(outputs))
}

func (c Chain) Process(event jsonvalue.Value) jsonvalue.Value {
	for _, p := range c {
		if event = p.Process(event); event == nil {
			return nil
		}
	}
	return event
}
