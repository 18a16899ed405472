package topology

import "github.com/supp-info/wikiglue/jsonvalue"

type Input interface {
	// ReadOneEvent blocks until an event is available. nil means the input
	// is exhausted or shut down.
	ReadOneEvent() jsonvalue.Value
	Shutdown()
}
