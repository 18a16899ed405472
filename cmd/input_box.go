package main

import (
	"context"
	"sync"

	"github.com/supp-info/wikiglue/filter"
	"github.com/supp-info/wikiglue/output"
	"github.com/supp-info/wikiglue/topology"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// InputBox feeds the events of one input through the filters to the outputs.
type InputBox struct {
	config  map[string]any // whole config
	input   topology.Input
	outputs []*topology.OutputBox
	once    sync.Once
}

func NewInputBox(input topology.Input, config map[string]any) *InputBox {
	return &InputBox{
		input:  input,
		config: config,
	}
}

// beat runs one worker. Filters are built per worker, outputs are shared.
func (box *InputBox) beat(workerIdx int) {
	filterBoxes := topology.BuildFilterBoxes(box.config, filter.BuildFilter)
	chain := topology.NewChain(filterBoxes, box.outputs)

	for {
		event := box.input.ReadOneEvent()
		if event == nil {
			klog.V(1).Infof("worker %d: no more events", workerIdx)
			return
		}
		chain.Process(event)
	}
}

// Beat runs worker goroutines until the input is exhausted or ctx is done.
func (box *InputBox) Beat(ctx context.Context, worker int) error {
	if worker < 1 {
		worker = 1
	}
	box.outputs = topology.BuildOutputs(box.config, output.BuildOutput)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < worker; i++ {
		i := i
		g.Go(func() error {
			box.beat(i)
			return nil
		})
	}

	// the watcher must be gone before Beat returns
	finished := make(chan struct{})
	watcherDone := make(chan struct{})
	go func() {
		defer close(watcherDone)
		select {
		case <-gctx.Done():
			box.input.Shutdown()
		case <-finished:
		}
	}()

	err := g.Wait()
	close(finished)
	<-watcherDone
	box.shutdown()
	return err
}

func (box *InputBox) shutdown() {
	box.once.Do(func() {
		klog.Infof("try to shutdown input %T", box.input)
		box.input.Shutdown()
		for _, o := range box.outputs {
			klog.Infof("try to shutdown output %T", o.Output)
			o.Shutdown()
		}
	})
}
