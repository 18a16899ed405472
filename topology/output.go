package topology

import (
	"github.com/supp-info/wikiglue/jsonvalue"
	"k8s.io/klog/v2"
)

type Output interface {
	Emit(jsonvalue.Value)
	Shutdown()
}

type OutputBox struct {
	Output
}

type buildOutputFunc func(outputType string, config map[any]any) Output

func BuildOutputs(config map[string]any, buildOutput buildOutputFunc) []*OutputBox {
	rst := make([]*OutputBox, 0)

	outputsI, _ := config["outputs"].([]any)
	for _, outputI := range outputsI {
		// len(outputI) is 1
		for outputTypeI, outputConfigI := range outputI.(map[any]any) {
			outputType := outputTypeI.(string)
			klog.Infof("output type: %s", outputType)
			outputConfig, _ := outputConfigI.(map[any]any)
			if outputConfig == nil {
				outputConfig = make(map[any]any)
			}
			klog.Infof("output config: %v", outputConfig)
			rst = append(rst, &OutputBox{buildOutput(outputType, outputConfig)})
		}
	}
	return rst
}

// Process implements Processor
func (p *OutputBox) Process(event jsonvalue.Value) jsonvalue.Value {
	p.Emit(event)
	return nil
}

type OutputsProcessor []*OutputBox

// Process implements Processor
func (p OutputsProcessor) Process(event jsonvalue.Value) jsonvalue.Value {
	for _, o := range p {
		o.Emit(event)
	}
	return nil
}
