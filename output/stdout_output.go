package output

import (
	"bufio"
	"io"
	"os"
	"sync"

	"github.com/supp-info/wikiglue/codec"
	"github.com/supp-info/wikiglue/jsonvalue"
	"github.com/supp-info/wikiglue/topology"
	"k8s.io/klog/v2"
)

type StdoutConfig struct {
	Codec string `mapstructure:"codec"`
}

// StdoutOutput writes one encoded event per line. Workers share it, so writes
// are serialized.
type StdoutOutput struct {
	config  map[any]any
	encoder codec.Encoder

	mu     sync.Mutex
	writer *bufio.Writer
}

func init() {
	Register("Stdout", newStdoutOutput)
}

func newStdoutOutput(config map[any]any) topology.Output {
	var c StdoutConfig
	SafeDecodeConfig("Stdout", config, &c)
	if c.Codec == "" {
		c.Codec = "json"
	}
	return NewWriterOutput(os.Stdout, codec.NewEncoder(c.Codec), config)
}

func NewWriterOutput(w io.Writer, encoder codec.Encoder, config map[any]any) *StdoutOutput {
	return &StdoutOutput{
		config:  config,
		encoder: encoder,
		writer:  bufio.NewWriter(w),
	}
}

func (p *StdoutOutput) Emit(event jsonvalue.Value) {
	buf, err := p.encoder.Encode(event)
	if err != nil {
		klog.Errorf("marshal %v error: %s", event, err)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.writer.Write(buf)
	p.writer.WriteByte('\n')
	if err := p.writer.Flush(); err != nil {
		klog.Errorf("write output error: %s", err)
	}
}

func (p *StdoutOutput) Shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writer.Flush()
}
