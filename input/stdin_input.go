package input

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/supp-info/wikiglue/codec"
	"github.com/supp-info/wikiglue/jsonvalue"
	"github.com/supp-info/wikiglue/topology"
	"k8s.io/klog/v2"
)

type StdinConfig struct {
	Codec string `mapstructure:"codec"`
}

// StdinInput reads one document per line.
type StdinInput struct {
	config  map[any]any
	decoder codec.Decoder

	scanner  *bufio.Scanner
	messages chan []byte

	once sync.Once
	stop chan struct{}
}

func init() {
	Register("Stdin", newStdinInput)
}

func newStdinInput(config map[any]any) topology.Input {
	var c StdinConfig
	SafeDecodeConfig("Stdin", config, &c)
	if c.Codec == "" {
		c.Codec = "json"
	}
	return NewReaderInput(os.Stdin, codec.NewDecoder(c.Codec), config)
}

// NewReaderInput reads lines from r the way the Stdin input reads stdin.
func NewReaderInput(r io.Reader, decoder codec.Decoder, config map[any]any) *StdinInput {
	p := &StdinInput{
		config:   config,
		decoder:  decoder,
		scanner:  bufio.NewScanner(r),
		messages: make(chan []byte, 10),
		stop:     make(chan struct{}),
	}
	p.scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	go func() {
		defer close(p.messages)
		for p.scanner.Scan() {
			line := append([]byte(nil), p.scanner.Bytes()...)
			select {
			case p.messages <- line:
			case <-p.stop:
				return
			}
		}
		if err := p.scanner.Err(); err != nil {
			klog.Errorf("read stdin: %v", err)
		}
	}()
	return p
}

// ReadOneEvent skips blank lines and lines the decoder rejects. It returns
// nil at the end of input or once Shutdown is called.
func (p *StdinInput) ReadOneEvent() jsonvalue.Value {
	for {
		var (
			text []byte
			more bool
		)
		select {
		case <-p.stop:
			return nil
		default:
		}
		select {
		case text, more = <-p.messages:
		case <-p.stop:
			return nil
		}
		if !more {
			return nil
		}
		if len(bytes.TrimSpace(text)) == 0 {
			continue
		}
		event, err := p.decoder.Decode(text)
		if err != nil {
			klog.Errorf("decode %q: %v", text, err)
			continue
		}
		return event
	}
}

func (p *StdinInput) Shutdown() {
	p.once.Do(func() { close(p.stop) })
}
