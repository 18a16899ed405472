package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/supp-info/wikiglue/input"
	"github.com/supp-info/wikiglue/internal/config"
	"github.com/supp-info/wikiglue/internal/signal"
	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"
	"k8s.io/klog/v2"
)

var options = &struct {
	config         string
	autoReload     bool
	worker         int
	prometheus     string
	logRotateFile  string
	logMaxSizeMB   int
	logMaxBackups  int
	logCompression bool
}{}

var gitCommit string

func init() {
	flag.StringVar(&options.config, "config", options.config, "path to pipeline configuration file")
	flag.BoolVar(&options.autoReload, "reload", false, "reload the pipeline when the config file changes")
	flag.IntVar(&options.worker, "worker", 1, "worker count per input")
	flag.StringVar(&options.prometheus, "prometheus", "", "address to serve /metrics on, e.g. 127.0.0.1:8899")
	flag.StringVar(&options.logRotateFile, "log-rotate-file", "", "write logs to this file with rotation")
	flag.IntVar(&options.logMaxSizeMB, "log-max-size", 100, "max size in MB of a log file before it is rotated")
	flag.IntVar(&options.logMaxBackups, "log-max-backups", 5, "rotated log files to keep")
	flag.BoolVar(&options.logCompression, "log-compress", false, "gzip rotated log files")
}

func setupLogRotate() {
	if options.logRotateFile == "" {
		return
	}
	flag.Set("logtostderr", "false")
	flag.Set("alsologtostderr", "false")
	klog.SetOutput(&lumberjack.Logger{
		Filename:   options.logRotateFile,
		MaxSize:    options.logMaxSizeMB,
		MaxBackups: options.logMaxBackups,
		Compress:   options.logCompression,
	})
}

func buildPluginLink(config map[string]any) (boxes []*InputBox, err error) {
	inputsI, ok := config["inputs"].([]any)
	if !ok || len(inputsI) == 0 {
		return nil, fmt.Errorf("no inputs configured")
	}

	boxes = make([]*InputBox, 0, len(inputsI))
	for inputIdx, inputI := range inputsI {
		i, ok := inputI.(map[any]any)
		if !ok {
			return nil, fmt.Errorf("input[%d] format error", inputIdx+1)
		}
		klog.Infof("input[%d] %v", inputIdx+1, i)

		// len(i) is 1
		for inputTypeI, inputConfigI := range i {
			inputType, _ := inputTypeI.(string)
			inputConfig, _ := inputConfigI.(map[any]any)
			if inputConfig == nil {
				inputConfig = make(map[any]any)
			}

			inputPlugin := input.GetInput(inputType, inputConfig)
			if inputPlugin == nil {
				return nil, fmt.Errorf("invalid input plugin %q", inputType)
			}
			boxes = append(boxes, NewInputBox(inputPlugin, config))
		}
	}
	return boxes, nil
}

// runner owns the boxes of the current config. A reload replaces them.
type runner struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	gen    int
}

func newRunner() *runner {
	done := make(chan struct{})
	close(done)
	return &runner{cancel: func() {}, done: done}
}

// Reload stops the current boxes and starts new ones. It does nothing if the
// config is not valid.
func (r *runner) Reload(cfg map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	klog.Infof("config:\n%s", config.RemoveSensitiveInfo(cfg))

	boxes, err := buildPluginLink(cfg)
	if err != nil {
		klog.Errorf("could not build plugins from config: %s", err)
		return
	}

	r.cancel()
	<-r.done

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	r.cancel, r.done = cancel, done
	r.gen++

	go func() {
		defer close(done)
		var g errgroup.Group
		for _, box := range boxes {
			box := box
			g.Go(func() error { return box.Beat(ctx, options.worker) })
		}
		if err := g.Wait(); err != nil {
			klog.Errorf("pipeline stopped: %v", err)
		}
	}()
}

func (r *runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancel()
}

// Wait blocks until the boxes finish without being replaced by a reload.
func (r *runner) Wait() {
	for {
		r.mu.Lock()
		done, gen := r.done, r.gen
		r.mu.Unlock()

		<-done

		r.mu.Lock()
		same := gen == r.gen
		r.mu.Unlock()
		if same {
			return
		}
	}
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()
	setupLogRotate()

	klog.Infof("current build version: %s", gitCommit)

	if options.config == "" {
		klog.Fatal("-config must be set")
	}

	if options.prometheus != "" {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(options.prometheus, nil); err != nil {
				klog.Errorf("prometheus server: %v", err)
			}
		}()
	}

	cfg, err := config.ParseConfig(options.config)
	if err != nil {
		klog.Fatalf("could not parse config: %s", err)
	}

	r := newRunner()
	r.Reload(cfg)

	reload := func() {
		cfg, err := config.ParseConfig(options.config)
		if err != nil {
			klog.Errorf("could not parse config: %s", err)
			return
		}
		r.Reload(cfg)
	}
	if options.autoReload {
		if err := config.WatchConfig(options.config, reload); err != nil {
			klog.Fatalf("watch config fail: %s", err)
		}
	}

	go signal.ListenSignal(r.Stop, reload)

	r.Wait()
	klog.Info("all inputs finished, exit")
}
