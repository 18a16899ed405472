package topology

import (
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"k8s.io/klog/v2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var lock = sync.Mutex{}
var counterManager map[string]prometheus.Counter = make(map[string]prometheus.Counter)

func hashValue(opts prometheus.CounterOpts) string {
	opts.Help = ""
	b, _ := json.Marshal(opts)
	return string(b)
}

// GetPromCounter creates a prometheus.Counter from the `prometheus_counter`
// option. Registering two counters with the same options panics, and several
// workers build the same filters, so counters are shared by options (help
// text ignored).
func GetPromCounter(config map[any]any) prometheus.Counter {
	lock.Lock()
	defer lock.Unlock()
	promConf, ok := config["prometheus_counter"]
	if !ok {
		return nil
	}

	var opts prometheus.CounterOpts
	if err := mapstructure.Decode(promConf, &opts); err != nil {
		klog.Errorf("decode prometheus counter config error: %v", err)
		return nil
	}

	key := hashValue(opts)
	if v, ok := counterManager[key]; ok {
		return v
	}
	c := promauto.NewCounter(opts)
	counterManager[key] = c
	return c
}
