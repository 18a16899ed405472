//go:build windows
// +build windows

package signal

import (
	"os"
	"os/signal"
	"syscall"

	"k8s.io/klog/v2"
)

// ListenSignal calls stop on SIGINT or SIGTERM. Windows has no SIGUSR1, so
// reload only happens through the config watcher (-reload).
func ListenSignal(stop func(), reload func()) {
	klog.V(1).Info("signal-triggered reload is not supported on windows, use -reload")

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	for sig := range c {
		klog.Infof("got signal %v, stopping pipeline", sig)
		stop()
	}
}
