//go:build linux || darwin
// +build linux darwin

package signal

import (
	"os"
	"os/signal"
	"syscall"

	"k8s.io/klog/v2"
)

// ListenSignal calls stop on SIGINT or SIGTERM and reload on SIGUSR1.
func ListenSignal(stop func(), reload func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM, syscall.SIGUSR1)

	for sig := range c {
		switch sig {
		case syscall.SIGINT, syscall.SIGTERM:
			klog.Infof("got signal %v, stopping pipeline", sig)
			stop()
		case syscall.SIGUSR1:
			klog.Infof("got signal %v, reloading config", sig)
			reload()
		}
	}
}
