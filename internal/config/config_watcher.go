package config

import (
	"github.com/fsnotify/fsnotify"
	"k8s.io/klog/v2"
)

// WatchConfig calls reloadFunc whenever filename is written or replaced.
func WatchConfig(filename string, reloadFunc func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filename); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case event, more := <-watcher.Events:
				if !more {
					klog.Info("no more event from config file watcher")
					return
				}
				klog.V(1).Infof("config file event: %v", event)
				if event.Op&fsnotify.Write == fsnotify.Write {
					reloadFunc()
				}
				// editors replace the file on save, so the watch has to be renewed
				if event.Op&(fsnotify.Rename|fsnotify.Remove) != 0 {
					if err := watcher.Add(filename); err != nil {
						klog.Errorf("re-watch %s: %v", filename, err)
					}
					reloadFunc()
				}
			case err, more := <-watcher.Errors:
				if !more {
					klog.Info("no more event from error channel of config file watcher")
					return
				}
				klog.Errorf("error from config file watcher: %v", err)
			}
		}
	}()

	return nil
}
