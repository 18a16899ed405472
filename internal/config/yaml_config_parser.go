package config

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

// YamlParser reads a pipeline config from a local file or an http(s) URL.
// $VAR and ${VAR} references are expanded from the environment before the
// yaml is decoded.
type YamlParser struct{}

func (yp *YamlParser) parse(location string) (map[string]any, error) {
	raw, err := readConfigSource(location)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, fmt.Errorf("config %s is empty", location)
	}

	config := make(map[string]any)
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), &config); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", location, err)
	}
	return config, nil
}

func readConfigSource(location string) ([]byte, error) {
	if !strings.HasPrefix(location, "http://") && !strings.HasPrefix(location, "https://") {
		return os.ReadFile(location)
	}

	resp, err := http.Get(location)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get config %s: %s", location, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
