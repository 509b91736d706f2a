package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dzjyyds666/dcf/parse/dictionary"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func render(w io.Writer, format string, v any) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case formatJSON:
		// json object keys must be strings
		if vl, ok := v.(dictionary.ValueLabels); ok {
			v = stringKeys(vl)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func stringKeys(vl dictionary.ValueLabels) map[string]map[string]string {
	out := make(map[string]map[string]string, len(vl))
	for item, labels := range vl {
		m := make(map[string]string, len(labels))
		for code, label := range labels {
			m[fmt.Sprint(code)] = label
		}
		out[item] = m
	}
	return out
}
