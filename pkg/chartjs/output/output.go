// Package output encodes and decodes Chart.js configurations as JSON or YAML.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"gopkg.in/yaml.v3"
)

// Format is a serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// DetectFormat returns the format implied by a file extension, JSON unless
// the file ends in .yaml or .yml.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// ToJSON serializes v to JSON without HTML escaping.
func ToJSON(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ToYAML serializes v to YAML through its JSON form, so that field names,
// field order and number literals match the JSON output.
func ToYAML(v any) ([]byte, error) {
	data, err := ToJSON(v, false)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	node, err := jsonNode(dec)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

// jsonNode reads the next JSON value from dec as a YAML node.
func jsonNode(dec *json.Decoder) (*yaml.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch tok := tok.(type) {
	case json.Delim:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if tok == '{' {
			n.Kind, n.Tag = yaml.MappingNode, "!!map"
		}
		for dec.More() {
			if n.Kind == yaml.MappingNode {
				key, err := dec.Token()
				if err != nil {
					return nil, err
				}
				n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key.(string)})
			}
			val, err := jsonNode(dec)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return n, nil
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(tok.String(), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: tok.String()}, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: tok}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(tok)}, nil
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
}

// Encode serializes v in the given format. pretty only applies to JSON.
func Encode(v any, format Format, pretty bool) ([]byte, error) {
	if format == FormatYAML {
		return ToYAML(v)
	}
	return ToJSON(v, pretty)
}

// Decode parses data into v. YAML documents are converted to JSON first, so
// that values go through the same UnmarshalJSON methods as JSON input.
func Decode(data []byte, format Format, v any) error {
	if format != FormatYAML {
		return json.Unmarshal(data, v)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	tree, err := yamlValue(&doc)
	if err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	js, err := json.Marshal(tree)
	if err != nil {
		return err
	}
	return json.Unmarshal(js, v)
}

// maxAliasNodes bounds the number of nodes produced by alias expansion.
const maxAliasNodes = 100000

// yamlTree converts YAML nodes into a tree encoding/json accepts. Number
// literals and timestamps keep their source text.
type yamlTree struct {
	expanding map[*yaml.Node]bool
	aliased   int
}

func yamlValue(n *yaml.Node) (any, error) {
	t := &yamlTree{expanding: make(map[*yaml.Node]bool)}
	return t.value(n)
}

func (t *yamlTree) value(n *yaml.Node) (any, error) {
	if len(t.expanding) > 0 {
		t.aliased++
		if t.aliased > maxAliasNodes {
			return nil, fmt.Errorf("line %d: alias expansion exceeds %d nodes", n.Line, maxAliasNodes)
		}
	}

	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return t.value(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, fmt.Errorf("line %d: unknown alias %q", n.Line, n.Value)
		}
		if t.expanding[n.Alias] {
			return nil, fmt.Errorf("line %d: recursive alias %q", n.Line, n.Value)
		}
		t.expanding[n.Alias] = true
		defer delete(t.expanding, n.Alias)
		return t.value(n.Alias)
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			val, err := t.value(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[n.Content[i].Value] = val
		}
		return out, nil
	case yaml.SequenceNode:
		out := make([]any, len(n.Content))
		for i, c := range n.Content {
			val, err := t.value(c)
			if err != nil {
				return nil, err
			}
			out[i] = val
		}
		return out, nil
	}

	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var v bool
		err := n.Decode(&v)
		return v, err
	case "!!int":
		if isJSONNumber(n.Value) {
			return json.Number(n.Value), nil
		}
		var v any
		err := n.Decode(&v)
		return v, err
	case "!!float":
		if isJSONNumber(n.Value) {
			return json.Number(n.Value), nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		switch {
		case math.IsNaN(f):
			return "NaN", nil
		case math.IsInf(f, 1):
			return "Infinity", nil
		case math.IsInf(f, -1):
			return "-Infinity", nil
		}
		return f, nil
	default:
		return n.Value, nil
	}
}

// isJSONNumber reports whether s is a JSON number literal.
func isJSONNumber(s string) bool {
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return false
	}
	return json.Valid([]byte(s))
}

// Select evaluates a JSONPath expression against encoded JSON.
func Select(data []byte, path string) (any, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	val, err := jsonpath.Get(strings.TrimSpace(path), doc)
	if err != nil {
		return nil, fmt.Errorf("select %q: %w", path, err)
	}
	return val, nil
}
