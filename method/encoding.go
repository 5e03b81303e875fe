package method

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

func (m Method) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("method: cannot marshal Method(%d)", uint8(m))
	}
	return []byte(m.String()), nil
}

func (m *Method) UnmarshalText(text []byte) error {
	v, err := FromName(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m Method) MarshalJSON() ([]byte, error) {
	if m == NoMethod {
		return []byte("null"), nil
	}
	text, err := m.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON decodes a method name. JSON null decodes to NoMethod.
func (m *Method) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*m = NoMethod
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	return m.UnmarshalText([]byte(name))
}

func (m Method) MarshalYAML() (any, error) {
	if m == NoMethod {
		return nil, nil
	}
	text, err := m.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

func (m *Method) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*m = NoMethod
		return nil
	}
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	return m.UnmarshalText([]byte(name))
}
