package status

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

var null = []byte("null")

func (c Class) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("status: cannot marshal %v", c)
	}
	return []byte(c.String()), nil
}

func (c *Class) UnmarshalText(text []byte) error {
	v, err := ClassFromName(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c Class) MarshalJSON() ([]byte, error) {
	if c == NoClass {
		return null, nil
	}
	text, err := c.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON decodes a class name. JSON null decodes to NoClass.
func (c *Class) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, null) {
		*c = NoClass
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	return c.UnmarshalText([]byte(name))
}

func (c Class) MarshalYAML() (any, error) {
	if c == NoClass {
		return nil, nil
	}
	text, err := c.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

func (c *Class) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*c = NoClass
		return nil
	}
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	return c.UnmarshalText([]byte(name))
}

// UnmarshalJSON accepts only registered codes. JSON null leaves c untouched.
func (c *Code) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, null) {
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	v, err := CodeFromInteger(n)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c *Code) UnmarshalYAML(value *yaml.Node) error {
	var n int
	if err := value.Decode(&n); err != nil {
		return err
	}
	v, err := CodeFromInteger(n)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
