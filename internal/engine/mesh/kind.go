// Package mesh provides the primitive meshes scene objects are drawn with.
package mesh

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind names a primitive mesh.
type Kind int

const (
	KindUnknown Kind = iota
	Plane
	Box
	Cylinder
	Sphere
)

// Kinds lists every primitive in load order.
var Kinds = []Kind{Plane, Box, Cylinder, Sphere}

var kindNames = map[Kind]string{
	Plane:    "plane",
	Box:      "box",
	Cylinder: "cylinder",
	Sphere:   "sphere",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k names a primitive.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind parses a primitive name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown mesh kind %q", s)
}

// UnmarshalYAML decodes a kind from its name.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = parsed
	return nil
}

// MarshalYAML encodes a kind as its name.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}
