// Package material holds the Phong surface parameters objects are drawn with.
package material

// Material describes how a surface reflects light.
type Material struct {
	Tag             string     `yaml:"tag"`
	AmbientColor    [3]float32 `yaml:"ambient_color"`
	AmbientStrength float32    `yaml:"ambient_strength"`
	DiffuseColor    [3]float32 `yaml:"diffuse_color"`
	SpecularColor   [3]float32 `yaml:"specular_color"`
	Shininess       float32    `yaml:"shininess"`
}

// Table is an ordered list of materials addressed by tag.
// When a tag is defined more than once the first definition wins.
type Table struct {
	materials []Material
	index     map[string]int
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{index: make(map[string]int)}
}

// Define appends m to the table.
func (t *Table) Define(m Material) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if _, exists := t.index[m.Tag]; !exists {
		t.index[m.Tag] = len(t.materials)
	}
	t.materials = append(t.materials, m)
}

// Find returns the material defined under tag.
func (t *Table) Find(tag string) (Material, bool) {
	i, ok := t.index[tag]
	if !ok {
		return Material{}, false
	}
	return t.materials[i], true
}

// Len returns the number of definitions, duplicates included.
func (t *Table) Len() int {
	return len(t.materials)
}

// Tags returns the tags in definition order.
func (t *Table) Tags() []string {
	tags := make([]string, len(t.materials))
	for i, m := range t.materials {
		tags[i] = m.Tag
	}
	return tags
}
