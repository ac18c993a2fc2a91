package icons

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// NoForm is the variation sentinel for icons without an alternate form.
const NoForm = "."

// VersionRegular is the non-shiny variant channel.
const VersionRegular = "regular"

// Subvariation values that affect class derivation.
const (
	SubvariationNone    = "none"
	SubvariationFemale  = "female"
	SubvariationRight   = "right"
	SubvariationFlipped = "flipped"
)

// Type discriminates Pokémon icons from every other icon set.
type Type int

const (
	// TypeOther covers items, markings and any non-Pokémon set.
	TypeOther Type = iota
	// TypePokemon selects the species/form/gender class derivation.
	TypePokemon
)

const typePokemonName = "pkmn"

// ParseType maps the record's type string onto a Type.
func ParseType(raw string) Type {
	if strings.TrimSpace(raw) == typePokemonName {
		return TypePokemon
	}
	return TypeOther
}

func (t Type) String() string {
	if t == TypePokemon {
		return typePokemonName
	}
	return "other"
}

// UnmarshalYAML decodes the type from its string form.
func (t *Type) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("decode icon type: %w", err)
	}
	*t = ParseType(raw)
	return nil
}

// MarshalYAML encodes the type as its string form.
func (t Type) MarshalYAML() (any, error) {
	return t.String(), nil
}

// Dex is a national dex number. Zero means the icon has none.
type Dex int

// UnmarshalYAML accepts plain numbers, zero-padded strings like "025", and
// empty or null values, which decode to zero.
func (d *Dex) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("decode icon idx: line %d: expected a scalar", value.Line)
	}
	raw := strings.TrimSpace(value.Value)
	if raw == "" || value.ShortTag() == "!!null" {
		*d = 0
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fmt.Errorf("decode icon idx: line %d: %q is not a dex number", value.Line, raw)
	}
	*d = Dex(n)
	return nil
}

// Original points at the icon whose image a duplicate reuses.
type Original struct {
	File string `yaml:"file" json:"file"`
}

// Record is one icon entry. Records sharing ID must be contiguous in a list.
type Record struct {
	ID           string    `yaml:"id" json:"id"`
	Idx          Dex       `yaml:"idx" json:"idx"`
	NameDisplay  string    `yaml:"name_display" json:"name_display"`
	Type         Type      `yaml:"type" json:"type"`
	Slug         string    `yaml:"slug" json:"slug"`
	Set          string    `yaml:"set" json:"set"`
	Version      string    `yaml:"version" json:"version"`
	Variation    string    `yaml:"variation" json:"variation"`
	Subvariation string    `yaml:"subvariation" json:"subvariation"`
	File         string    `yaml:"file" json:"file"`
	IsDuplicate  bool      `yaml:"is_duplicate" json:"is_duplicate"`
	Original     *Original `yaml:"original,omitempty" json:"original,omitempty"`
	W            int       `yaml:"w" json:"w"`
	H            int       `yaml:"h" json:"h"`
}

// HasForm reports whether the record is an alternate form.
func (r Record) HasForm() bool {
	return r.Variation != "" && r.Variation != NoForm
}

// ImageFile returns the file the icon should be displayed with. Duplicates
// have no image of their own and resolve to their original's file.
func (r Record) ImageFile() string {
	if r.IsDuplicate && r.Original != nil && r.Original.File != "" {
		return r.Original.File
	}
	return r.File
}

// ImagePath returns ImageFile without any leading "./".
func (r Record) ImagePath() string {
	return TrimDotBase(r.ImageFile())
}

// TrimDotBase removes every leading "./" from path.
func TrimDotBase(path string) string {
	for strings.HasPrefix(path, "./") {
		path = path[2:]
	}
	return path
}
