package icons

import (
	"fmt"
	"strings"
)

// Class tags appended for Pokémon variants.
const (
	ClassShiny  = "color-shiny"
	ClassFemale = "gender-female"
	ClassRight  = "dir-right"
)

// DefaultEmptyCell fills cells whose data is absent.
const DefaultEmptyCell = "–"

// Classifier derives the display identity of icon records.
type Classifier struct {
	// BaseSelector is always the first class tag.
	BaseSelector string
	// UseIdxClasses selects "pkmn-<id>" over "pkmn-<slug>".
	UseIdxClasses bool
	// OnlyShiny suppresses the shiny tag; see OnlyShinyMode.
	OnlyShiny bool
	// DexPrefix is the localized prefix of the index label.
	DexPrefix string
	// EmptyCell replaces absent index and name labels.
	EmptyCell string
}

// Identity is the derived display data of one record.
type Identity struct {
	Idx     string
	Name    string
	Classes []string
}

// ClassString joins the class tags the way they appear in markup.
func (i Identity) ClassString() string {
	return strings.Join(i.Classes, " ")
}

// OnlyShinyMode reports whether a build contains shiny icons only, which makes
// the shiny tag redundant.
func OnlyShinyMode(includeNonShiny, includeShiny bool) bool {
	return !includeNonShiny && includeShiny
}

// Identify derives every display field of r.
func (c Classifier) Identify(r Record) Identity {
	return Identity{
		Idx:     c.IdxString(r),
		Name:    c.NameString(r),
		Classes: c.Classes(r),
	}
}

// IdxString returns the prefixed, zero-padded index or the empty cell.
func (c Classifier) IdxString(r Record) string {
	if r.Idx == 0 {
		return c.emptyCell()
	}
	return fmt.Sprintf("%s%03d", c.DexPrefix, r.Idx)
}

// NameString returns the display name or the empty cell.
func (c Classifier) NameString(r Record) string {
	if r.NameDisplay == "" {
		return c.emptyCell()
	}
	return r.NameDisplay
}

// Classes returns the ordered class tags needed to display r.
func (c Classifier) Classes(r Record) []string {
	classes := []string{c.BaseSelector}

	if r.Type != TypePokemon {
		return append(classes, r.Set+"-"+r.Slug)
	}

	if c.UseIdxClasses {
		classes = append(classes, typePokemonName+"-"+r.ID)
	} else {
		classes = append(classes, typePokemonName+"-"+r.Slug)
	}
	if r.Version != VersionRegular && !c.OnlyShiny {
		classes = append(classes, ClassShiny)
	}
	if r.HasForm() {
		classes = append(classes, "form-"+r.Variation)
	}
	switch r.Subvariation {
	case SubvariationFemale:
		classes = append(classes, ClassFemale)
	case SubvariationRight, SubvariationFlipped:
		classes = append(classes, ClassRight)
	}
	return classes
}

func (c Classifier) emptyCell() string {
	if c.EmptyCell == "" {
		return DefaultEmptyCell
	}
	return c.EmptyCell
}
