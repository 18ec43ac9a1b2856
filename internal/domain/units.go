package domain

import (
	"fmt"
	"strings"
)

// Unit is a unit of measurement for stock and recipe quantities.
type Unit string

const (
	UnitKilogram   Unit = "kg"
	UnitGram       Unit = "g"
	UnitMilligram  Unit = "mg"
	UnitLitre      Unit = "l"
	UnitMillilitre Unit = "ml"
	UnitPiece      Unit = "pcs"
	UnitDozen      Unit = "dozen"
	UnitPack       Unit = "pack"
	UnitBox        Unit = "box"
	UnitBottle     Unit = "bottle"
	UnitCan        Unit = "can"
)

var knownUnits = map[Unit]struct{}{
	UnitKilogram: {}, UnitGram: {}, UnitMilligram: {},
	UnitLitre: {}, UnitMillilitre: {},
	UnitPiece: {}, UnitDozen: {},
	UnitPack: {}, UnitBox: {}, UnitBottle: {}, UnitCan: {},
}

// ParseUnit accepts any casing of a known unit.
func ParseUnit(s string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := knownUnits[u]; !ok {
		return "", &ValidationError{Field: "unit", Message: fmt.Sprintf("unknown unit %q", s)}
	}
	return u, nil
}

func (u Unit) Valid() bool {
	_, ok := knownUnits[u]
	return ok
}
