package standings

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var ErrUnknownField = errors.New("unknown sort field")

type Field string

const (
	FieldName      Field = "name"
	FieldTeam      Field = "team"
	FieldQual      Field = "qual"
	FieldYearBirth Field = "year_birth"
	FieldCompClass Field = "comp_class"
	FieldCupResult Field = "cup_result"
)

// SortableFields are the cup table columns whose header can be clicked.
var SortableFields = []Field{FieldName, FieldTeam, FieldQual, FieldYearBirth, FieldCompClass, FieldCupResult}

func ParseField(s string) (Field, error) {
	f := Field(s)
	if !slices.Contains(SortableFields, f) {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
	return f, nil
}

// compare orders two competitors by the field. Strings compare byte-wise.
func (f Field) compare(a, b *SeasonCompetitor) int {
	switch f {
	case FieldName:
		return cmp.Compare(a.Name, b.Name)
	case FieldTeam:
		return cmp.Compare(a.Team, b.Team)
	case FieldQual:
		return cmp.Compare(a.Qual, b.Qual)
	case FieldYearBirth:
		return cmp.Compare(a.YearBirth, b.YearBirth)
	case FieldCompClass:
		return cmp.Compare(a.CompClass, b.CompClass)
	case FieldCupResult:
		return cmp.Compare(a.CupResult, b.CupResult)
	default:
		return 0
	}
}

type Direction int

const (
	Ascending Direction = iota
	Descending
)

// NextDirection probes the current order: the first adjacent pair with
// differing values decides. An increasing pair means the list should now be
// sorted descending, a decreasing one ascending. If every value is equal the
// result is Descending.
func NextDirection(competitors []*SeasonCompetitor, field Field) Direction {
	for i := 0; i < len(competitors)-1; i++ {
		switch field.compare(competitors[i], competitors[i+1]) {
		case 0:
			continue
		case -1:
			return Descending
		default:
			return Ascending
		}
	}
	return Descending
}

// SortByField returns a new slice with the competitors reordered by the field,
// in the direction given by NextDirection. The input is not modified.
func SortByField(competitors []*SeasonCompetitor, field Field) []*SeasonCompetitor {
	direction := NextDirection(competitors, field)
	sorted := slices.Clone(competitors)
	slices.SortStableFunc(sorted, func(a, b *SeasonCompetitor) int {
		if direction == Descending {
			return field.compare(b, a)
		}
		return field.compare(a, b)
	})
	return sorted
}

func sortByCupResult(competitors []*SeasonCompetitor) {
	slices.SortStableFunc(competitors, func(a, b *SeasonCompetitor) int {
		return cmp.Compare(b.CupResult, a.CupResult)
	})
}
