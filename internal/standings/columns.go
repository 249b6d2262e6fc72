package standings

import "strconv"

type ColumnKey string

const (
	ColumnRank      ColumnKey = "rank"
	ColumnName      ColumnKey = "name"
	ColumnTeam      ColumnKey = "team"
	ColumnQual      ColumnKey = "qual"
	ColumnYearBirth ColumnKey = "year_birth"
	ColumnCompClass ColumnKey = "comp_class"
	ColumnResult    ColumnKey = "result"
	ColumnPoints    ColumnKey = "points"
)

// Column is one column of the per-event results table. Modifiers are the CSS
// modifiers applied to its body cells.
type Column struct {
	Key       ColumnKey
	Label     string
	Modifiers []string
}

func (c Column) Value(row RankedCompetitor) string {
	switch c.Key {
	case ColumnRank:
		return strconv.Itoa(row.Rank)
	case ColumnName:
		return row.Name
	case ColumnTeam:
		return row.Team
	case ColumnQual:
		return row.Qual
	case ColumnYearBirth:
		return strconv.Itoa(row.YearBirth)
	case ColumnCompClass:
		return row.CompClass
	case ColumnResult:
		return row.Result
	case ColumnPoints:
		return FormatNumber(row.Points)
	default:
		return ""
	}
}

var wideColumns = []Column{
	{Key: ColumnRank, Label: "№п/п"},
	{Key: ColumnName, Label: "Фамилия, имя"},
	{Key: ColumnTeam, Label: "Коллектив"},
	{Key: ColumnQual, Label: "Квал"},
	{Key: ColumnYearBirth, Label: "ГР"},
	{Key: ColumnCompClass, Label: "Группа"},
	{Key: ColumnResult, Label: "Результат"},
	{Key: ColumnPoints, Label: "Баллы"},
}

// The narrow layout drops qualification and birth year and shortens the
// labels.
var narrowColumns = []Column{
	{Key: ColumnRank, Label: "", Modifiers: []string{"mobile", "very-small"}},
	{Key: ColumnName, Label: "ФИО", Modifiers: []string{"small"}},
	{Key: ColumnTeam, Label: "Кол-в", Modifiers: []string{"very-small"}},
	{Key: ColumnCompClass, Label: "Груп.", Modifiers: []string{"mobile"}},
	{Key: ColumnResult, Label: "Рез-т", Modifiers: []string{"mobile"}},
	{Key: ColumnPoints, Label: "Бал.", Modifiers: []string{"mobile"}},
}

func EventColumns(narrow bool) []Column {
	if narrow {
		return narrowColumns
	}
	return wideColumns
}
