package partials

type PageName string

const (
	PageNameHome    PageName = "home"
	PageNameResults PageName = "results"
	PageNameCup     PageName = "cup"
)
