package contextkeys

type contextKey int

const (
	ContextKeyViewport contextKey = iota
)
