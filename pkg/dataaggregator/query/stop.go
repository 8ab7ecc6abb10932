package query

type Stop struct {
	Identifier string
}
