package query

// Stations lists every station in the network
type Stations struct{}
