package ctdf

type Station struct {
	Name string `groups:"basic"`

	Connections map[string]int `groups:"detailed"`
}

func (s Station) Copy() Station {
	connections := make(map[string]int, len(s.Connections))
	for neighbour, distance := range s.Connections {
		connections[neighbour] = distance
	}

	return Station{
		Name:        s.Name,
		Connections: connections,
	}
}

// Connection is an undirected edge between two stations
type Connection struct {
	From     string `groups:"basic" yaml:"From"`
	To       string `groups:"basic" yaml:"To"`
	Distance int    `groups:"basic" yaml:"Distance"`
}
