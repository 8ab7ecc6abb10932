package network

import (
	"errors"
	"fmt"

	"github.com/travigo/metroplanner/pkg/ctdf"
	"golang.org/x/exp/slices"
)

var (
	ErrInvalidStation    = errors.New("invalid station")
	ErrInvalidConnection = errors.New("invalid connection")
	ErrUnknownStation    = errors.New("unknown station")
)

// Network holds the stations and the bidirectional weighted connections between them.
// It is built once and only read afterwards.
type Network struct {
	stations map[string]*ctdf.Station
}

func New() *Network {
	return &Network{
		stations: map[string]*ctdf.Station{},
	}
}

// Build creates a network from a list of station names and undirected connections
func Build(stationNames []string, connections []ctdf.Connection) (*Network, error) {
	network := New()

	for _, name := range stationNames {
		if err := network.AddStation(name); err != nil {
			return nil, err
		}
	}

	for _, connection := range connections {
		if err := network.Connect(connection.From, connection.To, connection.Distance); err != nil {
			return nil, err
		}
	}

	return network, nil
}

func (n *Network) AddStation(name string) error {
	if name == "" {
		return fmt.Errorf("%w: station name must not be empty", ErrInvalidStation)
	}

	if _, exists := n.stations[name]; exists {
		return nil
	}

	n.stations[name] = &ctdf.Station{
		Name:        name,
		Connections: map[string]int{},
	}

	return nil
}

func (n *Network) Connect(a string, b string, distance int) error {
	if a == b {
		return fmt.Errorf("%w: %s cannot connect to itself", ErrInvalidConnection, a)
	}

	if distance <= 0 {
		return fmt.Errorf("%w: distance between %s and %s must be positive, got %d", ErrInvalidConnection, a, b, distance)
	}

	from, fromExists := n.stations[a]
	to, toExists := n.stations[b]

	if !fromExists {
		return fmt.Errorf("%w: %w %s", ErrInvalidConnection, ErrUnknownStation, a)
	}
	if !toExists {
		return fmt.Errorf("%w: %w %s", ErrInvalidConnection, ErrUnknownStation, b)
	}

	from.Connections[b] = distance
	to.Connections[a] = distance

	return nil
}

func (n *Network) HasStation(name string) bool {
	_, exists := n.stations[name]
	return exists
}

func (n *Network) Station(name string) (ctdf.Station, error) {
	station, exists := n.stations[name]
	if !exists {
		return ctdf.Station{}, fmt.Errorf("%w %s", ErrUnknownStation, name)
	}

	return station.Copy(), nil
}

// Neighbours returns a copy of the neighbour to distance mapping for a station
func (n *Network) Neighbours(name string) (map[string]int, error) {
	station, err := n.Station(name)
	if err != nil {
		return nil, err
	}

	return station.Connections, nil
}

// NeighbourNames returns the names of all neighbours in a stable order
func (n *Network) NeighbourNames(name string) []string {
	station, exists := n.stations[name]
	if !exists {
		return nil
	}

	names := make([]string, 0, len(station.Connections))
	for neighbour := range station.Connections {
		names = append(names, neighbour)
	}
	slices.Sort(names)

	return names
}

// Distance returns the length of the direct connection between a and b
func (n *Network) Distance(a string, b string) (int, bool) {
	station, exists := n.stations[a]
	if !exists {
		return 0, false
	}

	distance, connected := station.Connections[b]
	return distance, connected
}

func (n *Network) StationNames() []string {
	names := make([]string, 0, len(n.stations))
	for name := range n.stations {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

func (n *Network) AllStations() []ctdf.Station {
	var stations []ctdf.Station

	for _, name := range n.StationNames() {
		stations = append(stations, n.stations[name].Copy())
	}

	return stations
}

// Connections lists every undirected connection once, with From sorted before To
func (n *Network) Connections() []ctdf.Connection {
	var connections []ctdf.Connection

	for _, name := range n.StationNames() {
		for _, neighbour := range n.NeighbourNames(name) {
			if name < neighbour {
				connections = append(connections, ctdf.Connection{
					From:     name,
					To:       neighbour,
					Distance: n.stations[name].Connections[neighbour],
				})
			}
		}
	}

	return connections
}
