package journeygraph

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/travigo/metroplanner/pkg/network"
)

var ErrNotFound = errors.New("no path between stations")

type searchResult struct {
	distances    map[string]int
	predecessors map[string]string
	settled      map[string]bool
}

// search runs Dijkstra from start, stopping once end has been settled
func search(n *network.Network, start string, end string) (*searchResult, error) {
	for _, station := range []string{start, end} {
		if !n.HasStation(station) {
			return nil, fmt.Errorf("%w %s", network.ErrUnknownStation, station)
		}
	}

	result := &searchResult{
		distances:    map[string]int{start: 0},
		predecessors: map[string]string{},
		settled:      map[string]bool{},
	}

	queue := &frontier{{station: start, distance: 0}}

	for queue.Len() > 0 {
		current := heap.Pop(queue).(frontierItem)

		// Stale entry left behind by a later improvement
		if result.settled[current.station] || current.distance > result.distances[current.station] {
			continue
		}
		result.settled[current.station] = true

		if current.station == end {
			return result, nil
		}

		for _, neighbour := range n.NeighbourNames(current.station) {
			if result.settled[neighbour] {
				continue
			}

			weight, _ := n.Distance(current.station, neighbour)
			candidate := current.distance + weight

			if known, seen := result.distances[neighbour]; !seen || candidate < known {
				result.distances[neighbour] = candidate
				result.predecessors[neighbour] = current.station
				heap.Push(queue, frontierItem{station: neighbour, distance: candidate})
			}
		}
	}

	return nil, fmt.Errorf("%w: %s to %s", ErrNotFound, start, end)
}

// ShortestPath returns the minimum total distance station sequence from start to end, both inclusive
func ShortestPath(n *network.Network, start string, end string) ([]string, error) {
	result, err := search(n, start, end)
	if err != nil {
		return nil, err
	}

	path := []string{end}
	for station := end; station != start; {
		station = result.predecessors[station]
		path = append(path, station)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// ShortestDistances returns the best known distance from start to every station settled
// before end was reached, end included
func ShortestDistances(n *network.Network, start string, end string) (map[string]int, error) {
	result, err := search(n, start, end)
	if err != nil {
		return nil, err
	}

	distances := map[string]int{}
	for station := range result.settled {
		distances[station] = result.distances[station]
	}

	return distances, nil
}

// PathDistance sums the connection distances along a path
func PathDistance(n *network.Network, path []string) (int, error) {
	total := 0

	for index := 1; index < len(path); index++ {
		distance, connected := n.Distance(path[index-1], path[index])
		if !connected {
			return 0, fmt.Errorf("%w: %s and %s are not connected", ErrNotFound, path[index-1], path[index])
		}

		total += distance
	}

	return total, nil
}
