package journeygraph

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/metroplanner/pkg/ctdf"
	"github.com/travigo/metroplanner/pkg/network"
)

func referenceNetwork(t *testing.T) *network.Network {
	t.Helper()

	n, err := network.DefaultDefinition().Build()
	require.NoError(t, err)

	return n
}

// bruteForceShortest walks every simple path from start to end
func bruteForceShortest(n *network.Network, start string, end string) (int, bool) {
	best := -1
	visited := map[string]bool{start: true}

	var walk func(station string, total int)
	walk = func(station string, total int) {
		if station == end {
			if best == -1 || total < best {
				best = total
			}
			return
		}

		for _, neighbour := range n.NeighbourNames(station) {
			if visited[neighbour] {
				continue
			}

			distance, _ := n.Distance(station, neighbour)

			visited[neighbour] = true
			walk(neighbour, total+distance)
			visited[neighbour] = false
		}
	}
	walk(start, 0)

	return best, best != -1
}

func TestShortestPathReferenceNetwork(t *testing.T) {
	n := referenceNetwork(t)

	tests := []struct {
		from     string
		to       string
		path     []string
		distance int
	}{
		{from: "A", to: "F", path: []string{"A", "B", "F"}, distance: 17},
		{from: "A", to: "D", path: []string{"A", "E", "D"}, distance: 13},
		{from: "A", to: "C", path: []string{"A", "C"}, distance: 22},
		{from: "F", to: "A", path: []string{"F", "B", "A"}, distance: 17},
		{from: "C", to: "E", path: []string{"C", "D", "E"}, distance: 14},
		{from: "B", to: "B", path: []string{"B"}, distance: 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s to %s", tt.from, tt.to), func(t *testing.T) {
			path, err := ShortestPath(n, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.path, path)

			distance, err := PathDistance(n, path)
			require.NoError(t, err)
			assert.Equal(t, tt.distance, distance)
		})
	}
}

func TestShortestPathIsOptimal(t *testing.T) {
	n := referenceNetwork(t)

	for _, from := range n.StationNames() {
		for _, to := range n.StationNames() {
			path, err := ShortestPath(n, from, to)
			require.NoError(t, err)

			distance, err := PathDistance(n, path)
			require.NoError(t, err)

			best, found := bruteForceShortest(n, from, to)
			require.True(t, found)
			assert.Equal(t, best, distance, "%s to %s", from, to)

			distances, err := ShortestDistances(n, from, to)
			require.NoError(t, err)
			assert.Equal(t, distance, distances[to])
		}
	}
}

func TestShortestPathRandomCyclicGraphs(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	names := []string{"K", "L", "M", "N", "O", "P", "Q", "R"}

	for round := 0; round < 25; round++ {
		n, err := network.Build(names, nil)
		require.NoError(t, err)

		for i := range names {
			for j := i + 1; j < len(names); j++ {
				if random.Intn(3) == 0 {
					require.NoError(t, n.Connect(names[i], names[j], 1+random.Intn(20)))
				}
			}
		}

		for _, from := range names {
			for _, to := range names {
				best, found := bruteForceShortest(n, from, to)

				path, err := ShortestPath(n, from, to)
				if !found {
					assert.ErrorIs(t, err, ErrNotFound)
					continue
				}
				require.NoError(t, err)

				assert.Equal(t, from, path[0])
				assert.Equal(t, to, path[len(path)-1])

				distance, err := PathDistance(n, path)
				require.NoError(t, err)
				assert.Equal(t, best, distance, "round %d %s to %s", round, from, to)
			}
		}
	}
}

func TestShortestPathDisconnected(t *testing.T) {
	n, err := network.Build([]string{"A", "B", "C", "D"}, []ctdf.Connection{
		{From: "A", To: "B", Distance: 3},
		{From: "C", To: "D", Distance: 4},
	})
	require.NoError(t, err)

	_, err = ShortestPath(n, "A", "D")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ShortestDistances(n, "B", "C")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestShortestPathUnknownStation(t *testing.T) {
	n := referenceNetwork(t)

	_, err := ShortestPath(n, "A", "Z")
	assert.ErrorIs(t, err, network.ErrUnknownStation)

	_, err = ShortestPath(n, "Z", "A")
	assert.ErrorIs(t, err, network.ErrUnknownStation)
}

func TestPathDistance(t *testing.T) {
	n := referenceNetwork(t)

	distance, err := PathDistance(n, []string{"A", "B", "C", "D"})
	require.NoError(t, err)
	assert.Equal(t, 34, distance)

	distance, err = PathDistance(n, nil)
	require.NoError(t, err)
	assert.Zero(t, distance)

	_, err = PathDistance(n, []string{"A", "F"})
	assert.ErrorIs(t, err, ErrNotFound)
}
