package journeygraph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog/log"
	"github.com/travigo/metroplanner/pkg/network"
)

type Neo4jConfig struct {
	URI      string
	Username string
	Password string
	Database string
}

func Connect(ctx context.Context, config Neo4jConfig) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(
		config.URI,
		neo4j.BasicAuth(config.Username, config.Password, ""))
	if err != nil {
		return nil, err
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, err
	}

	return driver, nil
}

// Export replaces the graph in the database with the stations and connections of the network
func Export(ctx context.Context, driver neo4j.DriverWithContext, database string, n *network.Network) error {
	session := driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: database})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx,
		func(tx neo4j.ManagedTransaction) (any, error) {
			if _, err := tx.Run(ctx, "MATCH (s:Station) DETACH DELETE s", map[string]any{}); err != nil {
				return nil, err
			}

			for _, station := range n.StationNames() {
				_, err := tx.Run(
					ctx,
					"CREATE (s:Station {name: $name})",
					map[string]any{
						"name": station,
					})
				if err != nil {
					return nil, err
				}
			}

			for _, connection := range n.Connections() {
				_, err := tx.Run(
					ctx, `
					MATCH (a:Station {name: $from})
					MATCH (b:Station {name: $to})
					CREATE (a)-[:CONNECTS {distance: $distance}]->(b)
					CREATE (b)-[:CONNECTS {distance: $distance}]->(a)
					`, map[string]any{
						"from":     connection.From,
						"to":       connection.To,
						"distance": connection.Distance,
					})
				if err != nil {
					return nil, err
				}
			}

			return nil, nil
		})
	if err != nil {
		return err
	}

	log.Info().
		Int("stations", len(n.StationNames())).
		Int("connections", len(n.Connections())).
		Msg("Exported network graph")

	return nil
}

// ExportedPathDistance asks the database for the shortest weighted path between two stations.
// It is used to check an export against the in-memory path finder.
func ExportedPathDistance(ctx context.Context, driver neo4j.DriverWithContext, database string, from string, to string) (int, error) {
	session := driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: database})
	defer session.Close(ctx)

	distance, err := session.ExecuteRead(ctx,
		func(tx neo4j.ManagedTransaction) (any, error) {
			result, err := tx.Run(
				ctx, `
				MATCH p = (a:Station {name: $from})-[:CONNECTS*]->(b:Station {name: $to})
				WITH reduce(total = 0, r IN relationships(p) | total + r.distance) AS distance
				RETURN distance ORDER BY distance ASC LIMIT 1
				`, map[string]any{
					"from": from,
					"to":   to,
				})
			if err != nil {
				return nil, err
			}

			record, err := result.Single(ctx)
			if err != nil {
				return nil, err
			}

			value, _ := record.Get("distance")
			return value, nil
		})
	if err != nil {
		return 0, err
	}

	return int(distance.(int64)), nil
}
