package network

import (
	"github.com/travigo/metroplanner/pkg/util"
)

// DefinitionFromEnvironment resolves a definition from explicit values, falling back to
// TRAVIGO_NETWORK_FILE and TRAVIGO_NETWORK_DIR when they are not set
func DefinitionFromEnvironment(file string, identifier string) (Definition, error) {
	if file == "" {
		file = util.GetEnvironmentVariable("TRAVIGO_NETWORK_FILE", "")
	}

	return ResolveDefinition(file, util.GetEnvironmentVariable("TRAVIGO_NETWORK_DIR", ""), identifier)
}
