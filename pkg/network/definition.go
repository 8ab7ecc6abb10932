package network

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/travigo/metroplanner/pkg/ctdf"
	"gopkg.in/yaml.v3"
)

// Definition describes a network and the timetable it runs
type Definition struct {
	Identifier string `yaml:"Identifier"`
	Name       string `yaml:"Name"`

	Stations    []string          `yaml:"Stations"`
	Connections []ctdf.Connection `yaml:"Connections"`

	Timetable TimetableDefinition `yaml:"Timetable"`
}

type TimetableDefinition struct {
	WindowStart  ctdf.TimeOfDay `yaml:"WindowStart"`
	WindowEnd    ctdf.TimeOfDay `yaml:"WindowEnd"`
	Headway      string         `yaml:"Headway"`
	AverageSpeed int            `yaml:"AverageSpeed"`
}

func (d Definition) Build() (*Network, error) {
	return Build(d.Stations, d.Connections)
}

// DefaultDefinition is the six station reference network
func DefaultDefinition() Definition {
	return Definition{
		Identifier: "reference-metro",
		Name:       "Reference Metro",
		Stations:   []string{"A", "B", "C", "D", "E", "F"},
		Connections: []ctdf.Connection{
			{From: "A", To: "B", Distance: 10},
			{From: "A", To: "C", Distance: 22},
			{From: "A", To: "E", Distance: 8},
			{From: "B", To: "C", Distance: 15},
			{From: "B", To: "D", Distance: 9},
			{From: "B", To: "F", Distance: 7},
			{From: "C", To: "D", Distance: 9},
			{From: "D", To: "E", Distance: 5},
			{From: "D", To: "F", Distance: 12},
			{From: "E", To: "F", Distance: 16},
		},
		Timetable: TimetableDefinition{
			WindowStart:  ctdf.NewTimeOfDay(6, 0),
			WindowEnd:    ctdf.NewTimeOfDay(20, 0),
			Headway:      "PT10M",
			AverageSpeed: 30,
		},
	}
}

func decodeDefinitions(reader io.Reader) ([]Definition, error) {
	var definitions []Definition

	decoder := yaml.NewDecoder(reader)
	for {
		var definition Definition
		err := decoder.Decode(&definition)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		definitions = append(definitions, definition)
	}

	return definitions, nil
}

func LoadDefinitionFile(path string) ([]Definition, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	definitions, err := decodeDefinitions(bytes.NewReader(contents))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return definitions, nil
}

// LoadDefinitions walks a directory and loads every network definition found in its yaml files
func LoadDefinitions(directory string) ([]Definition, error) {
	var definitions []Definition

	err := filepath.Walk(directory,
		func(path string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if fileInfo.IsDir() || filepath.Ext(path) != ".yaml" {
				return nil
			}

			log.Debug().Str("path", path).Msg("Loading network definition file")

			fileDefinitions, err := LoadDefinitionFile(path)
			if err != nil {
				return err
			}

			definitions = append(definitions, fileDefinitions...)

			return nil
		})
	if err != nil {
		return nil, err
	}

	return definitions, nil
}

func GetDefinition(directory string, identifier string) (Definition, error) {
	definitions, err := LoadDefinitions(directory)
	if err != nil {
		return Definition{}, err
	}

	for _, definition := range definitions {
		if definition.Identifier == identifier {
			return definition, nil
		}
	}

	return Definition{}, fmt.Errorf("network definition %s could not be found", identifier)
}

// ResolveDefinition picks the definition to run with. A file path wins over a
// directory lookup by identifier, and the reference network is used when neither is set.
func ResolveDefinition(file string, directory string, identifier string) (Definition, error) {
	switch {
	case file != "":
		definitions, err := LoadDefinitionFile(file)
		if err != nil {
			return Definition{}, err
		}

		if identifier == "" {
			if len(definitions) == 0 {
				return Definition{}, fmt.Errorf("no network definitions in %s", file)
			}
			return definitions[0], nil
		}

		for _, definition := range definitions {
			if definition.Identifier == identifier {
				return definition, nil
			}
		}

		return Definition{}, fmt.Errorf("network definition %s could not be found in %s", identifier, file)
	case directory != "" && identifier != "":
		return GetDefinition(directory, identifier)
	default:
		return DefaultDefinition(), nil
	}
}
