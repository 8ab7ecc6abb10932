package dataaggregator

import (
	"reflect"
)

// DataSource answers lookups for the result types it lists in Supports.
// Lookup returns source.UnsupportedSourceError for query types it does not know.
type DataSource interface {
	GetName() string
	Supports() []reflect.Type
	Lookup(query any) (interface{}, error)
}
