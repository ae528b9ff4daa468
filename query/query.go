// Package query describes which shards of data a request asks for.
//
// Queries are small values that write parameters into a request builder.
// They compose with And, which applies the left query and then the right
// one, so nested compositions always yield the same parameters in the same
// order:
//
//	q := query.All(
//	    query.Nation("testlandia"),
//	    query.Shard("animal"),
//	    query.Shard("flag"),
//	)
//	// nation=testlandia&q=animal&q=flag
package query

import (
	"strconv"

	"github.com/block/nationstates-go/backend"
)

const (
	// ShardKey is the query string key the API reads shard names from.
	ShardKey = "q"

	// APIVersion is the version of the API this module was written against.
	APIVersion = 11
)

type Query interface {
	// Apply writes this query's parameters into b.
	Apply(b backend.ParamSink)
}

// None applies no parameters. A request built from it
// gets the server's default response.
func None() Query {
	return none{}
}

type none struct{}

func (none) Apply(backend.ParamSink) {}

// And returns a query that applies left, then right.
func And(left, right Query) Query {
	return and{left: left, right: right}
}

type and struct {
	left  Query
	right Query
}

func (q and) Apply(b backend.ParamSink) {
	q.left.Apply(b)
	q.right.Apply(b)
}

// All composes queries left to right: All(a, b, c) is And(a, And(b, c)).
func All(queries ...Query) Query {
	switch len(queries) {
	case 0:
		return None()
	case 1:
		return queries[0]
	}
	return And(queries[0], All(queries[1:]...))
}

// Shard requests a single named shard.
type Shard string

func (s Shard) Apply(b backend.ParamSink) {
	b.AddQueries(backend.Param{Key: ShardKey, Value: string(s)})
}

// Shards requests each of the given shards in order.
func Shards(shards ...Shard) Query {
	queries := make([]Query, len(shards))
	for i, s := range shards {
		queries[i] = s
	}
	return All(queries...)
}

// Param adds an arbitrary key value pair.
func Param(key, value string) Query {
	return param{Key: key, Value: value}
}

type param backend.Param

func (p param) Apply(b backend.ParamSink) {
	b.AddQueries(backend.Param(p))
}

// Nation selects the nation the shards are read from.
func Nation(name string) Query {
	return Param("nation", name)
}

// Version pins the API version the server should answer with.
func Version(v int) Query {
	return Param("v", strconv.Itoa(v))
}

// Params returns the parameters q applies, in order.
func Params(q Query) []backend.Param {
	var r recorder
	q.Apply(&r)
	return r.params
}

type recorder struct {
	params []backend.Param
}

func (r *recorder) AddQueries(params ...backend.Param) {
	r.params = append(r.params, params...)
}
