// Package graphql provides the GraphQL schema definition and resolvers
package graphql

import (
	"errors"
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/hadeel-ghalieah/vulnerabilities/model"
	"github.com/hadeel-ghalieah/vulnerabilities/osv"
	"github.com/hadeel-ghalieah/vulnerabilities/util"
)

var (
	client            *osv.Client
	defaultEcosystems = []string{"Ubuntu"}
)

// Init stores the shared OSV client and default ecosystem list used by
// all resolvers
func Init(c *osv.Client, defaults []string) {
	client = c
	if len(defaults) > 0 {
		defaultEcosystems = defaults
	}
}

// FixedVersionsType defines the GraphQL object for a fixed-version lookup result
var FixedVersionsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "FixedVersions",
	Fields: graphql.Fields{
		"name":      &graphql.Field{Type: graphql.String},
		"versions":  &graphql.Field{Type: graphql.NewList(graphql.String)},
		"timestamp": &graphql.Field{Type: graphql.String},
	},
})

// CreateSchema builds the GraphQL schema
func CreateSchema() (graphql.Schema, error) {
	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"fixedVersions": &graphql.Field{
				Type:        FixedVersionsType,
				Description: "Fixed versions recorded for a package across the requested ecosystems",
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
					"ecosystems": &graphql.ArgumentConfig{
						Type: graphql.NewList(graphql.String),
					},
				},
				Resolve: resolveFixedVersions,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: rootQuery})
}

func resolveFixedVersions(p graphql.ResolveParams) (interface{}, error) {
	name, _ := p.Args["name"].(string)
	if util.IsEmpty(name) {
		return nil, errors.New("name is required")
	}

	ecosystems := defaultEcosystems
	if raw, ok := p.Args["ecosystems"].([]interface{}); ok && len(raw) > 0 {
		var requested []string
		for _, entry := range raw {
			if s, ok := entry.(string); ok && util.IsNotEmpty(s) {
				requested = append(requested, s)
			}
		}
		if len(requested) > 0 {
			ecosystems = requested
		}
	}

	versions, err := client.CollectFixedVersions(p.Context, name, ecosystems)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, fmt.Errorf("no fixed versions found for %s", name)
	}

	return model.NewFixedVersionsResponse(name, util.UniqueSorted(versions)), nil
}
