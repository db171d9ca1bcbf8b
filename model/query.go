// Package model defines the request and response structures for the
// fixed-versions API and the outbound OSV query payload.
package model

// QueryPackage identifies a package within a named OSV ecosystem
type QueryPackage struct {
	Name      string `json:"name"`
	Ecosystem string `json:"ecosystem"`
}

// Query is the request payload for the OSV query API.
// Commit, Version and PageToken belong to the wire contract but are never
// populated here; continuation tokens in the response are not followed.
type Query struct {
	Commit    string       `json:"commit,omitempty"`
	Version   string       `json:"version,omitempty"`
	Package   QueryPackage `json:"package"`
	PageToken string       `json:"page_token,omitempty"`
}

// NewQuery creates a Query scoped to a single package and ecosystem
func NewQuery(name, ecosystem string) *Query {
	return &Query{
		Package: QueryPackage{
			Name:      name,
			Ecosystem: ecosystem,
		},
	}
}
