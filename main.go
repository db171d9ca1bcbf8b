// Package main provides the entry point for the fixed-versions
// microservice and its CLI.
package main

import "github.com/hadeel-ghalieah/vulnerabilities/cmd"

func main() {
	cmd.Execute()
}
