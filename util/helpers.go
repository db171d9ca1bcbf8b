// Package util provides helper functions shared by the API server and CLI.
package util

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/package-url/packageurl-go"
)

// GetEnvDefault is a convenience function for handling env vars
func GetEnvDefault(key, defVal string) string {
	val, ex := os.LookupEnv(key) // get the env var
	if !ex {                     // not found return default
		return defVal
	}
	return val // return value for env var
}

// IsEmpty checks if a string is empty or contains only whitespace
func IsEmpty(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}

// IsNotEmpty checks if a string is not empty
func IsNotEmpty(s string) bool {
	return !IsEmpty(s)
}

// Contains checks if a string slice contains an item
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// UniqueSorted deduplicates a version list and sorts it ascending
// lexicographically
func UniqueSorted(versions []string) []string {
	seen := make(map[string]bool, len(versions))
	unique := make([]string, 0, len(versions))
	for _, version := range versions {
		if !seen[version] {
			seen[version] = true
			unique = append(unique, version)
		}
	}
	sort.Strings(unique)
	return unique
}

// SplitList expands comma-separated entries, trims whitespace and drops
// empty values
func SplitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// purlTypeEcosystems maps PURL types to OSV ecosystem identifiers
var purlTypeEcosystems = map[string]string{
	"npm":       "npm",
	"pypi":      "PyPI",
	"maven":     "Maven",
	"golang":    "Go",
	"nuget":     "NuGet",
	"gem":       "RubyGems",
	"cargo":     "crates.io",
	"composer":  "Packagist",
	"pub":       "Pub",
	"cocoapods": "CocoaPods",
	"hex":       "Hex",
	"alpine":    "Alpine",
	"deb":       "Debian",
}

// PurlTypeToEcosystem converts a PURL type to its OSV ecosystem identifier
func PurlTypeToEcosystem(purlType string) string {
	return purlTypeEcosystems[purlType]
}

// PackageFromPURL resolves a PURL string to the package name and OSV
// ecosystem used by the query API. The namespace is folded into the name
// (pkg:npm/@babel/core -> @babel/core).
func PackageFromPURL(purlStr string) (string, string, error) {
	parsed, err := packageurl.FromString(purlStr)
	if err != nil {
		return "", "", err
	}

	ecosystem := PurlTypeToEcosystem(parsed.Type)
	if ecosystem == "" {
		return "", "", fmt.Errorf("unsupported purl type: %s", parsed.Type)
	}

	name := parsed.Name
	if parsed.Namespace != "" {
		name = parsed.Namespace + "/" + parsed.Name
	}

	return name, ecosystem, nil
}

// UpgradesFrom returns the versions that are strictly greater than the
// installed version. Versions that do not parse as semver fall back to
// string comparison.
func UpgradesFrom(installed string, versions []string) []string {
	current, err := semver.NewVersion(installed)

	var upgrades []string
	for _, version := range versions {
		if err == nil {
			if candidate, cerr := semver.NewVersion(version); cerr == nil {
				if candidate.GreaterThan(current) {
					upgrades = append(upgrades, version)
				}
				continue
			}
		}
		// Simple string comparison for non-semver versions
		if version > installed {
			upgrades = append(upgrades, version)
		}
	}
	return upgrades
}
