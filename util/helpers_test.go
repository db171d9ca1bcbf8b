package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueSorted(t *testing.T) {
	assert.Equal(t, []string{"1.0", "2.1", "3.0"}, UniqueSorted([]string{"2.1", "1.0", "3.0", "1.0"}))
	assert.Empty(t, UniqueSorted(nil))

	// Ordering is lexicographic, not semver
	assert.Equal(t, []string{"1.10", "1.9"}, UniqueSorted([]string{"1.9", "1.10"}))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Ubuntu", "Debian", "Alpine"}, SplitList([]string{"Ubuntu, Debian", "Alpine"}))
	assert.Nil(t, SplitList([]string{"", " , "}))
	assert.Nil(t, SplitList(nil))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsNotEmpty(""))
	assert.True(t, IsNotEmpty("x"))
}

func TestPackageFromPURL(t *testing.T) {
	name, ecosystem, err := PackageFromPURL("pkg:npm/lodash")
	require.NoError(t, err)
	assert.Equal(t, "lodash", name)
	assert.Equal(t, "npm", ecosystem)

	name, ecosystem, err = PackageFromPURL("pkg:npm/%40babel/core")
	require.NoError(t, err)
	assert.Equal(t, "@babel/core", name)
	assert.Equal(t, "npm", ecosystem)

	name, ecosystem, err = PackageFromPURL("pkg:golang/github.com/gofiber/fiber")
	require.NoError(t, err)
	assert.Equal(t, "github.com/gofiber/fiber", name)
	assert.Equal(t, "Go", ecosystem)

	name, ecosystem, err = PackageFromPURL("pkg:deb/ubuntu/openssl")
	require.NoError(t, err)
	assert.Equal(t, "ubuntu/openssl", name)
	assert.Equal(t, "Debian", ecosystem)

	_, _, err = PackageFromPURL("pkg:docker/nginx")
	require.Error(t, err)

	_, _, err = PackageFromPURL("not-a-purl")
	require.Error(t, err)
}

func TestUpgradesFrom(t *testing.T) {
	versions := []string{"1.0.0", "1.2.1", "2.0.0"}
	assert.Equal(t, []string{"1.2.1", "2.0.0"}, UpgradesFrom("1.2.0", versions))
	assert.Empty(t, UpgradesFrom("2.0.0", versions))

	// Non-semver falls back to string comparison
	assert.Equal(t, []string{"abd"}, UpgradesFrom("abc", []string{"abb", "abd"}))
}
