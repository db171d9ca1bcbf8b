package osv

import (
	"context"
	"sync"
)

// CollectFixedVersions queries every requested ecosystem concurrently and
// merges the results into a deduplicated, unordered set. If any single
// ecosystem query fails the whole collection fails; there is no
// partial-success mode. Callers impose the final ordering.
func (c *Client) CollectFixedVersions(ctx context.Context, name string, ecosystems []string) ([]string, error) {
	results := make([][]string, len(ecosystems))
	errs := make([]error, len(ecosystems))

	var wg sync.WaitGroup
	for i, ecosystem := range ecosystems {
		wg.Add(1)
		go func(i int, ecosystem string) {
			defer wg.Done()
			results[i], errs[i] = c.QueryPackage(ctx, name, ecosystem)
		}(i, ecosystem)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	seen := make(map[string]bool)
	var merged []string
	for _, versions := range results {
		for _, version := range versions {
			if !seen[version] {
				seen[version] = true
				merged = append(merged, version)
			}
		}
	}

	return merged, nil
}
