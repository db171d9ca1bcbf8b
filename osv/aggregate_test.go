package osv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hadeel-ghalieah/vulnerabilities/model"
)

// vulnsWithFixed builds a minimal OSV response carrying the given fixed versions
func vulnsWithFixed(fixed ...string) string {
	events := ""
	for i, f := range fixed {
		if i > 0 {
			events += ","
		}
		events += fmt.Sprintf(`{"fixed":%q}`, f)
	}
	return fmt.Sprintf(`{"vulns":[{"id":"OSV-T","affected":[{"ranges":[{"type":"ECOSYSTEM","events":[%s]}]}]}]}`, events)
}

func TestCollectFixedVersions_MergesAcrossEcosystems(t *testing.T) {
	var calls int64

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)

		var q model.Query
		require.NoError(t, json.NewDecoder(r.Body).Decode(&q))

		switch q.Package.Ecosystem {
		case "EcoA":
			w.Write([]byte(vulnsWithFixed("2.1", "1.0")))
		case "EcoB":
			w.Write([]byte(vulnsWithFixed("1.0", "3.0")))
		default:
			t.Errorf("unexpected ecosystem %q", q.Package.Ecosystem)
		}
	}))
	defer ts.Close()

	client := NewClient(ts.URL)

	merged, err := client.CollectFixedVersions(context.Background(), "acme", []string{"EcoA", "EcoB"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1.0", "2.1", "3.0"}, merged)
	assert.EqualValues(t, 2, atomic.LoadInt64(&calls))
}

func TestCollectFixedVersions_SingleFailureFailsWhole(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var q model.Query
		require.NoError(t, json.NewDecoder(r.Body).Decode(&q))

		if q.Package.Ecosystem == "EcoB" {
			http.Error(w, "upstream down", http.StatusBadGateway)
			return
		}
		w.Write([]byte(vulnsWithFixed("1.0")))
	}))
	defer ts.Close()

	client := NewClient(ts.URL)

	merged, err := client.CollectFixedVersions(context.Background(), "acme", []string{"EcoA", "EcoB"})
	require.Error(t, err)
	assert.Nil(t, merged)
	assert.Contains(t, err.Error(), "EcoB")
}

func TestCollectFixedVersions_NoEcosystems(t *testing.T) {
	client := NewClient("http://127.0.0.1:1") // never dialed

	merged, err := client.CollectFixedVersions(context.Background(), "acme", nil)
	require.NoError(t, err)
	assert.Empty(t, merged)
}
