package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sendero-app/sendero/pkg"
	"github.com/sendero-app/sendero/pkg/datastructure"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *JSONStore {
	t.Helper()
	store, err := NewJSONStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return store
}

func TestLoadNodesFreshDirectory(t *testing.T) {
	store := newTestStore(t)

	nodes, err := store.LoadNodes()
	require.NoError(t, err)
	require.NotNil(t, nodes)
	require.Empty(t, nodes)
}

func TestSaveAndLoadNodes(t *testing.T) {
	store := newTestStore(t)

	want := []datastructure.Node{
		{Name: "mirador", Description: "lookout over the valley", Lat: -34.6, Lng: -58.4,
			Type: pkg.NodeTypeInterest, CreatedAt: "2026-08-30T10:00:00Z"},
		{Name: "refugio", Lat: -34.61, Lng: -58.42, Type: pkg.NodeTypeControl, Risk: 3},
	}
	require.NoError(t, store.SaveNodes(want))

	got, err := store.LoadNodes()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSaveAndLoadRoutes(t *testing.T) {
	store := newTestStore(t)

	want := []datastructure.Route{
		{
			Name:       "Route mirador-refugio",
			Difficulty: 3,
			Popularity: 3,
			Distance:   5004,
			Duration:   60.1,
			Points: []datastructure.PointOnPath{
				{NodeName: "mirador", Lat: -34.6, Lng: -58.4, Type: pkg.NodeTypeInterest},
				{NodeName: "refugio", Lat: -34.61, Lng: -58.42, Type: pkg.NodeTypeControl, Risk: 3},
			},
		},
	}
	require.NoError(t, store.SaveRoutes(want))

	got, err := store.LoadRoutes()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestCorruptFileYieldsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, nodesFile), []byte("{not json"), 0o644))

	store, err := NewJSONStore(dir, zap.NewNop())
	require.NoError(t, err)

	nodes, err := store.LoadNodes()
	require.NoError(t, err)
	require.Empty(t, nodes)
}

func TestWriteIsPrettyPrinted(t *testing.T) {
	dir := t.TempDir()
	store, err := NewJSONStore(dir, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, store.SaveNodes([]datastructure.Node{{Name: "solo", Type: pkg.NodeTypeInterest}}))

	buf, err := os.ReadFile(filepath.Join(dir, nodesFile))
	require.NoError(t, err)
	require.Contains(t, string(buf), "\n  ")
}

func TestRoutesCacheServesRepeatLoads(t *testing.T) {
	dir := t.TempDir()
	store, err := NewJSONStore(dir, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, store.SaveRoutes([]datastructure.Route{{Name: "cached"}}))

	// mutate the file behind the store's back; the cache must still serve
	require.NoError(t, os.WriteFile(filepath.Join(dir, routesFile), []byte("[]"), 0o644))

	got, err := store.LoadRoutes()
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "cached", got[0].Name)
}

func TestSaveOverwrites(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveNodes([]datastructure.Node{{Name: "a"}, {Name: "b"}}))
	require.NoError(t, store.SaveNodes([]datastructure.Node{{Name: "c"}}))

	got, err := store.LoadNodes()
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "c", got[0].Name)
}
