package usecases

import (
	"errors"
	"testing"

	"github.com/sendero-app/sendero/pkg/datastructure"
	"github.com/sendero-app/sendero/pkg/util"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	nodes  []datastructure.Node
	routes []datastructure.Route
}

func (m *memStore) LoadNodes() ([]datastructure.Node, error) {
	return append([]datastructure.Node{}, m.nodes...), nil
}

func (m *memStore) SaveNodes(nodes []datastructure.Node) error {
	m.nodes = nodes
	return nil
}

func (m *memStore) LoadRoutes() ([]datastructure.Route, error) {
	return append([]datastructure.Route{}, m.routes...), nil
}

func (m *memStore) SaveRoutes(routes []datastructure.Route) error {
	m.routes = routes
	return nil
}

func requireServiceCode(t *testing.T, err error, code error) {
	t.Helper()
	require.Error(t, err)
	var serviceErr *util.Error
	require.True(t, errors.As(err, &serviceErr), "expected a service error, got %v", err)
	require.Equal(t, code, serviceErr.Code())
}
