package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/sendero-app/sendero/pkg/datastructure"
	"github.com/sendero-app/sendero/pkg/util"
	"go.uber.org/zap"
)

const (
	nodesFile  = "nodes.json"
	routesFile = "routes.json"
)

// JSONStore persists nodes and routes as pretty-printed JSON documents under
// a single data directory. Reads and writes are guarded by one RWMutex, so a
// store is safe for concurrent use by the HTTP handlers.
type JSONStore struct {
	dir string
	log *zap.Logger

	mu sync.RWMutex

	// routesCache avoids re-reading routes.json on every suggestion query.
	// Refreshed on SaveRoutes, nil until the first load.
	routesCache []datastructure.Route
}

func NewJSONStore(dir string, log *zap.Logger) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "storage.NewJSONStore dir=%s", dir)
	}
	return &JSONStore{dir: dir, log: log}, nil
}

// LoadNodes reads the node collection. A missing or unreadable file yields an
// empty collection so a fresh deployment starts clean.
func (s *JSONStore) LoadNodes() ([]datastructure.Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var nodes []datastructure.Node
	if err := s.readJSON(nodesFile, &nodes); err != nil {
		return nil, err
	}
	if nodes == nil {
		nodes = []datastructure.Node{}
	}
	return nodes, nil
}

func (s *JSONStore) SaveNodes(nodes []datastructure.Node) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeJSON(nodesFile, nodes)
}

func (s *JSONStore) LoadRoutes() ([]datastructure.Route, error) {
	s.mu.RLock()
	if s.routesCache != nil {
		routes := append([]datastructure.Route{}, s.routesCache...)
		s.mu.RUnlock()
		return routes, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.routesCache == nil {
		var routes []datastructure.Route
		if err := s.readJSON(routesFile, &routes); err != nil {
			return nil, err
		}
		if routes == nil {
			routes = []datastructure.Route{}
		}
		s.routesCache = routes
	}
	return append([]datastructure.Route{}, s.routesCache...), nil
}

func (s *JSONStore) SaveRoutes(routes []datastructure.Route) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeJSON(routesFile, routes); err != nil {
		return err
	}
	s.routesCache = append([]datastructure.Route{}, routes...)
	return nil
}

func (s *JSONStore) readJSON(name string, out interface{}) error {
	path := filepath.Join(s.dir, name)
	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return util.WrapErrorf(err, util.ErrInternalServerError, "storage.readJSON path=%s", path)
	}
	if len(buf) == 0 {
		return nil
	}
	if err := json.Unmarshal(buf, out); err != nil {
		// a corrupt document must not brick the server
		s.log.Warn("discarding corrupt store file", zap.String("path", path), zap.Error(err))
		return nil
	}
	return nil
}

// writeJSON replaces the target file atomically so a crash mid-write never
// leaves a truncated document behind.
func (s *JSONStore) writeJSON(name string, in interface{}) error {
	path := filepath.Join(s.dir, name)
	buf, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return util.WrapErrorf(err, util.ErrInternalServerError, "storage.writeJSON path=%s", path)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o644); err != nil {
		return util.WrapErrorf(err, util.ErrInternalServerError, "storage.writeJSON path=%s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		return util.WrapErrorf(err, util.ErrInternalServerError, "storage.writeJSON rename=%s", path)
	}
	return nil
}
