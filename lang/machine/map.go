package machine

import (
	"fmt"

	"github.com/dolthub/swiss"
	"github.com/mna/fncatalog/lang/types"
	"github.com/pkg/errors"
)

// A Map is a table of named values. It remembers the order in which keys
// were first set. If you know the exact final number of entries, it is more
// efficient to call NewMap with that size.
type Map struct {
	m      *swiss.Map[types.String, types.Value]
	keys   []types.String
	frozen bool
}

var _ types.Value = (*Map)(nil)

// NewMap returns a map with initial capacity for at least size items.
func NewMap(size int) *Map {
	m := swiss.NewMap[types.String, types.Value](uint32(size))
	return &Map{m: m, keys: make([]types.String, 0, size)}
}

func (m *Map) String() string       { return fmt.Sprintf("map(%p)", m) }
func (m *Map) Type() string         { return "map" }
func (m *Map) Len() int             { return m.m.Count() }
func (m *Map) Keys() []types.String { return m.keys }
func (m *Map) Freeze()              { m.frozen = true }

// Get returns the value associated with k, if any.
func (m *Map) Get(k types.String) (types.Value, bool) {
	return m.m.Get(k)
}

// SetKey associates v with k. It fails if the map is frozen.
func (m *Map) SetKey(k types.String, v types.Value) error {
	if m.frozen {
		return errors.Errorf("cannot set key %s of frozen map", k)
	}
	if !m.m.Has(k) {
		m.keys = append(m.keys, k)
	}
	m.m.Put(k, v)
	return nil
}
