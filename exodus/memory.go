package exodus

import "fmt"

// MemStore is a map-backed Store. It backs the package tests and is the
// seam for building synthetic meshes without a file on disk.
type MemStore struct {
	path   string
	dims   map[string]int
	ints   map[string][]int
	floats map[string][]float64
	names  map[string][]string
	attrs  map[string]map[string]string
	closed bool
}

func NewMemStore(path string) (ms *MemStore) {
	ms = &MemStore{
		path:   path,
		dims:   make(map[string]int),
		ints:   make(map[string][]int),
		floats: make(map[string][]float64),
		names:  make(map[string][]string),
		attrs:  make(map[string]map[string]string),
	}
	return
}

func (ms *MemStore) SetDim(name string, size int) *MemStore {
	ms.dims[name] = size
	return ms
}

func (ms *MemStore) SetIntVar(name string, vals []int) *MemStore {
	ms.ints[name] = vals
	return ms
}

func (ms *MemStore) SetFloatVar(name string, vals []float64) *MemStore {
	ms.floats[name] = vals
	return ms
}

func (ms *MemStore) SetNameVar(name string, vals []string) *MemStore {
	ms.names[name] = vals
	return ms
}

func (ms *MemStore) SetAttr(varName, attrName, val string) *MemStore {
	if _, ok := ms.attrs[varName]; !ok {
		ms.attrs[varName] = make(map[string]string)
	}
	ms.attrs[varName][attrName] = val
	return ms
}

func (ms *MemStore) Path() string { return ms.path }

func (ms *MemStore) Dim(name string) (size int, ok bool) {
	size, ok = ms.dims[name]
	return
}

func (ms *MemStore) HasVar(name string) bool {
	if _, ok := ms.ints[name]; ok {
		return true
	}
	if _, ok := ms.floats[name]; ok {
		return true
	}
	_, ok := ms.names[name]
	return ok
}

func (ms *MemStore) VarFloat64(name string) ([]float64, error) {
	if vals, ok := ms.floats[name]; ok {
		return vals, nil
	}
	if vals, ok := ms.ints[name]; ok {
		out := make([]float64, len(vals))
		for i, v := range vals {
			out[i] = float64(v)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %s in mesh: %s", ErrMissingVariable, name, ms.path)
}

func (ms *MemStore) VarInt(name string) ([]int, error) {
	if vals, ok := ms.ints[name]; ok {
		return vals, nil
	}
	return nil, fmt.Errorf("%w: %s in mesh: %s", ErrMissingVariable, name, ms.path)
}

func (ms *MemStore) VarNames(name string) ([]string, error) {
	if vals, ok := ms.names[name]; ok {
		return vals, nil
	}
	return nil, fmt.Errorf("%w: %s in mesh: %s", ErrMissingVariable, name, ms.path)
}

func (ms *MemStore) Attr(varName, attrName string) (val string, ok bool) {
	attrs, found := ms.attrs[varName]
	if !found {
		return "", false
	}
	val, ok = attrs[attrName]
	return
}

func (ms *MemStore) Close() error {
	ms.closed = true
	return nil
}
