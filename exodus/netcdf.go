package exodus

import (
	"fmt"
	"reflect"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"
)

// NetCDFStore adapts a NetCDF group to the Store boundary.
//
// The netcdf API exposes no dimension table, so the Exodus dimensions are
// reconstructed from the schema at open time: coordinate lengths give
// num_nodes and num_dim, connectivity row counts give the per-block
// dimensions and their sum num_elem, and the block / side set counts come
// from the name variables or a census of connect<i> / elem_ss<i> variables.
type NetCDFStore struct {
	path   string
	group  api.Group
	dims   map[string]int
	vars   map[string]bool
	closed bool
}

// OpenNetCDF opens an Exodus-II NetCDF file read-only.
func OpenNetCDF(path string) (st *NetCDFStore, err error) {
	group, err := netcdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mesh %s: %w", path, err)
	}
	st = &NetCDFStore{
		path:  path,
		group: group,
		dims:  make(map[string]int),
		vars:  make(map[string]bool),
	}
	for _, name := range group.ListVariables() {
		st.vars[name] = true
	}
	st.scanDims()
	return st, nil
}

// varLen returns the outermost dimension length of a variable without
// reading its values.
func (st *NetCDFStore) varLen(name string) (n int, ok bool) {
	if !st.vars[name] {
		return 0, false
	}
	vg, err := st.group.GetVarGetter(name)
	if err != nil {
		return 0, false
	}
	return int(vg.Len()), true
}

func (st *NetCDFStore) scanDims() {
	if nn, ok := st.varLen("coordx"); ok {
		st.dims["num_nodes"] = nn
		if st.vars["coordz"] {
			st.dims["num_dim"] = 3
		} else {
			st.dims["num_dim"] = 2
		}
	}

	nblk := 0
	nelem := 0
	for {
		count, ok := st.varLen(fmt.Sprintf("connect%d", nblk+1))
		if !ok {
			break
		}
		nblk++
		st.dims[fmt.Sprintf("num_el_in_blk%d", nblk)] = count
		nelem += count
	}
	if nblk == 0 {
		if n, ok := st.varLen("eb_names"); ok {
			nblk = n
		}
	}
	if nblk > 0 {
		st.dims["num_el_blk"] = nblk
		st.dims["num_elem"] = nelem
	}

	nss := 0
	for {
		if !st.vars[fmt.Sprintf("elem_ss%d", nss+1)] {
			break
		}
		nss++
	}
	if nss == 0 {
		if n, ok := st.varLen("ss_names"); ok {
			nss = n
		}
	}
	if nss > 0 {
		st.dims["num_side_sets"] = nss
	}
}

func (st *NetCDFStore) Path() string { return st.path }

func (st *NetCDFStore) Dim(name string) (size int, ok bool) {
	size, ok = st.dims[name]
	return
}

func (st *NetCDFStore) HasVar(name string) bool { return st.vars[name] }

func (st *NetCDFStore) values(name string) (interface{}, error) {
	if !st.vars[name] {
		return nil, fmt.Errorf("%w: %s in mesh: %s", ErrMissingVariable, name, st.path)
	}
	v, err := st.group.GetVariable(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s from mesh %s: %w", name, st.path, err)
	}
	return v.Values, nil
}

func (st *NetCDFStore) VarFloat64(name string) (vals []float64, err error) {
	raw, err := st.values(name)
	if err != nil {
		return nil, err
	}
	vals = make([]float64, 0)
	if vals, err = flattenFloats(raw, vals); err != nil {
		return nil, fmt.Errorf("variable %s in mesh %s: %w", name, st.path, err)
	}
	return
}

func (st *NetCDFStore) VarInt(name string) (vals []int, err error) {
	raw, err := st.values(name)
	if err != nil {
		return nil, err
	}
	vals = make([]int, 0)
	if vals, err = flattenInts(raw, vals); err != nil {
		return nil, fmt.Errorf("variable %s in mesh %s: %w", name, st.path, err)
	}
	return
}

func (st *NetCDFStore) VarNames(name string) (rows []string, err error) {
	raw, err := st.values(name)
	if err != nil {
		return nil, err
	}
	// char variables arrive with the fastest dimension collapsed to string
	switch v := raw.(type) {
	case []string:
		return v, nil
	case string:
		return []string{v}, nil
	}
	return nil, fmt.Errorf("variable %s in mesh %s: not a character array", name, st.path)
}

func (st *NetCDFStore) Attr(varName, attrName string) (val string, ok bool) {
	if !st.vars[varName] {
		return "", false
	}
	vg, err := st.group.GetVarGetter(varName)
	if err != nil {
		return "", false
	}
	raw, has := vg.Attributes().Get(attrName)
	if !has {
		return "", false
	}
	switch v := raw.(type) {
	case string:
		return v, true
	case []string:
		if len(v) > 0 {
			return v[0], true
		}
	}
	return "", false
}

func (st *NetCDFStore) Close() error {
	if st.closed {
		return nil
	}
	st.closed = true
	st.group.Close()
	return nil
}

// flattenFloats appends the numeric values found in an arbitrarily nested
// slice, row-major.
func flattenFloats(raw interface{}, out []float64) ([]float64, error) {
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		var err error
		for i := 0; i < rv.Len(); i++ {
			if out, err = flattenFloats(rv.Index(i).Interface(), out); err != nil {
				return nil, err
			}
		}
		return out, nil
	case reflect.Float32, reflect.Float64:
		return append(out, rv.Float()), nil
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		return append(out, float64(rv.Int())), nil
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		return append(out, float64(rv.Uint())), nil
	}
	return nil, fmt.Errorf("unexpected element type %T", raw)
}

// flattenInts appends the integer values found in an arbitrarily nested
// slice, row-major.
func flattenInts(raw interface{}, out []int) ([]int, error) {
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		var err error
		for i := 0; i < rv.Len(); i++ {
			if out, err = flattenInts(rv.Index(i).Interface(), out); err != nil {
				return nil, err
			}
		}
		return out, nil
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		return append(out, int(rv.Int())), nil
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		return append(out, int(rv.Uint())), nil
	}
	return nil, fmt.Errorf("unexpected element type %T", raw)
}
