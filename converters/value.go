// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/mitchellh/mapstructure"
	"lukechampine.com/uint128"

	"github.com/SebastianSpeitel/datalink/core"
)

// FromValue converts a Go value. Values that already are core.Data are
// returned as is; nil and nil pointers become core.Empty. Named basic types
// convert like their underlying type. Values must not contain pointer cycles.
func FromValue(v any) (core.Data, error) {
	switch x := v.(type) {
	case nil:
		return core.Empty{}, nil
	case core.Data:
		return x, nil
	case bool:
		return core.Bool(x), nil
	case int:
		return core.I64(int64(x)), nil
	case int8:
		return core.I8(x), nil
	case int16:
		return core.I16(x), nil
	case int32:
		return core.I32(x), nil
	case int64:
		return core.I64(x), nil
	case uint:
		return core.U64(uint64(x)), nil
	case uint8:
		return core.U8(x), nil
	case uint16:
		return core.U16(x), nil
	case uint32:
		return core.U32(x), nil
	case uint64:
		return core.U64(x), nil
	case uint128.Uint128:
		return core.U128(x), nil
	case core.Int128:
		return core.I128(x), nil
	case float32:
		return core.F32(x), nil
	case float64:
		return core.F64(x), nil
	case string:
		return core.Str(x), nil
	case []byte:
		return core.Bytes(x), nil
	case []any:
		return sequenceOf(len(x), func(i int) any { return x[i] })
	case map[string]any:
		return mappingOf("", x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return core.Empty{}, nil
		}
		if rv.Elem().Kind() == reflect.Struct {
			return structOf(rv.Elem())
		}
		return FromValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return core.Bytes(rv.Bytes()), nil
		}
		return sequenceOf(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key type %s", ErrUnsupported, rv.Type().Key())
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return mappingOf("", m)
	case reflect.Struct:
		return structOf(rv)
	case reflect.String:
		return core.Str(rv.String()), nil
	case reflect.Bool:
		return core.Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int64:
		return core.I64(rv.Int()), nil
	case reflect.Int8:
		return core.I8(int8(rv.Int())), nil
	case reflect.Int16:
		return core.I16(int16(rv.Int())), nil
	case reflect.Int32:
		return core.I32(int32(rv.Int())), nil
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return core.U64(rv.Uint()), nil
	case reflect.Uint8:
		return core.U8(uint8(rv.Uint())), nil
	case reflect.Uint16:
		return core.U16(uint16(rv.Uint())), nil
	case reflect.Uint32:
		return core.U32(uint32(rv.Uint())), nil
	case reflect.Float32:
		return core.F32(float32(rv.Float())), nil
	case reflect.Float64:
		return core.F64(rv.Float()), nil
	}

	return core.OtherOf(v), nil
}

func sequenceOf(n int, at func(int) any) (core.Data, error) {
	s := &Sequence{items: make([]core.Data, 0, n)}
	for i := 0; i < n; i++ {
		d, err := FromValue(at(i))
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		s.Append(d)
	}

	return s, nil
}

// mappingOf converts m with its keys in sorted order.
func mappingOf(name string, m map[string]any) (core.Data, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := NewMapping(name)
	for _, k := range keys {
		d, err := FromValue(m[k])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		out.Set(core.Str(k), d)
	}

	return out, nil
}

// structOf decodes the exported fields of rv into a map, honoring
// mapstructure tags, and converts that map.
func structOf(rv reflect.Value) (core.Data, error) {
	var m map[string]any
	if err := mapstructure.Decode(rv.Interface(), &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupported, rv.Type(), err)
	}

	return mappingOf(rv.Type().Name(), m)
}
