package utils

import (
	"math/big"
	"reflect"
)

type toBigIntInterface interface {
	ToBigIntRegular(*big.Int) *big.Int
}

// FromInterface converts an interface to a big.Int element.
// Supported types are the usual Go integers, strings (base 0), byte slices,
// big.Int values and any type exposing ToBigIntRegular (e.g. fr.Element).
// It panics if the type is not supported.
func FromInterface(input interface{}) big.Int {
	var r big.Int

	switch v := input.(type) {
	case big.Int:
		r.Set(&v)
	case *big.Int:
		r.Set(v)
	case uint8:
		r.SetUint64(uint64(v))
	case uint16:
		r.SetUint64(uint64(v))
	case uint32:
		r.SetUint64(uint64(v))
	case uint64:
		r.SetUint64(v)
	case uint:
		r.SetUint64(uint64(v))
	case int8:
		r.SetInt64(int64(v))
	case int16:
		r.SetInt64(int64(v))
	case int32:
		r.SetInt64(int64(v))
	case int64:
		r.SetInt64(v)
	case int:
		r.SetInt64(int64(v))
	case string:
		if _, ok := r.SetString(v, 0); !ok {
			panic("unable to set big.Int from string " + v)
		}
	case []byte:
		r.SetBytes(v)
	default:
		if v, ok := input.(toBigIntInterface); ok {
			v.ToBigIntRegular(&r)
			return r
		} else if reflect.ValueOf(input).Kind() == reflect.Ptr {
			vv := reflect.ValueOf(input).Elem()
			if vv.CanInterface() {
				return FromInterface(vv.Interface())
			}
		}
		panic(reflect.TypeOf(input).String() + " to big.Int not supported")
	}

	return r
}
