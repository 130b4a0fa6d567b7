// Package fixtures creates random test data.
// This is primarily and only used for testing.
package fixtures

import (
	"math/rand"
	"reflect"
	"sync"
	"time"

	"github.com/Pallinder/go-randomdata"
)

// New returns a value of T with every settable field populated with random content.
// With fixtures, it becomes easy to write test cases that don't depend on hand-picked values.
func New[T any]() T {
	var v T
	ptr := reflect.New(reflect.TypeOf(v))
	elem := ptr.Elem()

	if elem.Kind() == reflect.Struct {
		for i := 0; i < elem.NumField(); i++ {
			fv := elem.Field(i)
			if !fv.CanSet() {
				continue
			}
			if nv := newValue(fv); nv.IsValid() {
				fv.Set(nv)
			}
		}
		return ptr.Elem().Interface().(T)
	}

	if nv := newValue(elem); nv.IsValid() {
		elem.Set(nv)
	}
	return ptr.Elem().Interface().(T)
}

var mutex sync.Mutex

func newValue(value reflect.Value) reflect.Value {
	switch value.Type().Kind() {

	case reflect.Bool:
		mutex.Lock()
		defer mutex.Unlock()
		return reflect.ValueOf(randomdata.Boolean())

	case reflect.String:
		mutex.Lock()
		defer mutex.Unlock()
		return reflect.ValueOf(randomdata.SillyName())

	case reflect.Int:
		return reflect.ValueOf(rand.Int())

	case reflect.Int8:
		return reflect.ValueOf(int8(rand.Int()))

	case reflect.Int16:
		return reflect.ValueOf(int16(rand.Int()))

	case reflect.Int32:
		return reflect.ValueOf(rand.Int31())

	case reflect.Int64:
		switch value.Interface().(type) {
		case time.Duration:
			return reflect.ValueOf(time.Duration(rand.Int63()))
		default:
			return reflect.ValueOf(rand.Int63())
		}

	case reflect.Uint:
		return reflect.ValueOf(uint(rand.Uint32()))

	case reflect.Uint8:
		return reflect.ValueOf(uint8(rand.Uint32()))

	case reflect.Uint16:
		return reflect.ValueOf(uint16(rand.Uint64()))

	case reflect.Uint32:
		return reflect.ValueOf(rand.Uint32())

	case reflect.Uint64:
		return reflect.ValueOf(rand.Uint64())

	case reflect.Float32:
		return reflect.ValueOf(rand.Float32())

	case reflect.Float64:
		return reflect.ValueOf(rand.Float64())

	case reflect.Slice:
		return reflect.MakeSlice(value.Type(), 0, 0)

	case reflect.Map:
		return reflect.MakeMap(value.Type())

	case reflect.Ptr:
		return reflect.New(value.Type().Elem())

	default:
		return reflect.ValueOf(nil)
	}
}
