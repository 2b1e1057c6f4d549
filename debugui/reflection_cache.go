package debugui

import (
	"fmt"
	"reflect"
	"sync"
)

type FieldInfo struct {
	Name     string
	Type     reflect.Type
	Index    int
	IsStruct bool
}

type ReflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fieldCache: make(map[reflect.Type][]FieldInfo),
	}
}

// GetFields lists the exported fields of struct type t.
func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			fields = append(fields, FieldInfo{
				Name:     field.Name,
				Type:     field.Type,
				Index:    i,
				IsStruct: field.Type.Kind() == reflect.Struct,
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

var globalReflectionCache = NewReflectionCache()

// fieldLines formats the exported fields of a struct as "Name: value",
// flattening nested structs with a dotted prefix.
func fieldLines(v any) []string {
	return appendFieldLines(nil, "", reflect.ValueOf(v))
}

func appendFieldLines(lines []string, prefix string, val reflect.Value) []string {
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return lines
		}
		val = val.Elem()
	}

	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		fieldVal := val.Field(field.Index)
		name := prefix + field.Name

		// structs with their own String keep it
		if field.IsStruct && !field.Type.Implements(reflect.TypeFor[fmt.Stringer]()) {
			lines = appendFieldLines(lines, name+".", fieldVal)
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %v", name, fieldVal.Interface()))
	}
	return lines
}
