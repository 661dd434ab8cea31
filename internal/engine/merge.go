package engine

import "github.com/knadh/koanf/maps"

// Merge folds docs left to right into a single document, starting from an
// empty object. Objects merge recursively key by key; arrays and scalars
// replace whatever was there, so the last value wins at every leaf.
// The inputs are not modified.
func Merge(docs ...any) any {
	var acc any = map[string]any{}
	for _, doc := range docs {
		acc = mergeValue(acc, doc)
	}
	return acc
}

func mergeValue(dst, src any) any {
	srcObj, ok := src.(map[string]any)
	if !ok {
		return src
	}

	dstObj, ok := dst.(map[string]any)
	if !ok {
		return maps.Copy(srcObj)
	}

	maps.Merge(maps.Copy(srcObj), dstObj)
	return dstObj
}
