package binder

import (
	"net/http"
	"reflect"
)

// Path creates a binder that populates struct fields tagged with `path`
// from URL path parameters. The extract function adapts to the router, e.g.
// chi.URLParam:
//
//	binder.Path(func(r *http.Request, name string) string {
//		return chi.URLParam(r, name)
//	})
func Path(extract func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		values, err := collectPathValues(r, v, extract)
		if err != nil {
			return err
		}
		return bindToStruct(v, "path", values, ErrFailedToParsePath)
	}
}

func collectPathValues(r *http.Request, v any, extract func(r *http.Request, name string) string) (map[string][]string, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return nil, ErrFailedToParsePath
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return nil, ErrFailedToParsePath
	}

	rt := rv.Type()
	values := make(map[string][]string, rt.NumField())

	for i := 0; i < rt.NumField(); i++ {
		paramName, skip := parseFieldTag(rt.Field(i), "path")
		if skip {
			continue
		}
		if val := extract(r, paramName); val != "" {
			values[paramName] = []string{val}
		}
	}

	return values, nil
}
