package positional

import (
	"reflect"
	"strings"
)

// tagField returns the value of key in a struct tag such as
// `positional:"metavar=BUCKET"`, or "" if it is not there.
func tagField(tag string, key string) string {
	prefix := key + "="
	for _, f := range strings.Split(tag, ",") {
		if strings.HasPrefix(f, prefix) {
			return f[len(prefix):]
		}
	}
	return ""
}

func meta(field reflect.StructField) string {
	name := tagField(field.Tag.Get("positional"), "metavar")
	if name == "" {
		name = strings.ToUpper(field.Name)
	}
	if field.Type.Kind() == reflect.Slice {
		name += ".."
	}
	return name
}

// Usage returns a synopsis of the arguments struct, for example
// "BUCKET [KEY..]". args may be a struct or a pointer to one.
//
// The "metavar" key of the "positional" struct tag overrides the
// upper-cased field name.
func Usage(args interface{}) string {
	typ := reflect.Indirect(reflect.ValueOf(args)).Type()

	var metas []string
	optional := 0
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if sf.Type == optionalType {
			optional++
			continue
		}
		if optional > 0 {
			metas = append(metas, "["+meta(sf))
			continue
		}
		metas = append(metas, meta(sf))
	}

	nest := 0
	for _, m := range metas {
		if strings.HasPrefix(m, "[") {
			nest++
		}
	}
	if nest > 0 {
		metas[len(metas)-1] += strings.Repeat("]", nest)
	}
	return strings.Join(metas, " ")
}
