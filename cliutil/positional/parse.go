// Package positional fills a struct from positional command-line
// arguments.
//
// Fields are filled in declaration order. Embedding Optional marks the
// rest of the fields optional, and a slice as the last field consumes
// all remaining arguments:
//
//     var args struct {
//         Bucket string
//         positional.Optional
//         Keys []string `positional:"metavar=KEY"`
//     }
package positional

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

// ErrTooManyArgs indicates that there were too many arguments.
type ErrTooManyArgs struct{}

func (ErrTooManyArgs) Error() string {
	return "too many arguments"
}

// ErrMissingMandatoryArg indicates that a mandatory argument is
// missing.
type ErrMissingMandatoryArg struct {
	Name string
}

func (e ErrMissingMandatoryArg) Error() string {
	return "missing mandatory argument: " + e.Name
}

// ErrBadArg indicates that an argument could not be converted to the
// type of its field.
type ErrBadArg struct {
	Name string
	Err  error
}

func (e ErrBadArg) Error() string {
	return fmt.Sprintf("bad argument %s: %v", e.Name, e.Err)
}

// Setter can be implemented by fields that need to control their
// conversion from string. It is compatible with flag.Value.
type Setter interface {
	Set(string) error
}

// Optional is a marker for the point in the arguments struct where
// the rest of the fields are optional.
type Optional struct{}

var optionalType = reflect.TypeOf(Optional{})

// Parse fills the fields of the struct pointed to by args from list.
//
// Parse returns ErrMissingMandatoryArg if a mandatory field was not
// filled, ErrTooManyArgs if arguments are left over and ErrBadArg if
// an argument does not convert to its field.
func Parse(args interface{}, list []string) error {
	ptr := reflect.ValueOf(args)
	if ptr.Kind() != reflect.Ptr || ptr.Elem().Kind() != reflect.Struct {
		return errors.New("positional.Parse needs a pointer to a struct")
	}
	value := ptr.Elem()
	typ := value.Type()
	mandatory := true

	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if sf.Type == optionalType {
			mandatory = false
			continue
		}
		field := value.Field(i)

		if field.Kind() == reflect.Slice {
			if i != typ.NumField()-1 {
				return errors.New("cannot have items in argument struct after a slice element")
			}
			if len(list) == 0 && mandatory {
				return ErrMissingMandatoryArg{Name: meta(sf)}
			}
			for _, s := range list {
				elem := reflect.New(sf.Type.Elem()).Elem()
				if err := set(elem, s); err != nil {
					return ErrBadArg{Name: meta(sf), Err: err}
				}
				field.Set(reflect.Append(field, elem))
			}
			list = nil
			break
		}

		if len(list) == 0 {
			if mandatory {
				return ErrMissingMandatoryArg{Name: meta(sf)}
			}
			// only optional fields left
			break
		}
		if err := set(field, list[0]); err != nil {
			return ErrBadArg{Name: meta(sf), Err: err}
		}
		list = list[1:]
	}

	if len(list) > 0 {
		return ErrTooManyArgs{}
	}
	return nil
}

// set converts s into the addressable value v.
func set(v reflect.Value, s string) error {
	if setter, ok := v.Addr().Interface().(Setter); ok {
		return setter.Set(s)
	}
	if v.Kind() == reflect.Ptr {
		// instantiate a new value, parse into it
		n := reflect.New(v.Type().Elem())
		if err := set(n.Elem(), s); err != nil {
			return err
		}
		v.Set(n)
		return nil
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	default:
		return fmt.Errorf("cannot parse into %s", v.Type())
	}
	return nil
}
