package positional_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/interfacer/interfacer/cliutil/positional"
)

func Example() {
	type Inventory struct {
		Item string
		positional.Optional
		Count int
	}

	porch := Inventory{}
	err := positional.Parse(&porch, []string{"cat", "3"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("You have %d %s(s) on the porch\n", porch.Count, porch.Item)

	house := Inventory{
		Count: 1,
	}
	err = positional.Parse(&house, []string{"dog"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("You have %d %s(s) in the house\n", house.Count, house.Item)

	// Output:
	// You have 3 cat(s) on the porch
	// You have 1 dog(s) in the house
}

func TestParseEmpty(t *testing.T) {
	var args struct {
	}
	if err := positional.Parse(&args, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseNotAPointer(t *testing.T) {
	var args struct {
		Foo string
	}
	if err := positional.Parse(args, []string{"one"}); err == nil {
		t.Fatal("expected an error")
	}
}

func TestParseTooMany(t *testing.T) {
	var args struct {
		Foo string
	}
	err := positional.Parse(&args, []string{"one", "two"})
	if _, ok := err.(positional.ErrTooManyArgs); !ok {
		t.Fatalf("unexpected error: %T: %v", err, err)
	}
	if g, e := err.Error(), "too many arguments"; g != e {
		t.Errorf("unexpected error message: %q != %q", g, e)
	}
	if g, e := args.Foo, "one"; g != e {
		t.Errorf("unexpected value for Foo: %q != %q", g, e)
	}
}

func TestParseMandatoryMissing(t *testing.T) {
	var args struct {
		Bucket string
		Key    string `positional:"metavar=NAME"`
	}
	err := positional.Parse(&args, []string{"b"})
	if _, ok := err.(positional.ErrMissingMandatoryArg); !ok {
		t.Fatalf("unexpected error: %T: %v", err, err)
	}
	if g, e := err.Error(), "missing mandatory argument: NAME"; g != e {
		t.Errorf("unexpected error message: %q != %q", g, e)
	}
	if g, e := args.Bucket, "b"; g != e {
		t.Errorf("unexpected value for Bucket: %q != %q", g, e)
	}
}

func TestParseOptionalMissing(t *testing.T) {
	var args struct {
		Foo string
		positional.Optional
		Bar string
	}
	if err := positional.Parse(&args, []string{"one"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g, e := args.Foo, "one"; g != e {
		t.Errorf("unexpected value for Foo: %q != %q", g, e)
	}
	if g, e := args.Bar, ""; g != e {
		t.Errorf("unexpected value for Bar: %q != %q", g, e)
	}
}

func TestParsePlural(t *testing.T) {
	var args struct {
		Bucket string
		Keys   []string
	}
	if err := positional.Parse(&args, []string{"b", "one", "two"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g, e := args.Keys, []string{"one", "two"}; !reflect.DeepEqual(g, e) {
		t.Errorf("unexpected value for Keys: %q != %q", g, e)
	}
}

func TestParsePluralMandatoryMissing(t *testing.T) {
	var args struct {
		Keys []string
	}
	err := positional.Parse(&args, nil)
	if g, e := err, error(positional.ErrMissingMandatoryArg{Name: "KEYS.."}); g != e {
		t.Errorf("unexpected error: %v != %v", g, e)
	}
}

func TestParseSliceNotLast(t *testing.T) {
	var args struct {
		Keys   []string
		Bucket string
	}
	if err := positional.Parse(&args, []string{"a", "b"}); err == nil {
		t.Fatal("expected an error")
	}
}

func TestParseNumbers(t *testing.T) {
	var args struct {
		Level uint8
		Count int
		Ptr   *int64
		Flag  bool
	}
	if err := positional.Parse(&args, []string{"7", "-3", "12", "true"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g, e := args.Level, uint8(7); g != e {
		t.Errorf("unexpected value for Level: %d != %d", g, e)
	}
	if g, e := args.Count, -3; g != e {
		t.Errorf("unexpected value for Count: %d != %d", g, e)
	}
	if args.Ptr == nil {
		t.Fatal("unexpected nil value for Ptr")
	}
	if g, e := *args.Ptr, int64(12); g != e {
		t.Errorf("unexpected value for Ptr: %d != %d", g, e)
	}
	if !args.Flag {
		t.Errorf("unexpected value for Flag")
	}
}

func TestParseOverflow(t *testing.T) {
	var args struct {
		Level uint8
	}
	err := positional.Parse(&args, []string{"9000"})
	if _, ok := err.(positional.ErrBadArg); !ok {
		t.Fatalf("unexpected error: %T: %v", err, err)
	}
	if g, e := err.Error(), `bad argument LEVEL: strconv.ParseUint: parsing "9000": value out of range`; g != e {
		t.Errorf("unexpected error message: %q != %q", g, e)
	}
}

type upper string

func (u *upper) Set(s string) error {
	if s == "" {
		return fmt.Errorf("empty")
	}
	*u = upper(fmt.Sprintf("<%s>", s))
	return nil
}

func TestParseSetter(t *testing.T) {
	var args struct {
		Name upper
	}
	if err := positional.Parse(&args, []string{"x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g, e := args.Name, upper("<x>"); g != e {
		t.Errorf("unexpected value for Name: %q != %q", g, e)
	}
}
