package dict_test

import (
	"errors"
	"fmt"

	"github.com/ekisa-team/convdict/convert"
	"github.com/ekisa-team/convdict/dict"
)

func Example() {
	d := dict.From(map[string]any{"port": "42", "retries": "many"})

	port, _ := dict.Get(d, "port", dict.WithType(convert.Int))
	retries, _ := dict.Get(d, "retries", dict.WithType(convert.Int), dict.WithDefault(-1))
	timeout, _ := dict.Pop(d, "timeout", dict.WithType(convert.Int), dict.WithDefault(-1))

	_, err := dict.Get(d, "retries", dict.WithType(convert.Int), dict.Required[int](true))
	fmt.Println(port, retries, timeout, errors.Is(err, dict.ErrConversion))
	// Output: 42 -1 -1 true
}

func ExamplePop() {
	d := dict.From(map[string]any{"name": "convdict"})

	name, _ := dict.Pop(d, "name", dict.WithType(convert.String))
	_, err := dict.Pop(d, "name", dict.WithType(convert.String))

	fmt.Println(name, d.Has("name"), errors.Is(err, dict.ErrNotFound))
	// Output: convdict false true
}
