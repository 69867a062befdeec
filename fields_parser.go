package cliparser

import (
	"fmt"
	"reflect"
)

// StructArgs builds definitions from the tags of the struct pointed by `p`:
//
//	type MyArgs struct {
//		File    string `arg:"file" argKind:"param"`
//		Level   int    `arg:"level" argShort:"l"`
//		Verbose bool   `arg:"verbose" argShort:"v"`
//	}
//
// Bool fields are flags by default, other fields are inputs. The order of params
// follows the order of fields. Untagged fields and fields tagged `arg:"-"` are skipped.
// Use Result.Decode to fill the struct after parsing.
func StructArgs(p any) ([]Arg, error) {
	structValue, err := getStructPointerElem(p)
	if err != nil {
		return nil, err
	}
	structType := structValue.Type()

	var res []Arg
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		arg, isTagged, err := getFieldArg(field)
		if err != nil {
			return nil, fmt.Errorf(`field "%s": %w`, field.Name, err)
		}
		if !isTagged {
			continue
		}
		if !field.IsExported() {
			return nil, fmt.Errorf(`field "%s": %w: field is not exported`, field.Name, ErrInvalidTag)
		}
		res = append(res, arg)
	}
	return res, nil
}

// AddStruct registers definitions built by StructArgs
func (p *Parser) AddStruct(ptr any) error {
	args, err := StructArgs(ptr)
	if err != nil {
		return err
	}
	return p.AddAll(args...)
}

func getStructPointerElem(p any) (res reflect.Value, err error) {
	val := reflect.ValueOf(p)
	if val.Kind() != reflect.Pointer {
		return reflect.Value{}, fmt.Errorf("expected pointer to struct, got %T", p)
	}
	res = val.Elem()
	if res.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("expected struct, got %v", res.Type())
	}
	return res, nil
}
