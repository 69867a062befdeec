package cliparser

import (
	"errors"
	"fmt"
	"reflect"
	"unicode/utf8"
)

const (
	argNameTag  = "arg"
	argKindTag  = "argKind"
	argShortTag = "argShort"
)

var ErrInvalidTag = errors.New("invalid struct tag")

// getFieldArg builds Arg from the field tags. Returns false if the field is not tagged
func getFieldArg(field reflect.StructField) (arg Arg, isTagged bool, err error) {
	tags := field.Tag
	name, hasName := tags.Lookup(argNameTag)
	if name == "-" {
		hasName = false
	}
	kindStr, hasKind := tags.Lookup(argKindTag)
	shortStr, hasShort := tags.Lookup(argShortTag)

	if !hasName {
		for tagName, hasTag := range map[string]bool{
			argKindTag:  hasKind,
			argShortTag: hasShort,
		} {
			if hasTag {
				return arg, false, fmt.Errorf(`%w: "%s" tag can be used only with "%s" tag`,
					ErrInvalidTag, tagName, argNameTag)
			}
		}
		return arg, false, nil
	}
	if name == "" {
		return arg, false, fmt.Errorf(`%w: empty "%s" tag`, ErrInvalidTag, argNameTag)
	}

	isBool := isBoolType(field.Type)
	kind := KindInput
	if isBool {
		kind = KindFlag
	}
	if hasKind {
		if kind, err = ParseKind(kindStr); err != nil {
			return arg, false, err
		}
	}
	if kind == KindFlag && !isBool {
		return arg, false, fmt.Errorf(`%w: flag field must be bool, got %s`, ErrInvalidTag, field.Type)
	}

	switch kind {
	case KindParam:
		arg = Param(name)
	case KindFlag:
		arg = Flag(name)
	default:
		arg = Input(name)
	}

	if hasShort {
		if utf8.RuneCountInString(shortStr) != 1 {
			return arg, false, fmt.Errorf(`%w: "%s" must be a single character, got "%s"`,
				ErrInvalidTag, argShortTag, shortStr)
		}
		ch, _ := utf8.DecodeRuneInString(shortStr)
		arg = arg.Short(ch)
	}
	return arg, true, nil
}

func isBoolType(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Bool
}
