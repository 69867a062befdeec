package cliparser

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode fills the struct pointed by `out` with matched arguments.
// Fields are matched by the `arg` tag (see StructArgs), flags are decoded as `true`
// and values are converted to the field types (numbers, bools, durations,
// comma-separated slices).
func (r Result) Decode(out any) error {
	input := make(map[string]any, len(r))
	for name, value := range r {
		if str, ok := value.Get(); ok {
			input[name] = str
		} else {
			input[name] = true
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          argNameTag,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("failed to decode result: %w", err)
	}
	return nil
}
