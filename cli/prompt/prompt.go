// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ava-labs/movetx/abi"
	"github.com/ava-labs/movetx/abi/dynamic"
	"github.com/ava-labs/movetx/codec"
	"github.com/ava-labs/movetx/typetag"
)

var (
	ErrInputEmpty    = errors.New("input is empty")
	ErrInvalidChoice = errors.New("invalid choice")
)

func Address(label string) (codec.Address, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := codec.ParseAddress(strings.TrimSpace(input))
			return err
		},
	}
	recipient, err := promptText.Run()
	if err != nil {
		return codec.Address{}, err
	}
	return codec.ParseAddress(strings.TrimSpace(recipient))
}

func String(label string) (string, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if len(input) == 0 {
				return ErrInputEmpty
			}
			return nil
		},
	}
	text, err := promptText.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func Bool(label string) (bool, error) {
	promptText := promptui.Prompt{
		Label: label + " (y/n)",
		Validate: func(input string) error {
			if len(input) == 0 {
				return ErrInputEmpty
			}
			lower := strings.ToLower(input)
			if lower == "y" || lower == "n" {
				return nil
			}
			return ErrInvalidChoice
		},
	}
	rawContinue, err := promptText.Run()
	if err != nil {
		return false, err
	}
	return strings.ToLower(rawContinue) == "y", nil
}

// Arg asks for the value of an entry function or script parameter. The
// answer is checked against the parameter type before it is accepted.
func Arg(arg abi.ArgumentABI) (dynamic.Value, error) {
	label := fmt.Sprintf("%s (%s)", arg.Name, arg.TypeTag)
	switch tag := arg.TypeTag.(type) {
	case typetag.Bool:
		b, err := Bool(label)
		if err != nil {
			return nil, err
		}
		return dynamic.Bool(b), nil
	case typetag.Address:
		addr, err := Address(label)
		if err != nil {
			return nil, err
		}
		return dynamic.Address(addr), nil
	case typetag.Vector:
		// anything other than vector<u8> is typed as a JSON array
		if tag.Elem.Variant() != typetag.U8Variant {
			return jsonArg(label, tag)
		}
	}
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := dynamic.EncodeArg(dynamic.Text(input), arg.TypeTag)
			return err
		},
	}
	text, err := promptText.Run()
	if err != nil {
		return nil, err
	}
	return dynamic.Text(text), nil
}

func jsonArg(label string, tag typetag.TypeTag) (dynamic.Value, error) {
	parse := func(input string) (dynamic.Value, error) {
		v, err := dynamic.ParseJSON([]byte(input))
		if err != nil {
			return nil, err
		}
		if _, err := dynamic.EncodeArg(v, tag); err != nil {
			return nil, err
		}
		return v, nil
	}
	promptText := promptui.Prompt{
		Label: label + " as json",
		Validate: func(input string) error {
			_, err := parse(input)
			return err
		},
	}
	text, err := promptText.Run()
	if err != nil {
		return nil, err
	}
	return parse(text)
}
