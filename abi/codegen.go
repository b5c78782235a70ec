// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package abi

import (
	"errors"
	"fmt"
	"go/format"
	"strings"

	"github.com/ava-labs/avalanchego/utils/set"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/movetx/typetag"
)

var ErrUnsupportedBinding = errors.New("unsupported binding type")

// GenerateGoBindings renders one constructor per entry function. Each
// constructor takes typed Go arguments and returns the encoded payload.
// Script ABIs are skipped.
func GenerateGoBindings(abis []ScriptABI, packageName string) (string, error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("package %s\n\n", packageName))

	var body strings.Builder
	imports := set.Of(
		`"github.com/ava-labs/movetx/chain"`,
		`"github.com/ava-labs/movetx/codec"`,
		`"github.com/ava-labs/movetx/typetag"`,
	)
	processed := set.Set[string]{}
	for _, a := range abis {
		ef, ok := a.(*EntryFunctionABI)
		if !ok {
			continue
		}
		goName := goIdentifier(string(ef.ModuleName.Name)) + goIdentifier(ef.Name)
		if processed.Contains(goName) {
			return "", fmt.Errorf("%w: duplicate binding %s", ErrConflictingABI, goName)
		}
		processed.Add(goName)

		params := make([]string, 0, len(ef.ArgList)+1)
		if len(ef.TyArgs) > 0 {
			params = append(params, "typeArgs []typetag.TypeTag")
		}
		encoders := make([]string, 0, len(ef.ArgList))
		for i, arg := range ef.ArgList {
			goType, err := goTypeOf(arg.TypeTag)
			if err != nil {
				return "", fmt.Errorf("%s: %w", ef.QualifiedName(), err)
			}
			if strings.Contains(goType, "big.Int") {
				imports.Add(`"math/big"`)
			}
			name := fmt.Sprintf("arg%d", i)
			params = append(params, name+" "+goType)
			enc, err := goEncoder(arg.TypeTag, name, 1)
			if err != nil {
				return "", fmt.Errorf("%s: %w", ef.QualifiedName(), err)
			}
			encoders = append(encoders, enc)
		}

		body.WriteString(fmt.Sprintf("// %s builds a call to %s.\n", goName, ef.QualifiedName()))
		body.WriteString(fmt.Sprintf("func %s(%s) *chain.EntryFunction {\n", goName, strings.Join(params, ", ")))
		body.WriteString(fmt.Sprintf("\targs := make([][]byte, 0, %d)\n", len(ef.ArgList)))
		for _, enc := range encoders {
			body.WriteString("\t{\n\t\ts := codec.NewSerializer()\n")
			body.WriteString(enc)
			body.WriteString("\t\targs = append(args, s.Bytes())\n\t}\n")
		}
		typeArgs := "nil"
		if len(ef.TyArgs) > 0 {
			typeArgs = "typeArgs"
		}
		body.WriteString(fmt.Sprintf(
			"\treturn chain.NewEntryFunction(typetag.NewModuleID(codec.MustParseAddress(%q), %q), %q, %s, args)\n}\n\n",
			ef.ModuleName.Address.ShortString(), ef.ModuleName.Name, ef.Name, typeArgs,
		))
	}

	sb.WriteString("import (\n")
	sorted := imports.List()
	slices.Sort(sorted)
	for _, imp := range sorted {
		sb.WriteString("\t" + imp + "\n")
	}
	sb.WriteString(")\n\n")
	sb.WriteString(body.String())

	formatted, err := format.Source([]byte(sb.String()))
	if err != nil {
		return "", fmt.Errorf("failed to format generated code: %w", err)
	}

	return string(formatted), nil
}

func goTypeOf(tag typetag.TypeTag) (string, error) {
	switch t := tag.(type) {
	case typetag.Bool:
		return "bool", nil
	case typetag.U8:
		return "uint8", nil
	case typetag.U64:
		return "uint64", nil
	case typetag.U128:
		return "*big.Int", nil
	case typetag.Address:
		return "codec.Address", nil
	case typetag.Vector:
		if _, ok := t.Elem.(typetag.U8); ok {
			return "[]byte", nil
		}
		elem, err := goTypeOf(t.Elem)
		if err != nil {
			return "", err
		}
		return "[]" + elem, nil
	case typetag.StructTag:
		if t.IsString() {
			return "string", nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedBinding, tag)
}

// goEncoder writes the statements serializing expr into s.
func goEncoder(tag typetag.TypeTag, expr string, depth int) (string, error) {
	indent := strings.Repeat("\t", depth+1)
	switch t := tag.(type) {
	case typetag.Bool:
		return indent + "s.SerializeBool(" + expr + ")\n", nil
	case typetag.U8:
		return indent + "s.SerializeU8(" + expr + ")\n", nil
	case typetag.U64:
		return indent + "s.SerializeU64(" + expr + ")\n", nil
	case typetag.U128:
		return indent + "s.SerializeU128(" + expr + ")\n", nil
	case typetag.Address:
		return indent + expr + ".Serialize(s)\n", nil
	case typetag.Vector:
		if _, ok := t.Elem.(typetag.U8); ok {
			return indent + "s.SerializeBytes(" + expr + ")\n", nil
		}
		elem := fmt.Sprintf("e%d", depth)
		inner, err := goEncoder(t.Elem, elem, depth+1)
		if err != nil {
			return "", err
		}
		return indent + "s.SerializeLen(len(" + expr + "))\n" +
			indent + "for _, " + elem + " := range " + expr + " {\n" +
			inner +
			indent + "}\n", nil
	case typetag.StructTag:
		if t.IsString() {
			return indent + "s.SerializeStr(" + expr + ")\n", nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedBinding, tag)
}

// goIdentifier turns a snake_case Move name into an exported Go name.
func goIdentifier(name string) string {
	var sb strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return sb.String()
}
