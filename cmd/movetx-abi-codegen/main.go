// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ava-labs/avalanchego/utils/perms"

	"github.com/ava-labs/movetx/abi"
	"github.com/ava-labs/movetx/utils"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: movetx-abi-codegen <output_file.go> <descriptor.abi>...")
		os.Exit(1)
	}

	outputFile := os.Args[1]
	inputFiles := os.Args[2:]

	abis := make([]abi.ScriptABI, 0, len(inputFiles))
	for _, inputFile := range inputFiles {
		b, err := utils.LoadBytes(inputFile, -1)
		if err != nil {
			fmt.Printf("Error reading input file: %v\n", err)
			os.Exit(1)
		}
		a, err := abi.UnmarshalScriptABI(b)
		if err != nil {
			fmt.Printf("Error decoding %s: %v\n", inputFile, err)
			os.Exit(1)
		}
		abis = append(abis, a)
	}

	packageName := filepath.Base(filepath.Dir(outputFile))

	generatedCode, err := abi.GenerateGoBindings(abis, packageName)
	if err != nil {
		fmt.Printf("Error generating Go bindings: %v\n", err)
		os.Exit(1)
	}

	if _, err := utils.InitSubDirectory(filepath.Dir(outputFile), ""); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outputFile, []byte(generatedCode), perms.ReadWrite); err != nil {
		fmt.Printf("Error writing output file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated Go bindings in %s\n", outputFile)
}
