// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"

	"github.com/ava-labs/movetx/abi"
	"github.com/ava-labs/movetx/abi/dynamic"
	"github.com/ava-labs/movetx/api/rest"
	"github.com/ava-labs/movetx/auth"
	"github.com/ava-labs/movetx/builder"
	"github.com/ava-labs/movetx/chain"
	"github.com/ava-labs/movetx/cli/prompt"
	"github.com/ava-labs/movetx/codec"
	"github.com/ava-labs/movetx/utils"
)

const txTimeout = 30 * time.Second

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Build, sign and inspect transactions",
}

var txBuildCmd = &cobra.Command{
	Use:   "build [function]",
	Short: "Build a raw transaction calling an entry function or script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), txTimeout)
		defer cancel()

		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		sender, err := senderAddress(cmd)
		if err != nil {
			return err
		}
		resolver, err := newResolver(cmd, e)
		if err != nil {
			return err
		}

		fn := args[0]
		values, err := argValues(ctx, cmd, resolver, fn)
		if err != nil {
			return err
		}
		typeArgs, err := cmd.Flags().GetStringSlice("type-args")
		if err != nil {
			return err
		}

		config := e.defaults.BuilderConfig(sender)
		if config.SequenceNumber, err = cmd.Flags().GetUint64("sequence-number"); err != nil {
			return err
		}
		b := builder.NewRemote(e.client, resolver, config, builder.WithLogger(e.log), builder.WithTracer(e.tracer))
		raw, err := b.Build(ctx, fn, typeArgs, values)
		if err != nil {
			return fmt.Errorf("failed to build transaction: %w", err)
		}
		rawBytes, err := codec.Marshal(raw)
		if err != nil {
			return err
		}
		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if err := utils.SaveBytes(out, rawBytes); err != nil {
				return fmt.Errorf("failed to write transaction: %w", err)
			}
		}
		v, err := newRawView(raw, rawBytes)
		if err != nil {
			return err
		}
		return printValue(cmd, v)
	},
}

var txSignCmd = &cobra.Command{
	Use:   "sign [raw transaction hex or file]",
	Short: "Sign a raw transaction, optionally submitting or simulating it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), txTimeout)
		defer cancel()

		rawBytes, err := decodeFileOrHex(args[0])
		if err != nil {
			return err
		}
		raw, err := chain.UnmarshalRawTransaction(rawBytes)
		if err != nil {
			return fmt.Errorf("failed to decode raw transaction: %w", err)
		}
		key, err := loadKey(cmd)
		if err != nil {
			return err
		}
		signer := builder.NewEd25519SignerFromFactory(auth.NewED25519FactoryWithAddress(key, raw.Sender))

		simulate, _ := cmd.Flags().GetBool("simulate")
		submit, _ := cmd.Flags().GetBool("submit")
		if simulate {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			signed, err := signer.Simulate(raw)
			if err != nil {
				return err
			}
			results, err := e.client.SimulateTransaction(ctx, signed)
			if err != nil {
				return fmt.Errorf("failed to simulate transaction: %w", err)
			}
			return printValue(cmd, simulateCmdResponse{Results: results})
		}

		signedTx, err := signer.RawToSigned(raw)
		if err != nil {
			return fmt.Errorf("failed to sign transaction: %w", err)
		}
		signed, err := signedTx.Bytes()
		if err != nil {
			return err
		}
		if submit {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			pending, err := e.client.SubmitSignedTransaction(ctx, signed)
			if err != nil {
				return fmt.Errorf("failed to submit transaction: %w", err)
			}
			utils.Outf("{{green}}submitted transaction:{{/}} %s\n", pending.Hash)
		}
		v, err := newSignedView(signedTx, signed)
		if err != nil {
			return err
		}
		return printValue(cmd, v)
	},
}

var txDecodeCmd = &cobra.Command{
	Use:   "decode [transaction hex or file]",
	Short: "Decode a signed transaction, or a raw one with --raw",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := decodeFileOrHex(args[0])
		if err != nil {
			return err
		}
		if isRaw, _ := cmd.Flags().GetBool("raw"); isRaw {
			raw, err := chain.UnmarshalRawTransaction(b)
			if err != nil {
				return fmt.Errorf("failed to decode raw transaction: %w", err)
			}
			v, err := newRawView(raw, b)
			if err != nil {
				return err
			}
			return printValue(cmd, v)
		}
		signed, err := chain.UnmarshalSignedTransaction(b)
		if err != nil {
			return fmt.Errorf("failed to decode signed transaction: %w", err)
		}
		v, err := newSignedView(signed, b)
		if err != nil {
			return err
		}
		return printValue(cmd, v)
	},
}

type simulateCmdResponse struct {
	Results []rest.SimulationResult `json:"results"`
}

func (r simulateCmdResponse) String() string {
	var b strings.Builder
	for _, res := range r.Results {
		if res.Success {
			fmt.Fprintf(&b, "✅ simulation succeeded (gas used: %s)\n", res.GasUsed)
		} else {
			fmt.Fprintf(&b, "❌ simulation failed (gas used: %s): %s\n", res.GasUsed, res.VMStatus)
		}
	}
	return strings.TrimSpace(b.String())
}

// senderAddress is --sender, or the address of the configured key.
func senderAddress(cmd *cobra.Command) (codec.Address, error) {
	if s, _ := cmd.Flags().GetString("sender"); s != "" {
		return codec.ParseAddress(s)
	}
	key, err := loadKey(cmd)
	if err != nil {
		return codec.Address{}, err
	}
	return auth.NewED25519Address(key.PublicKey()), nil
}

// newResolver serves the --abi descriptors when given and the node's
// module listings otherwise.
func newResolver(cmd *cobra.Command, e *env) (abi.Resolver, error) {
	files, err := cmd.Flags().GetStringSlice("abi")
	if err != nil {
		return nil, err
	}
	if len(files) > 0 {
		descriptors := make([][]byte, len(files))
		for i, f := range files {
			if descriptors[i], err = decodeFileOrHex(f); err != nil {
				return nil, err
			}
		}
		return abi.NewLocalResolver(descriptors)
	}
	return abi.NewRemoteResolver(e.client,
		abi.WithCacheTTL(e.defaults.GetABICacheTTL()),
		abi.WithLogger(e.log),
		abi.WithTracer(e.tracer),
	)
}

// argValues reads the arguments from --json-args or --args. With
// neither, the user is asked for every parameter of fn.
func argValues(ctx context.Context, cmd *cobra.Command, resolver abi.Resolver, fn string) ([]dynamic.Value, error) {
	if jsonArgs, _ := cmd.Flags().GetString("json-args"); jsonArgs != "" {
		return dynamic.ParseJSONArgs([]byte(jsonArgs))
	}
	if line, _ := cmd.Flags().GetString("args"); line != "" {
		words, err := shellwords.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("failed to split args: %w", err)
		}
		return dynamic.Texts(words...), nil
	}

	isJSON, err := isJSONOutputRequested(cmd)
	if err != nil {
		return nil, err
	}
	a, err := resolver.Resolve(ctx, fn)
	if err != nil {
		return nil, err
	}
	if len(a.Args()) == 0 {
		return nil, nil
	}
	if isJSON {
		return nil, fmt.Errorf("%s takes %d arguments", fn, len(a.Args()))
	}
	values := make([]dynamic.Value, len(a.Args()))
	for i, arg := range a.Args() {
		if values[i], err = prompt.Arg(arg); err != nil {
			return nil, err
		}
	}
	return values, nil
}

func init() {
	txBuildCmd.Flags().StringSlice("type-args", nil, "Type arguments (e.g., 0x1::aptos_coin::AptosCoin)")
	txBuildCmd.Flags().String("args", "", "Space separated arguments, quoted like a shell")
	txBuildCmd.Flags().String("json-args", "", "Arguments as a JSON array")
	txBuildCmd.Flags().String("sender", "", "Sender address (defaults to the key's address)")
	txBuildCmd.Flags().Uint64("sequence-number", 0, "Sequence number (0 asks the node)")
	txBuildCmd.Flags().StringSlice("abi", nil, "Compiled ABI descriptors as hex or file paths")
	txBuildCmd.Flags().String("out", "", "Write the encoded raw transaction to a file")

	txSignCmd.Flags().Bool("submit", false, "Submit the signed transaction")
	txSignCmd.Flags().Bool("simulate", false, "Simulate with an all-zero signature instead of signing")

	txDecodeCmd.Flags().Bool("raw", false, "Decode a raw transaction instead of a signed one")

	txCmd.AddCommand(txBuildCmd, txSignCmd, txDecodeCmd)
	rootCmd.AddCommand(txCmd)
}
