package main

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack/v5"

	"bigint/internal/bignum"
)

// readOperand parses a decimal argument, or loads a msgpack-encoded value when
// the argument is @path.
func readOperand(arg string) (bignum.BigInt, error) {
	path, ok := strings.CutPrefix(arg, "@")
	if !ok {
		x, err := bignum.Parse(arg)
		if err != nil {
			return bignum.BigInt{}, errors.Wrap(err, "invalid operand")
		}
		return x, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return bignum.BigInt{}, errors.Wrapf(err, "read operand %s", path)
	}
	var x bignum.BigInt
	if err := msgpack.Unmarshal(data, &x); err != nil {
		return bignum.BigInt{}, errors.Wrapf(err, "decode operand %s", path)
	}
	return x, nil
}

// writeOperand stores x at path in the form readOperand accepts.
func writeOperand(path string, x bignum.BigInt) error {
	data, err := msgpack.Marshal(x)
	if err != nil {
		return errors.Wrap(err, "encode result")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

func readOperands(args []string) ([]bignum.BigInt, error) {
	out := make([]bignum.BigInt, len(args))
	for i, arg := range args {
		x, err := readOperand(arg)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}
