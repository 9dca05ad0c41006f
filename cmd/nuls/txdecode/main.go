// Command txdecode prints the decoded form of a serialized NULS transaction.
//
//	txdecode [--height N] [HEX]
//
// The hex may also be piped on stdin.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/nuls"
	"github.com/jessevdk/go-flags"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type config struct {
	Height uint64 `long:"height" description:"block height recorded on the decoded transaction"`
	Args   struct {
		Hex string `positional-arg-name:"HEX" description:"serialized transaction, hex encoded"`
	} `positional-args:"yes"`
}

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "txdecode:", err)
		os.Exit(1)
	}
}

func run(cfg config, stdin io.Reader, stdout io.Writer) error {
	input := cfg.Args.Hex
	if input == "" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		input = string(raw)
	}

	buf, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(input), "0x"))
	if err != nil {
		return fmt.Errorf("decode hex: %w", err)
	}
	tx, err := nuls.Decode(buf, cfg.Height)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(newTransactionView(tx), "", "  ")
	if err != nil {
		return fmt.Errorf("encode view: %w", err)
	}
	_, err = fmt.Fprintln(stdout, string(out))
	return err
}
