package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	abci "github.com/cometbft/cometbft/v2/abci/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type execOutput struct {
	Code      uint32          `json:"code"`
	Codespace string          `json:"codespace,omitempty"`
	Log       string          `json:"log,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Events    []abci.Event    `json:"events,omitempty"`
}

// ExecCmd delivers one JSON transaction and prints the result.
func ExecCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "exec [tx-file]",
		Short: "Execute a JSON transaction read from a file or stdin",
		Long: `Execute a JSON transaction envelope:

  {"type":"arcade/play","sender":"arcade1...","funds":[{"denom":"uarc","amount":"10"}]}

With no argument, or "-", the transaction is read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txBytes, err := readTx(cmd, args)
			if err != nil {
				return err
			}

			a, err := loadApp(cmd, v)
			if err != nil {
				return err
			}
			defer a.Close()

			res := a.DeliverTx(cmd.Context(), txBytes)
			out := execOutput{
				Code:      res.Code,
				Codespace: res.Codespace,
				Log:       res.Log,
				Events:    res.Events,
			}
			if len(res.Data) > 0 {
				out.Data = res.Data
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				return err
			}
			if res.Code != 0 {
				return fmt.Errorf("tx failed: %s code %d: %s", res.Codespace, res.Code, res.Log)
			}
			return nil
		},
	}
}

func readTx(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read tx file: %w", err)
	}
	return b, nil
}
