package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/riskstream-systems/riskstream-stack/cli/internal/client"
)

var (
	submitID        string
	submitAmount    float64
	submitTimestamp string
	submitExtras    []string
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a single transaction to the ingress service",
	Example: `  riskstream submit --amount 149.99
  riskstream submit --id txn-42 --amount 250 --extra merchant=acme --extra region=eu`,
	RunE: func(cmd *cobra.Command, args []string) error {
		record := map[string]interface{}{
			"id":        submitID,
			"amount":    submitAmount,
			"timestamp": submitTimestamp,
		}
		if record["id"] == "" {
			record["id"] = uuid.NewString()
		}
		if record["timestamp"] == "" {
			record["timestamp"] = time.Now().UTC().Format(time.RFC3339)
		}
		for _, kv := range submitExtras {
			key, value, ok := strings.Cut(kv, "=")
			if !ok {
				return fmt.Errorf("invalid --extra %q, expected key=value", kv)
			}
			record[key] = value
		}

		c := client.NewTransactionClient(ingressURL)
		ack, err := c.Submit(record)
		if err != nil {
			return err
		}

		cmd.Printf("%s (id=%s)\n", ack.Status, ack.TransactionID)
		return nil
	},
}

func init() {
	submitCmd.Flags().StringVar(&submitID, "id", "", "transaction id (generated if empty)")
	submitCmd.Flags().Float64Var(&submitAmount, "amount", 0, "transaction amount")
	submitCmd.Flags().StringVar(&submitTimestamp, "timestamp", "", "transaction timestamp (RFC3339, defaults to now)")
	submitCmd.Flags().StringArrayVar(&submitExtras, "extra", nil, "additional key=value field (repeatable)")
	rootCmd.AddCommand(submitCmd)
}
