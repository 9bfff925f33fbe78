package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/riskstream-systems/riskstream-stack/cli/internal/client"
	"github.com/riskstream-systems/riskstream-stack/cli/internal/seeder"
)

var (
	seedCount    int
	seedInterval time.Duration
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate and submit synthetic transactions",
	Long: `seed generates realistic synthetic transactions and submits them to the
ingress service, useful for exercising the pipeline end to end.`,
	Example: `  riskstream seed --count 100
  riskstream seed --count 1000 --interval 10ms --url http://ingress:3000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gen := seeder.New()
		c := client.NewTransactionClient(ingressURL)

		submitted := 0
		for i := 0; i < seedCount; i++ {
			ack, err := c.Submit(gen.Transaction())
			if err != nil {
				cmd.PrintErrf("submit failed: %v\n", err)
				continue
			}
			submitted++
			cmd.Printf("submitted %s\n", ack.TransactionID)

			if seedInterval > 0 && i < seedCount-1 {
				time.Sleep(seedInterval)
			}
		}

		cmd.Printf("done: %d/%d transactions submitted\n", submitted, seedCount)
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", 10, "number of transactions to generate")
	seedCmd.Flags().DurationVar(&seedInterval, "interval", 0, "delay between submissions")
	rootCmd.AddCommand(seedCmd)
}
