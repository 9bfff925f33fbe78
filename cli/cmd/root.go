package cmd

import (
	"github.com/spf13/cobra"
)

var ingressURL string

var rootCmd = &cobra.Command{
	Use:   "riskstream",
	Short: "RiskStream Stack CLI",
	Long: `riskstream is the command-line interface for the RiskStream fraud
detection stack.

Submit individual transactions to the ingress service or seed the pipeline
with generated traffic for testing and development.`,
	Version: "0.1.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&ingressURL, "url", "http://localhost:3000", "transaction service base URL")
}
