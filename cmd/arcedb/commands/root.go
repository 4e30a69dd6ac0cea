// Package commands implements arcedb's CLI commands.
package commands

import "github.com/spf13/cobra"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "arcedb",
	Short: "arcedb - a minimal RESP key-value server",
	Long: `arcedb is a minimal in-memory key-value server speaking a
subset of the RESP (REdis Serialization Protocol) wire format over TCP:
PING, ECHO, GET, SET (with NX/XX/EX/PX/EXAT/PXAT), and DEL.

Use "arcedb [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called once from main.main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file")
	rootCmd.AddCommand(serveCmd)
}
