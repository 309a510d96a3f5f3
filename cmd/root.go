// Package cmd implements the command-line interface for cfmt.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/cfmt-cli/cfmt/clangformat"
	"github.com/cfmt-cli/cfmt/constant"
	"github.com/cfmt-cli/cfmt/icon"
	"github.com/cfmt-cli/cfmt/key"
	"github.com/cfmt-cli/cfmt/log"
	"github.com/cfmt-cli/cfmt/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().BoolP("dry-run", "n", false, "Report style violations without rewriting files")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))
}

// rootCmd defines the entry point for the cfmt application.
var rootCmd = &cobra.Command{
	Use:   constant.Cfmt + " [path]...",
	Short: "A thin clang-format wrapper for build pipelines",
	Long: `Format C sources and headers in place through an external clang-format binary.
Directories are expanded recursively; the binary's version is validated before any file is touched.
` + style.Italic("    - a thin clang-format wrapper for build pipelines"),
	Args:    cobra.ArbitraryArgs,
	Example: "  cfmt src include lib/util.c",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if len(args) == 0 {
			handleErr(fmt.Errorf("at least one directory or file path is required"))
		}

		CheckDependencies()

		options := clangformat.Options{
			Paths:  args,
			DryRun: lo.Must(cmd.Flags().GetBool("dry-run")),
		}
		handleErr(clangformat.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s\n", style.Error(icon.Get(icon.Fail)+" "+strings.Trim(err.Error(), " \n")))
		os.Exit(1)
	}
}
