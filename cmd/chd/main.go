package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"chd/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "chd [flags] [file ...]",
	Short: "Unicode-aware character hexdump",
	Long: `Output a representation of the contents of each file as character
codepoints, similar to xxd but Unicode-aware. With multiple arguments,
the files' contents are concatenated together. With no arguments, or
when a file is -, read from standard input.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// exitCode distinguishes "run finished but a source failed" from a clean
// run; configuration errors exit through Execute instead.
var exitCode = 0

func init() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(versionCmd)

	rootCmd.Flags().IntP("count", "c", 8, "characters to display per line (1-255)")
	rootCmd.Flags().BoolP("ignore", "i", false, "treat invalid sequences as individual bytes")
	rootCmd.Flags().Int64P("start", "s", 0, "skip N characters of input before dumping")
	// Нулевое значение по умолчанию cobra в help не печатает; сам
	// дефолт берётся из config.Default, флаг применяется только если
	// задан явно.
	rootCmd.Flags().Int64P("limit", "l", 0, "stop after N characters of input (default: no limit)")
	rootCmd.Flags().BoolP("reverse", "r", false, "reverse operation: convert dump output back to characters")
	rootCmd.Flags().String("encoding", "", "input/output encoding (default: from the locale)")
	rootCmd.Flags().String("config", "", "defaults file (default: $XDG_CONFIG_HOME/chd/chd.toml)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostics (auto|on|off)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
