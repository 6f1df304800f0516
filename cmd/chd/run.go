package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chd/internal/charset"
	"chd/internal/config"
	"chd/internal/diag"
	"chd/internal/driver"
	"chd/internal/input"
)

func runRoot(cmd *cobra.Command, args []string) error {
	opts, err := collectOptions(cmd)
	if err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	cs, err := charset.Resolve(opts.Encoding)
	if err != nil {
		return err
	}

	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))

	// Сбои по источникам: печатаем сразу, копим для кода выхода.
	bag := diag.NewBag()
	reporter := diag.Multi{bag, diag.NewPrinter(os.Stderr, "chd", useColor)}

	set := input.NewSet(args, os.Stdin, reporter)

	out := bufio.NewWriter(os.Stdout)
	if opts.Reverse {
		err = driver.Undump(opts, set, cs, out)
	} else {
		err = driver.Dump(opts, set, cs, reporter, out)
	}
	if err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	if !bag.Empty() {
		exitCode = 1
	}
	return nil
}

// collectOptions layers option sources: built-in defaults, then the TOML
// defaults file, then explicitly set flags.
func collectOptions(cmd *cobra.Command) (config.Options, error) {
	opts := config.Default()

	path, _ := cmd.Flags().GetString("config")
	explicit := cmd.Flags().Changed("config")
	if path == "" {
		path = config.DefaultFilePath()
	}
	if err := config.ApplyFile(&opts, path, explicit); err != nil {
		return opts, err
	}

	if cmd.Flags().Changed("count") {
		opts.Count, _ = cmd.Flags().GetInt("count")
	}
	if cmd.Flags().Changed("ignore") {
		opts.Ignore, _ = cmd.Flags().GetBool("ignore")
	}
	if cmd.Flags().Changed("start") {
		opts.Start, _ = cmd.Flags().GetInt64("start")
	}
	if cmd.Flags().Changed("limit") {
		opts.Limit, _ = cmd.Flags().GetInt64("limit")
	}
	if cmd.Flags().Changed("reverse") {
		opts.Reverse, _ = cmd.Flags().GetBool("reverse")
	}
	if cmd.Flags().Changed("encoding") {
		opts.Encoding, _ = cmd.Flags().GetString("encoding")
	}
	return opts, nil
}
