package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muurk/otascout/internal/firmware"
	"github.com/muurk/otascout/internal/ui"
)

var fwsizeLimit string

// fwsizeCmd checks a firmware image against the OTA partition
var fwsizeCmd = &cobra.Command{
	Use:   "fwsize <firmware.bin>",
	Short: "Check a firmware image fits the OTA partition",
	Long: `Compare the size of a firmware image with the OTA application partition.

An image larger than the partition can never be applied over the air.
Exits with a non-zero status when the image is too large or cannot be read,
so the check can gate a build.`,
	Example: `  # Check against the default 0x0A0000 byte partition
  otascout fwsize .pio/build/tbeam/firmware.bin

  # Custom partition size
  otascout fwsize firmware.bin --limit 0x1E0000`,
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{skipConfigAnnotation: "true"},
	RunE:        runFwsize,
}

func init() {
	fwsizeCmd.Flags().StringVar(&fwsizeLimit, "limit", fmt.Sprintf("0x%06X", firmware.DefaultPartitionLimit), "Partition size in bytes (decimal or 0x hex)")
	rootCmd.AddCommand(fwsizeCmd)
}

func runFwsize(cmd *cobra.Command, args []string) error {
	limit, err := firmware.ParseLimit(fwsizeLimit)
	if err != nil {
		return err
	}

	cmd.SilenceUsage = true
	out := cmd.OutOrStdout()

	ui.NewHeader("Firmware Size Check", "otascout fwsize").
		AddParam("Image", args[0]).
		AddParam("Limit", firmware.FormatSize(limit)).
		Print(out)

	res, err := firmware.Check(args[0], limit)

	var sizeErr *firmware.SizeError
	switch {
	case errors.As(err, &sizeErr):
		ui.NewFailureResult("Firmware exceeds partition", err, []string{
			"Disable unused modules to shrink the image",
			"Use a partition table with a larger app partition and pass --limit",
		}).
			AddDetail("Size", firmware.FormatSize(res.Size)).
			AddDetail("Limit", firmware.FormatSize(res.Limit)).
			AddDetail("Over by", fmt.Sprintf("%d bytes", -res.Remaining)).
			Print(out)
		return err
	case err != nil:
		ui.PrintFailure(out, "Cannot check firmware", err, []string{
			"Check the image path, e.g. .pio/build/<env>/firmware.bin",
		})
		return err
	}

	ui.NewSuccessResult("Firmware fits partition").
		AddDetail("Size", firmware.FormatSize(res.Size)).
		AddDetail("Limit", firmware.FormatSize(res.Limit)).
		AddDetail("Free", fmt.Sprintf("%d bytes", res.Remaining)).
		Print(out)
	return nil
}
