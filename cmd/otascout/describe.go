package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muurk/otascout/internal/version"
)

var (
	describeDir string
	describeEnv bool
)

// describeCmd prints the git version tag used to stamp firmware builds
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the git version tag for a firmware checkout",
	Long: `Print 'git describe --tags --dirty --always' for a repository, or
"unknown" when no version can be derived (git missing, not a repository).

With --env the value is printed as PIOENV_GIT_VERSION=<version>, ready to be
injected into a build environment.`,
	Example: `  # Version of the current directory
  otascout describe

  # Export into the environment of a build
  export $(otascout describe --dir ../firmware --env)`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfigAnnotation: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		v := version.Describe(cmd.Context(), describeDir)
		if describeEnv {
			fmt.Fprintln(cmd.OutOrStdout(), version.EnvLine(v))
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
	},
}

func init() {
	describeCmd.Flags().StringVar(&describeDir, "dir", ".", "Repository directory")
	describeCmd.Flags().BoolVar(&describeEnv, "env", false, "Print as "+version.EnvVar+"=<version>")
	rootCmd.AddCommand(describeCmd)
}
