package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/packlink/internal/app"
	"go.trai.ch/packlink/internal/core/domain"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install [targets...]",
		Short: "Pack local sources and install them into targets",
		Long: "Pack every source project and install the archive into each target project without\n" +
			"recording it as a dependency. With no targets, the link file is read instead.",
		Example: "  packlink install ./app --from ../lib-x\n" +
			"  packlink install -C ~/work app-a app-b --from lib-x --from lib-y\n" +
			"  packlink install --config links.yaml --cleanup always",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, _ := cmd.Flags().GetStringArray("from")
			configPath, _ := cmd.Flags().GetString("config")
			dir, _ := cmd.Flags().GetString("dir")
			cleanup, _ := cmd.Flags().GetString("cleanup")
			bin, _ := cmd.Flags().GetString("npm")

			_, err := c.app.Run(cmd.Context(), app.RunOptions{
				ConfigPath:     configPath,
				BaseDir:        dir,
				Targets:        args,
				Sources:        sources,
				Cleanup:        cleanup,
				PackageManager: bin,
			})
			return err
		},
	}
	cmd.Flags().StringArrayP("from", "f", nil, "Source project to link (repeatable)")
	cmd.Flags().StringP("config", "c", domain.ConfigFileName, "Link file used when no targets are given")
	cmd.Flags().StringP("dir", "C", "", "Base directory for relative paths (default: working directory)")
	cmd.Flags().String("cleanup", "", "Archive cleanup policy: on-success or always")
	cmd.Flags().String("npm", "", "Package manager binary used for pack and install")
	return cmd
}
