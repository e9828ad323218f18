package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/metsgen/internal/files/filesystem"
	"github.com/vvka-141/metsgen/internal/logging"
	"github.com/vvka-141/metsgen/internal/pipeline"
	"github.com/vvka-141/metsgen/internal/repository"
	"github.com/vvka-141/metsgen/pkg/metsgen"
)

var localCmd = &cobra.Command{
	Use:   "local",
	Short: "Generate METS from exported node.json and members.json",
	Long: `Generate a METS document from metadata exported to a directory.

The directory must contain node.json (the object) and members.json (its
child members, a list or a single object; an empty file means none).
Parents and content models are still resolved against --repo_url, without
authentication.

The document is written to mets.xml in --outputdir, or the working
directory when --outputdir is unset or does not exist. Element IDs use the
"id-" prefix.

Examples:
  metsgen local --repo_url https://islandora.example.edu --md_dir ./export
  metsgen local --repo_url https://islandora.example.edu --md_dir ./export --outputdir ./mets --strict`,
	Args: cobra.NoArgs,
	RunE: runLocal,
}

type localFlagValues struct {
	common      commonFlagValues
	metadataDir string
}

var localFlags localFlagValues

func init() {
	rootCmd.AddCommand(localCmd)

	addCommonFlags(localCmd, &localFlags.common)
	localCmd.Flags().StringVar(&localFlags.metadataDir, "md_dir", "",
		"Directory containing node.json and members.json (required)")
	_ = localCmd.MarkFlagRequired("md_dir")
}

func runLocal(cmd *cobra.Command, _ []string) error {
	verbose := getVerboseFlag(cmd)

	projectCfg, err := loadProjectConfig(getConfigFlag(cmd))
	if err != nil {
		return err
	}

	cfg, err := buildRunConfig(cmd, metsgen.ModeLocal, localFlags.common, projectCfg, verbose)
	if err != nil {
		return err
	}
	cfg.MetadataDir = localFlags.metadataDir

	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := newRunContext()
	defer cancel()

	logger := logging.NewConsoleLogger(verbose)
	newSource := func(*repository.Client) metsgen.DocumentSource {
		return pipeline.NewLocalSource(filesystem.NewOSFileSystem(), cfg.MetadataDir)
	}
	return generate(ctx, cfg, metsgen.Credentials{}, logger, newSource)
}
