package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/manaforge/scry/internal/config"
	"github.com/manaforge/scry/internal/download"
	"github.com/manaforge/scry/internal/input"
	"github.com/manaforge/scry/internal/listing"
	"github.com/manaforge/scry/internal/logging"
	"github.com/manaforge/scry/internal/resolver"
	"github.com/manaforge/scry/internal/scryfall"
)

var (
	verbosity    string
	serverURL    string
	dryRun       bool
	inputPath    string
	outputPath   string
	listMode     bool
	downloadMode bool
	asJSON       bool
	withBlock    bool
	withCN       bool
	withSet      bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "scry [flags] [cards...]",
	Short: "List and download Magic: the Gathering cards from Scryfall",
	Long: `Scry is a command-line client for the Scryfall card database.
It lists cards matching a search query, or downloads card artwork by exact
name, including both faces of double-faced cards.

Card names are taken from the positional arguments, from a file given with
--input, or from stdin (one name per line), in that priority order.

Examples:
  scry -l --with-block "lightning bolt"
  scry -d -o art "Delver of Secrets"
  scry -d -i decklist.txt --dryrun`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Setup(verbosity); err != nil {
			return err
		}
		applyConfig(cmd)
		log.Debugf("command-line args: %v", os.Args[1:])

		if downloadMode {
			return runDownload(args)
		}
		return runList(args)
	},
}

func init() {
	RootCmd.Flags().StringVarP(&verbosity, "verbosity", "v", "info", "Set the logging verbosity level (critical, error, warning, info, debug).")
	RootCmd.Flags().StringVar(&serverURL, "server", scryfall.DefaultServerURL, "The Scryfall server URL.")
	RootCmd.Flags().BoolVar(&dryRun, "dryrun", false, "Dry run network and filesystem operations.")
	RootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "A file of card names. Alternatively, a newline-separated list of card names can be provided via stdin.")
	RootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "The output directory (or file, when listing).")
	RootCmd.Flags().BoolVarP(&listMode, "list", "l", false, "Searches for cards based on query. Does not download them.")
	RootCmd.Flags().BoolVarP(&downloadMode, "download", "d", false, "Downloads card images based on query.")
	RootCmd.MarkFlagsMutuallyExclusive("list", "download")
	RootCmd.Flags().BoolVar(&asJSON, "json", false, "Output results in JSON format.")
	RootCmd.Flags().BoolVar(&withBlock, "with-block", false, "Include 3-letter block code when listing cards. e.g. ZNR for Zendikar Rising.")
	RootCmd.Flags().BoolVar(&withCN, "with-cn", false, "Include collector number when listing cards. e.g. 1/280.")
	RootCmd.Flags().BoolVar(&withSet, "with-set", false, "Include set name when listing cards. e.g. Zendikar Rising.")
}

// applyConfig fills in flags the user did not set from the config file,
// falling back to the working directory for the output path.
func applyConfig(cmd *cobra.Command) {
	cfg, err := config.Load()
	if err != nil {
		log.Debugf("config not loaded: %v", err)
		cfg = &config.Config{}
	}
	if !cmd.Flags().Changed("server") && cfg.Server != "" {
		serverURL = cfg.Server
	}
	if outputPath == "" {
		outputPath = cfg.Output
	}
	if outputPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		outputPath = wd
	}
}

func runDownload(args []string) error {
	client := scryfall.New(serverURL)
	names, err := input.CardNames(args, inputPath)
	if err != nil {
		return err
	}
	cards := resolver.ResolveCards(client, names)

	d := &download.Downloader{
		Client:    client,
		OutputDir: outputPath,
		DryRun:    dryRun,
	}
	return d.Run(cards)
}

func runList(args []string) error {
	client := scryfall.New(serverURL)
	return listing.List(client, args, listing.Options{
		JSON:      asJSON,
		WithBlock: withBlock,
		WithCN:    withCN,
		WithSet:   withSet,
		Output:    outputPath,
	})
}
