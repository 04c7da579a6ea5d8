package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
)

var linksJSON bool

var linksCmd = &cobra.Command{
	Use:   "links [crop]",
	Short: "List crop reference links",
	Long: `Without arguments, lists the crops that have a reference page in the
link file. With a crop name, prints that crop's URL.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLinks,
}

var openCmd = &cobra.Command{
	Use:   "open <crop>",
	Short: "Open a crop's reference page in the browser",
	Args:  cobra.ExactArgs(1),
	RunE:  runOpen,
}

func init() {
	linksCmd.Flags().BoolVar(&linksJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(linksCmd)
	rootCmd.AddCommand(openCmd)
}

func runLinks(cmd *cobra.Command, args []string) error {
	if linkService == nil {
		return errors.New("link service not configured")
	}

	if len(args) == 1 {
		url, err := linkService.Resolve(args[0])
		if err != nil {
			return linkError(cmd, err)
		}
		if linksJSON {
			return writeJSON(cmd.OutOrStdout(), domain.LinkEntry{CropName: args[0], URL: url})
		}
		cmd.Println(url)
		return nil
	}

	entries := linkService.Table().Entries()
	if linksJSON {
		if entries == nil {
			entries = []domain.LinkEntry{}
		}
		return writeJSON(cmd.OutOrStdout(), entries)
	}
	if len(entries) == 0 {
		cmd.Println("No crop links loaded.")
		return nil
	}
	for _, e := range entries {
		cmd.Printf("%s\t%s\n", e.CropName, e.URL)
	}
	return nil
}

func runOpen(cmd *cobra.Command, args []string) error {
	if linkService == nil {
		return errors.New("link service not configured")
	}

	url, err := linkService.Open(commandContext(cmd), args[0])
	if err != nil {
		if url != "" {
			// Still useful when no browser is available.
			cmd.Println(url)
			return fmt.Errorf("failed to open browser: %w", err)
		}
		return linkError(cmd, err)
	}
	cmd.Printf("Opened %s\n", url)
	return nil
}

func linkError(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		cmd.PrintErrln(domain.MsgSelectCrop)
	case errors.Is(err, domain.ErrNotFound):
		cmd.PrintErrln(domain.MsgNoLink)
	}
	return err
}
