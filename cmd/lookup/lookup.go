// Package lookup implements the lookup command: re-serve a previously
// produced RAW artifact from the store.
package lookup

import (
	"fmt"

	"github.com/spf13/cobra"

	"csvraw/cmd/root"
	"csvraw/internal/rawquery"
	"csvraw/internal/store"
)

var (
	filename string
	list     bool
	tag      string
)

// Cmd is the lookup command.
var Cmd = &cobra.Command{
	Use:   "lookup",
	Short: "Print a previously produced RAW file, or list all batches",
	RunE:  runLookup,
}

func init() {
	Cmd.Flags().StringVarP(&filename, "file", "f", "", "RAW filename to print")
	Cmd.Flags().BoolVarP(&list, "list", "l", false, "List all produced batches from the manifest")
	Cmd.Flags().StringVarP(&tag, "tag", "t", "", "Print only this tag's value from each instruction line")
}

func runLookup(cmd *cobra.Command, args []string) error {
	fileStore := store.NewFileStore(root.Cfg.Data.Directory, root.Log)

	if list {
		entries, err := fileStore.Manifest()
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s  seq=%s  issue=%s  created=%s\n",
				e.Filename, e.SequenceID, e.IssueDate, e.CreatedAt)
		}
		return nil
	}

	if filename == "" {
		return fmt.Errorf("either --file or --list is required")
	}
	artifact, err := fileStore.LoadArtifact(filename)
	if err != nil {
		return err
	}

	if tag != "" {
		values, err := rawquery.Extract(artifact.Lines, tag)
		if err != nil {
			return err
		}
		for _, v := range values {
			fmt.Println(v)
		}
		return nil
	}

	fmt.Print(artifact.Content())
	return nil
}
