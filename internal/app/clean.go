package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lexpath/lexpath/internal/pathclean"
)

var cleanCmd = &cobra.Command{
	Use:   "clean <path>...",
	Short: "Clean one or more paths",
	Long: `Clean prints the canonical form of each argument: no "." segments, no
redundant separators, ".." resolved against preceding segments wherever
possible. The result is never empty; a fully-cancelled path prints ".".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

// cleanOutput is the JSON-serializable output for one cleaned path.
type cleanOutput struct {
	Path   string `json:"path"`
	Result string `json:"result"`
}

func runClean(cmd *cobra.Command, args []string) error {
	if flagJSON {
		results := make([]cleanOutput, 0, len(args))
		for _, p := range args {
			results = append(results, cleanOutput{Path: p, Result: pathclean.Clean(p)})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, p := range args {
		fmt.Println(pathclean.Clean(p))
	}
	return nil
}
