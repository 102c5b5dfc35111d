package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lexpath/lexpath/internal/config"
	"github.com/lexpath/lexpath/internal/pathclean"
)

var joinCmd = &cobra.Command{
	Use:   "join [dir] [file]",
	Short: "Join two paths and print the cleaned result",
	Long: `Join concatenates dir and file and prints the cleaned result: "." and
".." segments resolved, redundant separators collapsed. The result is
absolute exactly when dir is absolute, and keeps a trailing separator when
file ends with one. Missing arguments default to ".".`,
	Args: cobra.MaximumNArgs(2),
	RunE: runJoin,
}

func init() {
	rootCmd.AddCommand(joinCmd)
}

// joinOutput is the JSON-serializable output for the join command.
type joinOutput struct {
	Dir    string `json:"dir"`
	File   string `json:"file"`
	Result string `json:"result"`
}

func runJoin(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	dir := cfg.Join.Dir
	file := cfg.Join.File
	if len(args) > 0 {
		dir = args[0]
	}
	if len(args) > 1 {
		file = args[1]
	}

	result := pathclean.Join(dir, file)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(joinOutput{Dir: dir, File: file, Result: result})
	}

	fmt.Println(result)
	return nil
}
