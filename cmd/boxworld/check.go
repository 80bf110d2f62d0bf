package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/boxworld/internal/levels"
	"github.com/vovakirdan/boxworld/internal/script"
)

var checkCmd = &cobra.Command{
	Use:   "check <dir>",
	Short: "Validate a content directory",
	Long: `Load a content directory the same way 'play --dir' does and report
problems: unreadable files, YAML or TMX errors, Lua compile errors and
structural issues (map sizes, unknown neighbors, overlapping entities).

Examples:
  boxworld check ./my-world`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := args[0]

	logger, closeLog, err := newLogger("boxworld-check", nil)
	if err != nil {
		return err
	}
	defer closeLog()

	vm, err := script.New(logger)
	if err != nil {
		return err
	}
	defer vm.Close()

	loader := levels.NewLoader(dir, vm)
	files, err := loader.ListLevels()
	if err != nil {
		return err
	}

	pack, err := loader.LoadPack()
	if err != nil {
		var ve levels.ValidationError
		if errors.As(err, &ve) {
			return fmt.Errorf("%s: invalid content %s", dir, ve)
		}
		return err
	}

	fmt.Printf("%s (%s): OK\n", pack.Title, pack.ID)
	fmt.Printf("  start: %s\n", pack.StartLevel)
	for i, lvl := range pack.Levels {
		fmt.Printf("  %-16s %-12s %3dx%-3d  %d entities\n",
			files[i], lvl.ID, lvl.Size(), lvl.Size(), len(lvl.Entities))
	}
	return nil
}
