package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Inspect and manage levels",
	Long: `Work with the built-in layouts and the levels saved in the database (--db).

Examples:
  platformer levels list
  platformer levels show stairs
  platformer levels import ./castle.yaml castle
  platformer levels delete castle
  platformer levels browse`,
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in and saved levels",
	Args:  cobra.NoArgs,
	Run:   runLevelsList,
}

var levelsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a level as YAML",
	Long: `Print a saved level as a YAML document. Names not found in the database
are looked up among the built-in layouts.`,
	Args: cobra.ExactArgs(1),
	Run:  runLevelsShow,
}

var levelsImportCmd = &cobra.Command{
	Use:   "import <file> [name]",
	Short: "Save a YAML level file into the database",
	Long: `Read a YAML level document and store it in the database under name.
Without a name, the document's own name is used, then the file name.`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runLevelsImport,
}

var levelsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved level",
	Args:  cobra.ExactArgs(1),
	Run:   runLevelsDelete,
}

var levelsBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Pick a level interactively and play it",
	Args:  cobra.NoArgs,
	Run:   runLevelsBrowse,
}

func init() {
	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsShowCmd)
	levelsCmd.AddCommand(levelsImportCmd)
	levelsCmd.AddCommand(levelsDeleteCmd)
	levelsCmd.AddCommand(levelsBrowseCmd)
}

// openDB opens the levels database or exits.
func openDB() *storage.Store {
	cfg := loadConfig()
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening levels database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runLevelsList(_ *cobra.Command, _ []string) {
	layouts := registry.List()

	fmt.Println("Built-in layouts:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range layouts {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, l := range layouts {
		fmt.Printf("  %-*s  %s\n", maxIDLen, l.ID, l.Title)
	}
	fmt.Println()

	store := openDB()
	defer store.Close()

	saved, err := store.ListLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing levels: %v\n", err)
		return
	}

	fmt.Println("Saved levels:")
	fmt.Println()
	if len(saved) == 0 {
		fmt.Println("  No levels saved yet.")
		fmt.Println()
		fmt.Println("Open the editor with 'platformer --store sqlite' to create one.")
		return
	}

	maxNameLen := 4 // "Name" header
	for _, s := range saved {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}
	fmt.Printf("  %-*s  %-6s  %-11s  %s\n", maxNameLen, "Name", "Blocks", "Spawn", "Updated")
	fmt.Printf("  %-*s  %-6s  %-11s  %s\n", maxNameLen, "----", "------", "-----", "-------")
	for _, s := range saved {
		spawn := fmt.Sprintf("%d,%d", s.Spawn.X, s.Spawn.Y)
		fmt.Printf("  %-*s  %-6d  %-11s  %s\n", maxNameLen, s.Name, s.Blocks, spawn, s.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

// findLevel looks a level up in the database, then among the built-in layouts.
func findLevel(store *storage.Store, name string) (level.Level, error) {
	l, err := store.LoadLevel(name)
	if errors.Is(err, storage.ErrLevelNotFound) && registry.Exists(name) {
		return registry.Create(name)
	}
	return l, err
}

func runLevelsShow(_ *cobra.Command, args []string) {
	name := args[0]

	store := openDB()
	defer store.Close()

	l, err := findLevel(store, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'platformer levels list' to see available levels.")
		return
	}

	data, err := level.MarshalYAML(l, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Print(string(data))
}

// importName picks the slot name for an imported file.
func importName(path, docName string, args []string) string {
	if len(args) > 1 && args[1] != "" {
		return args[1]
	}
	if docName != "" {
		return docName
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func runLevelsImport(_ *cobra.Command, args []string) {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		os.Exit(1)
	}
	l, docName, err := level.ParseNamedYAML(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openDB()
	defer store.Close()

	name := importName(path, docName, args)
	if err := store.SaveLevel(name, l); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving level: %v\n", err)
		return
	}
	fmt.Printf("Imported %d blocks as %q.\n", len(l.Blocks), name)
}

func runLevelsDelete(_ *cobra.Command, args []string) {
	name := args[0]

	store := openDB()
	defer store.Close()

	if err := store.DeleteLevel(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("Deleted %q.\n", name)
}

func runLevelsBrowse(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open levels database: %v\n", err)
		store = nil
	}

	width, height := terminalSize()
	chosen, name, err := tui.RunBrowser(store, width, height)
	if store != nil {
		store.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// User quit without picking
	if chosen == nil {
		return
	}

	if err := playTerminal(cfg, chosen); err != nil {
		fmt.Fprintf(os.Stderr, "Error running %s: %v\n", name, err)
		os.Exit(1)
	}
}
