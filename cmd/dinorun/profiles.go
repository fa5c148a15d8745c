package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/dinorun/internal/config"
)

var flagDefaults bool

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List characters and difficulties",
	Long: `List the character and difficulty profiles of the loaded configuration.
Names and ids are accepted by --character and --difficulty.`,
	Args: cobra.NoArgs,
	Run:  runProfiles,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration in use as YAML. The output is a valid
configuration file and can be edited and passed back with --config.

Examples:
  dinorun config > ~/.dinorun/dinorun.yaml
  dinorun config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

var headerStyle = lipgloss.NewStyle().Bold(true)

func runProfiles(_ *cobra.Command, _ []string) {
	fmt.Println(headerStyle.Render("Characters"))
	fmt.Printf("  %-3s  %-10s  %-6s  %-5s  %-7s  %s\n", "ID", "Name", "Speed", "Jump", "Gravity", "Lives")
	for _, ch := range cat.Characters() {
		name := lipgloss.NewStyle().Foreground(lipgloss.Color(ch.Color)).Render(fmt.Sprintf("%-10s", ch.Name))
		fmt.Printf("  %-3d  %s  %-6.1f  %-5.1f  %-7.1f  %d\n",
			ch.ID, name, ch.SpeedMultiplier, ch.JumpMultiplier, ch.GravityMultiplier, ch.StartingLives)
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("Difficulties"))
	fmt.Printf("  %-3s  %-10s  %-6s  %-7s  %-8s  %s\n", "ID", "Name", "Speed", "Gravity", "Density", "Theme")
	for _, d := range cat.Difficulties() {
		fmt.Printf("  %-3d  %-10s  %-6d  %-7d  %-8s  %s\n",
			d.ID, d.Name, d.BaseGameSpeed, d.GravityLevel, fmt.Sprintf("%d%%", d.ObstacleDensity), d.Theme)
	}
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return nil
	}
	out, err := yaml.Marshal(engineCfg)
	if err != nil {
		return fmt.Errorf("cannot encode configuration: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
