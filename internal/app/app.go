package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"shea/internal/config"
	"shea/internal/diskview"
	"shea/internal/services"
	"shea/internal/top"
)

// RunTop starts the interactive process monitor and blocks until quit.
func RunTop(cfg config.TopConfig) error {
	system := services.NewSystemCollector()
	processes := services.NewProcessCollector()

	model := top.NewModel(system, processes, cfg).Primed()
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run monitor: %w", err)
	}
	return nil
}

// RunDisk prints the partition table, or starts the interactive size
// explorer when a path is given.
func RunDisk(cfg config.DiskConfig) error {
	disk := services.NewDiskCollector()
	if cfg.Path == "" {
		parts, err := disk.Partitions(context.Background())
		if err != nil {
			return err
		}
		if len(parts) == 0 {
			return fmt.Errorf("no disk partitions found")
		}
		fmt.Println(diskview.RenderPartitions(parts))
		return nil
	}

	model := diskview.NewModel(disk, diskview.NewSizer(), cfg.Path)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run explorer: %w", err)
	}
	return nil
}
