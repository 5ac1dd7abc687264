package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"javapy/internal/driver"
)

func newCacheCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the result cache",
	}
	c.PersistentFlags().String("cache-dir", "", "cache location (default: user cache dir)")

	c.AddCommand(&cobra.Command{
		Use:   "dir",
		Short: "Print the cache location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cache, err := openCacheAt(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cache.Dir())
			return nil
		},
	})
	c.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every cached result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cache, err := openCacheAt(cmd)
			if err != nil {
				return err
			}
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
			if !a.quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", cache.Dir())
			}
			return nil
		},
	})
	return c
}

func openCacheAt(cmd *cobra.Command) (*driver.DiskCache, error) {
	dir, err := cmd.Flags().GetString("cache-dir")
	if err != nil {
		return nil, fmt.Errorf("failed to get cache-dir flag: %w", err)
	}
	if dir != "" {
		return driver.OpenDiskCacheAt(dir)
	}
	return driver.OpenDiskCache("javapy")
}
