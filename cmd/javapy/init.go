package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"javapy/internal/config"
)

func newInitCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "init [path]",
		Short: "Create javapy.toml and an example source",
		Long: `Initialize a project by writing javapy.toml with default settings and an
example main.java. If [path] is omitted, initializes the current directory;
a missing directory is created.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd, args)
		},
	}
	c.Flags().Bool("force", false, "overwrite an existing javapy.toml")
	return c
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("failed to get force flag: %w", err)
	}
	target := "."
	if len(args) == 1 {
		target = args[0]
	}

	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	manifestPath, err := config.WriteDefault(target, force)
	if err != nil {
		return err
	}

	mainPath := filepath.Join(target, "main.java")
	createdMain := false
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(exampleSource), 0o644); err != nil {
			return fmt.Errorf("failed to write main.java: %w", err)
		}
		createdMain = true
	}

	if a.quiet {
		return nil
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized javapy project in %s\n", target)
	fmt.Fprintf(out, "  - %s\n", filepath.Base(manifestPath))
	if createdMain {
		fmt.Fprintln(out, "  - main.java")
	} else {
		fmt.Fprintln(out, "  - main.java (existing)")
	}
	return nil
}

const exampleSource = `// javapy example: translate with "javapy translate main.java"
String nombre = "Mundo";
int contador = 3;

System.out.println("Hola " + nombre);

while (contador > 0) {
    System.out.println(contador);
    contador--;
}

for (int i = 0; i < 5; i++) {
    if (i == 2) {
        System.out.println("dos");
    } else {
        System.out.println(i);
    }
}
`
