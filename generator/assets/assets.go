// Package assets holds the fixed boilerplate tree embedded into the binary
// and copies its subtrees into a target project unmodified.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/sproutcli/sprout/utils"
)

//go:embed all:base all:auth all:docker all:tests
var content embed.FS

// Verify checks that the embedded template trees are present. Failure means
// a corrupted build of the generator itself.
func Verify() error {
	for _, root := range []string{"base", "auth", "docker", "tests"} {
		if _, err := fs.Stat(content, root); err != nil {
			return fmt.Errorf("missing embedded template assets %q: %w", root, err)
		}
	}
	return nil
}

// CopyBase copies the always-present boilerplate into target
func CopyBase(target string) error {
	return copyTree("base", target, nil)
}

// CopyAuth copies the authentication boilerplate into target
func CopyAuth(target string) error {
	return copyTree("auth", target, nil)
}

// CopyTests copies the smoke-test boilerplate into target
func CopyTests(target string) error {
	return copyTree("tests", target, nil)
}

// CopyDocker copies the containerization assets into target. The compose
// file only ships alongside a database: it exists to run the datastore.
func CopyDocker(target string, withCompose bool) error {
	var skip map[string]bool
	if !withCompose {
		skip = map[string]bool{"docker-compose.yml": true}
	}
	return copyTree("docker", target, skip)
}

func copyTree(root, target string, skip map[string]bool) error {
	sub, err := fs.Sub(content, root)
	if err != nil {
		return fmt.Errorf("missing embedded template assets %q: %w", root, err)
	}

	return fs.WalkDir(sub, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || skip[path] {
			return nil
		}

		data, err := fs.ReadFile(sub, path)
		if err != nil {
			return fmt.Errorf("reading embedded asset %s: %w", path, err)
		}
		dest := filepath.Join(target, filepath.FromSlash(path))
		if err := utils.WriteFile(dest, string(data)); err != nil {
			return fmt.Errorf("writing asset %s: %w", dest, err)
		}
		return nil
	})
}
