/*
File    : mini-script/eval/module.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// resolveModulePath implements spec §4.6's lookup order for
// `import "path";`:
//
//  1. the literal path, relative to the directory of the file doing the
//     importing (so a script can import a sibling module regardless of the
//     interpreter's own working directory);
//  2. the same path with a ".ms" extension appended, if it didn't already
//     have one;
//  3. the bare and ".ms"-suffixed path again, this time relative to the
//     interpreter's current working directory;
//  4. each directory named in the MODULESPATH environment variable, split
//     on the OS path-list separator (':' on Unix, ';' on Windows), tried in
//     order with both the bare and ".ms"-suffixed name.
//
// The first candidate that exists on disk wins.
func resolveModulePath(rawPath string, currentFilename string) (string, error) {
	withExt := rawPath
	if filepath.Ext(withExt) == "" {
		withExt = rawPath + ".ms"
	}

	baseDir := filepath.Dir(currentFilename)
	candidates := []string{
		filepath.Join(baseDir, rawPath),
		filepath.Join(baseDir, withExt),
		rawPath,
		withExt,
	}

	if modulesPath := os.Getenv("MODULESPATH"); modulesPath != "" {
		for _, dir := range strings.Split(modulesPath, string(os.PathListSeparator)) {
			if dir == "" {
				continue
			}
			candidates = append(candidates, filepath.Join(dir, rawPath), filepath.Join(dir, withExt))
		}
	}

	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, nil
		}
	}

	return "", fmt.Errorf("module '%s' not found (searched next to '%s' and MODULESPATH)", rawPath, currentFilename)
}
