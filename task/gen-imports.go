// +build task

// Generate side effect only import statements, used for registering
// the built-in plugins.
//
// Package patterns are relative to the module root, for example
// ./plugins/... ; they are turned into import paths under the module
// path found in go.mod.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"go/build"
	"io/ioutil"
	"log"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/kisielk/gotool"
)

var (
	genOutput  = flag.String("o", "", "output path")
	genPackage = flag.String("package", os.Getenv("GOPACKAGE"), "Go package name")
	genModule  = flag.String("module", "", "module path (default from go.mod)")
)

var gen = template.Must(template.New("gen").Parse(`// Code generated by task/gen-imports.go; DO NOT EDIT.

package {{.Package}}

import (
{{range .Imports}}{{"\t"}}_ "{{.}}"
{{end}})
`))

var prog = filepath.Base(os.Args[0])

func usage() {
	fmt.Fprintf(os.Stderr, "Usage of %s:\n", prog)
	fmt.Fprintf(os.Stderr, "  %s -o PATH ./PACKAGE..\n", prog)
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

// modulePath reads the module path from the go.mod in the working
// directory.
func modulePath() (string, error) {
	f, err := os.Open("go.mod")
	if err != nil {
		return "", err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 2 && fields[0] == "module" {
			return strings.Trim(fields[1], `"`), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", errors.New("go.mod has no module line")
}

func expandPackages(module string, patterns []string) ([]string, error) {
	// expand "..."
	paths := gotool.ImportPaths(patterns)

	var r []string
	for _, p := range paths {
		if !build.IsLocalImport(p) {
			return nil, fmt.Errorf("not relative to the module root: %v", p)
		}
		pkg, err := build.ImportDir(p, 0)
		if _, ok := err.(*build.NoGoError); ok {
			// directory with no Go source files in it
			continue
		}
		if err != nil {
			return nil, err
		}
		if pkg.Name == "main" {
			continue
		}
		r = append(r, path.Join(module, filepath.ToSlash(filepath.Clean(p))))
	}
	sort.Strings(r)
	return r, nil
}

func process(dst string, imports []string) error {
	dir := filepath.Dir(dst)
	tmp, err := ioutil.TempFile(dir, "temp-gen-import-all-")
	if err != nil {
		return err
	}
	closed := false
	removed := false
	defer func() {
		if !closed {
			// silence errcheck
			_ = tmp.Close()
		}
		if !removed {
			// silence errcheck
			_ = os.Remove(tmp.Name())
		}
	}()

	module := *genModule
	if module == "" {
		module, err = modulePath()
		if err != nil {
			return fmt.Errorf("finding module path: %v", err)
		}
	}
	imports, err = expandPackages(module, imports)
	if err != nil {
		return fmt.Errorf("listing packages: %v", err)
	}

	type state struct {
		Package string
		Imports []string
	}
	s := state{
		Package: *genPackage,
		Imports: imports,
	}
	if err := gen.Execute(tmp, s); err != nil {
		return fmt.Errorf("template error: %v", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write temp file: %v", err)
	}
	closed = true

	if err := os.Rename(tmp.Name(), *genOutput); err != nil {
		return fmt.Errorf("cannot finalize file: %v", err)
	}
	removed = true

	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix(prog + ": ")

	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if *genOutput == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *genPackage == "" {
		log.Fatal("$GOPACKAGE must be set or -package= passed")
	}

	if err := process(*genOutput, flag.Args()); err != nil {
		log.Fatal(err)
	}
}
