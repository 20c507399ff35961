// Copyright 2021 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

var (
	testFlag     bool
	lintFlag     bool
	packagesFlag bool
)

// packages are tested and linted separately so that a failure is
// attributed to a single package.
var packages = []string{".", "./epochs", "./cmd/gnsstime"}

func done(msg string, err error) {
	fmt.Printf("Failed: %s: %s\n", msg, err)
	os.Exit(1)
}

func main() {
	ctx := context.Background()
	flag.BoolVar(&packagesFlag, "packages", false, "print the packages in this repo")
	flag.BoolVar(&testFlag, "test", false, "run tests")
	flag.BoolVar(&lintFlag, "lint", false, "run go vet")

	flag.Parse()

	if !(packagesFlag || testFlag || lintFlag) {
		fmt.Fprintf(os.Stderr, "at least one flag is required\n")
		flag.Usage()
		os.Exit(1)
	}

	if packagesFlag {
		fmt.Println(strings.Join(packages, " "))
		return
	}

	pkgs := flag.Args()
	if len(pkgs) == 0 {
		pkgs = packages
	}

	if testFlag {
		if err := runAll(ctx, pkgs, "go", "test", "-failfast", "--covermode=atomic", "--vet=off", "-race"); err != nil {
			done("tests", err)
		}
	}

	if lintFlag {
		if err := runAll(ctx, pkgs, "go", "vet"); err != nil {
			done("lint", err)
		}
	}
}

func runAll(ctx context.Context, pkgs []string, name string, args ...string) error {
	failed := false
	for _, pkg := range pkgs {
		if err := run(ctx, pkg, name, args...); err != nil {
			fmt.Fprintf(os.Stderr, "%v: failed: %v\n", pkg, err)
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("%v %v failed", name, args[0])
	}
	return nil
}

func run(ctx context.Context, pkg, name string, args ...string) error {
	fmt.Printf("%v...\n", pkg)
	cmd := exec.CommandContext(ctx, name, append(args, pkg)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		fmt.Printf("%v... ok\n", pkg)
	} else {
		fmt.Printf("%v... failed\n", pkg)
	}
	return err
}
