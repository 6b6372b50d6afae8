//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified
var Default = Build

// Build builds the hadithtrans binary
func Build() error {
	mg.Deps(Vet)
	fmt.Println("Building...")
	return sh.RunV("go", "build", "-o", "hadithtrans", "./cmd/hadithtrans")
}

// Test runs all tests
func Test() error {
	fmt.Println("Testing...")
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet on all packages
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs the binary to GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/hadithtrans")
}

// Clean removes the built binary
func Clean() error {
	fmt.Println("Cleaning...")
	return sh.Rm("hadithtrans")
}
