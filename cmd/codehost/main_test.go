package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd().Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate", "seed", "version"}, names)
}
