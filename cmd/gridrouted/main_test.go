package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListenAddr(t *testing.T) {
	assert.Equal(t, "127.0.0.1:9000", listenAddr("127.0.0.1:9000"))

	t.Setenv("PORT", "7070")
	assert.Equal(t, ":7070", listenAddr(""))

	t.Setenv("PORT", "")
	assert.Equal(t, ":8080", listenAddr(""))
}
