package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHTML(t *testing.T) {
	html := renderHTML("first line\nsecond line\n\nnew paragraph")

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "first line<br>second line")
	assert.Contains(t, html, "</p><p>new paragraph")
	assert.Contains(t, html, `<div class="logo">`)
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, isAuthError(assertErr("535 5.7.8 Username and Password not accepted")))
	assert.True(t, isAuthError(assertErr("SMTP AUTH failed")))
	assert.False(t, isAuthError(assertErr("connection refused")))
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
