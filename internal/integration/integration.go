// Package integration renders the embedded shell helper for diskscope.
package integration

import (
	_ "embed"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed zsh-fzf.sh
var zshFzf string

// Render resolves the local zsh binary and substitutes its path into the
// helper script's shebang.
func Render() (string, error) {
	zsh, err := exec.LookPath("zsh")
	if err != nil {
		return "", fmt.Errorf("locating zsh: %w", err)
	}

	tmpl, err := template.New("zsh-fzf").Parse(zshFzf)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, map[string]string{"ZSH": filepath.ToSlash(zsh)}); err != nil {
		return "", err
	}

	return out.String(), nil
}
