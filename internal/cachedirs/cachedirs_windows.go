//go:build windows

package cachedirs

import (
	"os"
	"path/filepath"
)

func platformCandidates() []string {
	var candidates []string

	if localApp := os.Getenv("LOCALAPPDATA"); localApp != "" {
		candidates = append(candidates,
			filepath.Join(localApp, "Temp"),
			filepath.Join(localApp, "Temp", "node-compile-cache"),
			filepath.Join(localApp, "npm-cache"),
			filepath.Join(localApp, "Microsoft", "Edge", "User Data", "Default", "Cache"),
			filepath.Join(localApp, "Google", "Chrome", "User Data", "Default", "Cache"),
		)
	}

	if userProfile := os.Getenv("USERPROFILE"); userProfile != "" {
		candidates = append(candidates,
			filepath.Join(userProfile, "AppData", "Local", "Temp"),
		)
	}

	if winDir := os.Getenv("WINDIR"); winDir != "" {
		candidates = append(candidates, filepath.Join(winDir, "Temp"))
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		candidates = append(candidates, filepath.Join(appData, "Code", "Cache"))
	}

	return candidates
}
