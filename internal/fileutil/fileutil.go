// Package fileutil holds the output-file rules shared by the CLI and the MCP
// server.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// OwnerReadWrite is the file permission mode for transcoded payloads, which
// may carry user data (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// WriteOutput writes a transcoded payload to path with OwnerReadWrite
// permissions.
func WriteOutput(path string, data []byte) error {
	return os.WriteFile(path, data, OwnerReadWrite)
}

// ValidateOutputPath checks that outputPath is safe to write to: it must not
// be inputPath and must not be a symlink. An empty inputPath means the payload
// did not come from a file.
func ValidateOutputPath(outputPath, inputPath string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	if inputPath != "" {
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}
		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	return RejectSymlinkOutput(filepath.Clean(outputPath))
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}
