package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jrschumacher/gpc-ping/internal/jwtutil"
)

// readToken returns the token from args, or from in when the argument is
// "-" or absent. A leading "Bearer " is removed.
func readToken(in io.Reader, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return jwtutil.StripBearer(strings.TrimSpace(args[0])), nil
	}

	raw, err := io.ReadAll(io.LimitReader(in, int64(cfg.MaxTokenBytes)+1))
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	if len(raw) > cfg.MaxTokenBytes {
		return "", fmt.Errorf("token exceeds %d bytes", cfg.MaxTokenBytes)
	}
	return jwtutil.StripBearer(strings.TrimSpace(string(raw))), nil
}
