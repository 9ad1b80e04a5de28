package playlist

import (
	"fmt"
	"net/url"
	"strings"
)

const fileScheme = "file://"

// isFileURI reports whether a line uses the file URI scheme.
func isFileURI(line string) bool {
	return strings.HasPrefix(line, fileScheme)
}

// fileURIToPath converts a file URI into a local path for the given GOOS.
//
// The URI is split by hand rather than with url.Parse: unescaped '#' and '?'
// are part of the file name.
func fileURIToPath(raw, goos string) (string, error) {
	rest := strings.TrimPrefix(raw, fileScheme)

	host, p := rest, ""
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		host, p = rest[:i], rest[i:]
	}

	host, err := url.PathUnescape(host)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidURI, raw, err)
	}
	decoded, err := url.PathUnescape(p)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidURI, raw, err)
	}

	if strings.EqualFold(host, "localhost") {
		host = ""
	}

	if goos == "windows" {
		return windowsPath(raw, host, decoded)
	}

	if decoded == "" {
		return "", fmt.Errorf("%w %q: empty path", ErrInvalidURI, raw)
	}
	if host != "" {
		return "//" + host + decoded, nil
	}
	return decoded, nil
}

// windowsPath handles drive letters (file:///C:/x, file://C:/x, file:///C|/x)
// and UNC shares (file://server/share/x).
func windowsPath(raw, host, decoded string) (string, error) {
	if isDrive(host) {
		decoded = "/" + host + decoded
		host = ""
	}
	if host == "" && len(decoded) >= 3 && decoded[0] == '/' && isDrive(decoded[1:3]) {
		decoded = decoded[1:2] + ":" + decoded[3:]
	}
	if decoded == "" {
		return "", fmt.Errorf("%w %q: empty path", ErrInvalidURI, raw)
	}

	local := strings.ReplaceAll(decoded, "/", `\`)
	if host != "" {
		return `\\` + host + local, nil
	}
	return local, nil
}

func isDrive(s string) bool {
	if len(s) != 2 || (s[1] != ':' && s[1] != '|') {
		return false
	}
	c := s[0]
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}
