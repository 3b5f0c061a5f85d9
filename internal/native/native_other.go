//go:build !windows

package native

const available = false

func split(string) ([]string, error) {
	return nil, ErrUnsupported
}

func commandLine() (string, error) {
	return "", ErrUnsupported
}
