package render

import "os"

// LoadTemplate reads the template at path. Failures come back as *FileError.
func LoadTemplate(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &FileError{Path: path, Err: err}
	}
	return string(b), nil
}
