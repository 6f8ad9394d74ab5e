package envcheck

import "os"

// EnvGetter abstracts environment lookup for testability.
type EnvGetter interface {
	LookupEnv(key string) (string, bool)
}

// RealEnvGetter uses the real process environment.
type RealEnvGetter struct{}

func (r *RealEnvGetter) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// FileReader abstracts file reading for testability.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// RealFileReader uses the real filesystem.
type RealFileReader struct{}

func (r *RealFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
