package pathx

import (
	"fmt"
	"os"
)

func Exists(path string) bool {
	exists, _ := ExistsStrict(path)
	return exists
}

func ExistsStrict(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("cannot check path existence '%s': %w", path, err)
}
