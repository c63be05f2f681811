package util

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// AppendToFile appends each string to the file as its own line,
// creating the file if needed.
func AppendToFile(savePath string, content ...string) error {
	f, err := os.OpenFile(savePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, s := range content {
		if _, err = f.WriteString(s + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// SaveJSON marshals v and writes it to savePath, creating parent
// folders as needed.
func SaveJSON(savePath string, v any) error {
	bs, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(savePath), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(savePath, bs, 0644)
}

// LoadJSON reads savePath and unmarshals its contents into v.
func LoadJSON(savePath string, v any) error {
	bs, err := os.ReadFile(savePath)
	if err != nil {
		return err
	}
	return json.Unmarshal(bs, v)
}
