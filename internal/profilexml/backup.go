package profilexml

import (
	"fmt"
	"io"
	"os"
)

// rotateBackups shifts existing backups of path up one slot and copies
// the current file into the .bak_1 slot, keeping at most count
// generations. A count of zero or a missing source is a no-op.
func rotateBackups(path string, count int) error {
	if count <= 0 {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// Drop the oldest slot, then shift the rest up.
	oldest := backupName(path, count)
	if err := os.Remove(oldest); err != nil && !os.IsNotExist(err) {
		return err
	}
	for i := count - 1; i >= 1; i-- {
		src := backupName(path, i)
		if _, err := os.Stat(src); err != nil {
			continue
		}
		if err := os.Rename(src, backupName(path, i+1)); err != nil {
			return err
		}
	}

	return copyFile(path, backupName(path, 1))
}

func backupName(path string, slot int) string {
	return fmt.Sprintf("%s.bak_%d", path, slot)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
