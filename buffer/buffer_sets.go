package buffer

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/ge-editor/utils"

	"github.com/ge-editor/caret/file"
	"github.com/ge-editor/caret/pkg_error"
)

// Create BufferSets from
// Files (command line arguments)
// Always one will be created
//
// Errors of files that could not be opened are joined and returned,
// the remaining files are still loaded.
func NewBufferSets(paths []string, encoding string) (bss *BufferSets, errs error) {
	bss = &BufferSets{}

	for _, path := range paths {
		var err error
		var mode fs.FileMode
		buff := newBufferSet(path)
		if err = buff.SetEncoding(encoding); err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		fileInfo, err := os.Stat(path)
		if os.IsNotExist(err) {
			err = buff.New()
			goto last
		}

		if err != nil {
			goto last
		}

		mode = fileInfo.Mode()
		if mode.IsRegular() {
			err = buff.Load()
			if pkg_error.IsMessage(err) {
				err = nil
			}
			buff.SetReadonly(mode.Perm()&0200 == 0)
		} else {
			continue // such directory or ...
		}

	last:
		if err != nil {
			errs = errors.Join(errs, err)
		} else {
			bss.Append(buff)
		}
	} // for files

	// create one buffer if nothing
	if len(*bss) == 0 {
		buff := newBufferSet("")
		buff.New()
		bss.Append(buff)
	}
	return bss, errs
}

// Buffers
type BufferSets []*bufferSet

// Find a buffer from the bufferSetArray
// If found, return the meta from metas
// If metas does not exist, return a new meta
func (bss *BufferSets) GetMeta(ff *file.File) *Meta {
	for _, buffSet := range *bss {
		if buffSet.File == ff {
			return buffSet.PopMeta()
		}
	}
	return newMeta()
}

// Find BufferSet in BufferSetArray
func (bss *BufferSets) BufferSet(ff *file.File) *bufferSet {
	for _, buffSet := range *bss {
		if buffSet.File == ff {
			return buffSet
		}
	}
	return nil
}

// GetFileAndMeta returns the buffer of filePath with its parked meta.
// A file not yet open is loaded with encoding, or created when it does not exist.
// The error is then a message (pkg_error.IsMessage) saying which happened.
func (bss *BufferSets) GetFileAndMeta(filePath, encoding string) (*file.File, *Meta, error) {
	if buffSet := bss.find(filePath); buffSet != nil {
		return buffSet.File, buffSet.PopMeta(), nil
	}

	buffSet := newBufferSet(filePath)
	if err := buffSet.SetEncoding(encoding); err != nil {
		return nil, nil, err
	}
	err := buffSet.Load()
	if err != nil && !pkg_error.IsMessage(err) {
		if err = buffSet.New(); err != nil {
			return nil, nil, err
		}
		err = pkg_error.ErrorNewFile
	} else {
		err = errors.Join(pkg_error.ErrorLoadedFile, err)
	}
	bss.Append(buffSet)
	return buffSet.File, buffSet.PopMeta(), err
}

// find matches the absolute path first, files that are not saved yet have no inode
func (bss *BufferSets) find(filePath string) *bufferSet {
	path, err := filepath.Abs(filePath)
	if err != nil {
		path = filePath
	}
	for _, buffSet := range *bss {
		if buffSet.GetPath() == path || utils.SameFile(path, buffSet.GetPath()) {
			return buffSet
		}
	}
	return nil
}

func (bss *BufferSets) Append(buffSet *bufferSet) {
	*bss = append(*bss, buffSet)
}

// Remove bufferSet match *file.File in BufferSets.
// Return removed index of bufferSet in BufferSets.
// Return -1 if not match.
func (bss *BufferSets) RemoveByBufferFile(ff *file.File) int {
	i := bss.GetIndexByBufferFile(ff)
	if i == -1 {
		return -1
	}

	*bss = slices.Delete(*bss, i, i+1)
	return i
}

// Check if the specified *file.File exists in BufferSets
// If found, return its index
// If not found, return -1
func (bss *BufferSets) GetIndexByBufferFile(ff *file.File) int {
	for i, buffSet := range *bss {
		if buffSet.File == ff {
			return i
		}
	}
	return -1 // Return -1 if the element is not found
}
