package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/pubtext"
)

// Ensure RecordStore implements pubtext.RecordStore at compile time.
var _ pubtext.RecordStore = (*RecordStore)(nil)

// RecordStore writes cleaned records as <dir>/<pmid>.txt in the tagged
// corpus format.
type RecordStore struct {
	dir string
}

// NewRecordStore creates a new RecordStore writing to dir.
func NewRecordStore(dir string) *RecordStore {
	return &RecordStore{dir: dir}
}

func (s *RecordStore) path(pmid string) string {
	return filepath.Join(s.dir, pmid+".txt")
}

// ModTime returns the modification time of the record file and whether it
// exists.
func (s *RecordStore) ModTime(ctx context.Context, pmid string) (time.Time, bool, error) {
	if err := validPMID(pmid); err != nil {
		return time.Time{}, false, err
	}
	info, err := os.Stat(s.path(pmid))
	if errors.Is(err, os.ErrNotExist) {
		return time.Time{}, false, nil
	} else if err != nil {
		return time.Time{}, false, err
	}
	return info.ModTime(), true, nil
}

// Save writes the record to a temporary file in the same directory, then
// renames it over the record file.
func (s *RecordStore) Save(ctx context.Context, pmid string, rec *pubtext.Record) error {
	if err := validPMID(pmid); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, pmid+".*.tmp")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.WriteString(pubtext.FormatRecord(rec)); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path(pmid))
}

// Load reads a stored record.
// Returns ENOTFOUND if the record does not exist.
func (s *RecordStore) Load(ctx context.Context, pmid string) (*pubtext.Record, error) {
	if err := validPMID(pmid); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path(pmid))
	if errors.Is(err, os.ErrNotExist) {
		return nil, pubtext.Errorf(pubtext.ENOTFOUND, "record %s not found", pmid)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()
	return pubtext.ParseRecord(f)
}

// Touch sets the record file's modification time to now.
// Returns ENOTFOUND if the record does not exist.
func (s *RecordStore) Touch(ctx context.Context, pmid string) error {
	if err := validPMID(pmid); err != nil {
		return err
	}
	now := time.Now()
	err := os.Chtimes(s.path(pmid), now, now)
	if errors.Is(err, os.ErrNotExist) {
		return pubtext.Errorf(pubtext.ENOTFOUND, "record %s not found", pmid)
	}
	return err
}
