/*
Package dataset loads a delimited dataset into an in-memory table and
splits it into features and target to feed supervised models
*/
package dataset

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ulikunitz/xz"
	"go-ml.dev/pkg/iokit"
	"go-ml.dev/pkg/zorros"
	"go-ml.dev/pkg/zorros/zlog"
	"golang.org/x/xerrors"

	"go-ml.dev/pkg/dataset/fu"
	"go-ml.dev/pkg/dataset/tables"
)

/*
Fetcher loads a csv file and splits it into features and target

	f := dataset.Fetcher{Path: "train.csv", Target: "Class", ID: "TransactionID"}
	features, target, err := f.Split(true)

The zero value of NoHeader means the first csv row supplies column names.
Construction performs no I/O, the path and column names are validated
when an operation runs.
*/
type Fetcher struct {
	Path     string `yaml:"path"`      // path of the csv file
	Target   string `yaml:"target"`    // name of the target column, required by Split
	ID       string `yaml:"id"`        // optional name of the row identifier column
	NoHeader bool   `yaml:"no_header"` // the first row is data, not column names
}

/*
Read loads the csv file into a fresh table

Transparently decompresses .xz and .gz inputs, the payload is still a
single csv. Returns an error wrapping ErrNotFound if the file does not
exist, any other read or parse failure is wrapped and propagated as is.
*/
func (f Fetcher) Read() (*tables.Table, error) {
	zlog.Info(fmt.Sprintf("reading csv file from %v", f.Path))
	if _, err := os.Stat(f.Path); os.IsNotExist(err) {
		zlog.Error(fmt.Sprintf("csv file not found: %v", f.Path))
		return nil, xerrors.Errorf("%v: %w", f.Path, ErrNotFound)
	}
	rd, err := iokit.File(f.Path).Open()
	if err != nil {
		zlog.Error(fmt.Sprintf("unexpected error reading csv file: %v", err))
		return nil, xerrors.Errorf("failed to open %v: %w", f.Path, err)
	}
	defer rd.Close()
	var r io.Reader = rd
	switch filepath.Ext(f.Path) {
	case ".xz":
		if r, err = xz.NewReader(rd); err != nil {
			zlog.Error(fmt.Sprintf("unexpected error reading csv file: %v", err))
			return nil, xerrors.Errorf("failed to decompress %v: %w", f.Path, err)
		}
	case ".gz":
		gz, e := gzip.NewReader(rd)
		if e != nil {
			zlog.Error(fmt.Sprintf("unexpected error reading csv file: %v", e))
			return nil, xerrors.Errorf("failed to decompress %v: %w", f.Path, e)
		}
		defer gz.Close()
		r = gz
	}
	t, err := tables.ReadCsv(r, f.NoHeader)
	if err != nil {
		zlog.Error(fmt.Sprintf("unexpected error reading csv file: %v", err))
		return nil, xerrors.Errorf("failed to read %v: %w", f.Path, err)
	}
	zlog.Info(fmt.Sprintf("loaded table with %v rows and %v columns", t.Len(), t.Cols()))
	return t, nil
}

/*
Target is the label column optionally paired with the row identifier column
*/
type Target struct {
	labels tables.Column
	ids    tables.Column
	withID bool
}

/*
Len returns the count of label values
*/
func (t Target) Len() int { return t.labels.Len() }

/*
Labels returns the label values
*/
func (t Target) Labels() tables.Column { return t.labels }

/*
IDs returns the identifier values and true if the target carries them
*/
func (t Target) IDs() (tables.Column, bool) { return t.ids, t.withID }

/*
Table renders the target as an [identifier, label] table or a single label column table
*/
func (t Target) Table() *tables.Table {
	if t.withID {
		return tables.New(t.ids, t.labels)
	}
	return tables.New(t.labels)
}

/*
Split loads the csv file and partitions it into features and target

Features are every column except the target and, when present, the
identifier. When an identifier column is configured and includeID is
true the target pairs identifier values with label values and a missing
identifier column is an error, otherwise the target is the label column
alone and a missing identifier column is a no-op.
*/
func (f Fetcher) Split(includeID bool) (*tables.Table, Target, error) {
	if f.Target == "" {
		zlog.Error("target column not specified in fetcher configuration")
		return nil, Target{}, ErrNoTarget
	}
	t, err := f.Read()
	if err != nil {
		return nil, Target{}, err
	}
	required := []string{f.Target}
	if f.ID != "" && includeID {
		required = append(required, f.ID)
	}
	if missing := fu.Filter(required, func(c string) bool { return !t.Has(c) }); len(missing) > 0 {
		zlog.Error(fmt.Sprintf("missing columns in csv: %v", missing))
		return nil, Target{}, &MissingColumnsError{Missing: missing, Available: t.Names()}
	}
	features := t.Except(f.Target)
	if f.ID != "" {
		features = t.Except(f.Target, f.ID)
	}
	zlog.Info(fmt.Sprintf("features shape: %v x %v", features.Len(), features.Cols()))
	target := Target{labels: t.Col(f.Target)}
	width := 1
	if f.ID != "" && includeID {
		target.ids = t.Col(f.ID)
		target.withID = true
		width = 2
	}
	zlog.Info(fmt.Sprintf("target shape: %v x %v", target.Len(), width))
	return features, target, nil
}

/*
LuckyRead is like Read but throws errors as a panic
*/
func (f Fetcher) LuckyRead() *tables.Table {
	t, err := f.Read()
	if err != nil {
		panic(zorros.Panic(err))
	}
	return t
}

/*
LuckySplit is like Split but throws errors as a panic
*/
func (f Fetcher) LuckySplit(includeID bool) (*tables.Table, Target) {
	features, target, err := f.Split(includeID)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return features, target
}
