package dataset

import (
	"os"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

/*
LoadFetcher reads a fetcher configuration from a yaml file

	path: data/train.csv
	target: Class
	id: TransactionID
*/
func LoadFetcher(path string) (f Fetcher, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Fetcher{}, xerrors.Errorf("failed to read config %v: %w", path, err)
	}
	if err = yaml.Unmarshal(b, &f); err != nil {
		return Fetcher{}, xerrors.Errorf("failed to parse config %v: %w", path, err)
	}
	return f, nil
}
