package loader

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"gapscan/domain/core"
)

// FromFile loads a dataset, dispatching on the file extension: .csv and
// .xlsx go through the structured readers, everything else is parsed as
// newline-separated integers.
func FromFile(path string) ([]int64, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return FromXLSX(path)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		return FromCSV(f, path)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		return FromReader(f, path)
	}
}

// FromReader parses newline-separated signed integers. Blank lines are
// skipped; any other unparseable line fails the whole load with its line
// number. An empty stream is a valid empty dataset.
func FromReader(r io.Reader, source string) ([]int64, error) {
	var values []int64
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, core.NewMalformedInputError(source, line, err)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return values, nil
}

// FromCSV reads the first column of a CSV stream. A single leading row
// that does not parse is tolerated as a header; any later parse failure
// fails the load.
func FromCSV(r io.Reader, source string) ([]int64, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var values []int64
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", source, err)
		}
		row++
		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			continue
		}
		v, err := strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64)
		if err != nil {
			if row == 1 {
				continue // header row
			}
			return nil, core.NewMalformedInputError(source, row, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// FromXLSX reads the first column of the first sheet of a workbook.
func FromXLSX(path string) ([]int64, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s has no sheets", core.ErrEmptySource, path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var values []int64
	for i, cells := range rows {
		if len(cells) == 0 || strings.TrimSpace(cells[0]) == "" {
			continue
		}
		v, err := strconv.ParseInt(strings.TrimSpace(cells[0]), 10, 64)
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, core.NewMalformedInputError(path, i+1, err)
		}
		values = append(values, v)
	}
	return values, nil
}
