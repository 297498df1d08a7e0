package service

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/AnTengye/accreditation/model"
)

// tsvColumns is the column count of the spreadsheet export
const tsvColumns = 14

// TSVResult is the outcome of converting a spreadsheet export
type TSVResult struct {
	Contracts    []model.Contract
	InvalidLines []int
}

// ParseTSV converts tab separated rows copied from the accreditation spreadsheet.
// Dates are MM/DD/YY or MM/DD/YYYY. Blank lines are ignored and short lines are
// reported in InvalidLines. Leading empty cells are kept, so lines are not trimmed.
func ParseTSV(r io.Reader) (TSVResult, error) {
	result := TSVResult{Contracts: make([]model.Contract, 0)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		c, ok := parseTSVLine(line)
		if !ok {
			slog.Warn("invalid contract line", "line", lineNo)
			result.InvalidLines = append(result.InvalidLines, lineNo)
			continue
		}
		result.Contracts = append(result.Contracts, c)
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("failed to read TSV: %w", err)
	}
	return result, nil
}

func parseTSVLine(line string) (model.Contract, bool) {
	cols := strings.Split(line, "\t")
	if len(cols) < tsvColumns {
		return model.Contract{}, false
	}
	col := func(i int) string { return strings.TrimSpace(cols[i]) }

	return model.Contract{
		DocReceived:        col(0),
		DocDate:            model.ParseDate(ConvertUSDate(cols[1])),
		Progress:           col(2),
		UpdatedDocReceived: col(3),
		UpdatedDocDate:     model.ParseDate(ConvertUSDate(cols[4])),
		VisitScheduled:     col(5),
		VisitDate:          model.ParseDate(ConvertUSDate(cols[6])),
		Management:         col(7),
		Program:            col(8),
		University:         col(9),
		Degree:             col(10),
		Status:             col(11),
		StartDate:          model.ParseDate(ConvertUSDate(cols[12])),
		EndDate:            model.ParseDate(ConvertUSDate(cols[13])),
	}, true
}

// ConvertUSDate turns MM/DD/YY into YYYY-MM-DD. Two digit years are in the 2000s.
// Anything else converts to "".
func ConvertUSDate(s string) string {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return ""
	}
	month, errM := strconv.Atoi(parts[0])
	day, errD := strconv.Atoi(parts[1])
	year, errY := strconv.Atoi(parts[2])
	if errM != nil || errD != nil || errY != nil {
		return ""
	}
	if len(parts[2]) == 2 {
		year += 2000
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
