package tabularConverter

import (
	"bookstore_tgbot/internal/model"
	"fmt"
	"strconv"
)

// Project reduces a decoded JSON object array into a header + rows table.
// The header keeps only the allow-listed columns present in the first
// object, in allow-list order, and every data row has exactly the header's
// column count. An empty input produces an empty table with no header.
func Project(data []map[string]any, allowList []string) model.Table {
	if len(data) == 0 {
		return model.Table{}
	}

	header := make([]string, 0, len(allowList))
	for _, key := range allowList {
		if _, ok := data[0][key]; ok {
			header = append(header, key)
		}
	}

	table := make(model.Table, 0, len(data)+1)
	table = append(table, header)

	for _, item := range data {
		row := make([]string, 0, len(header))
		for _, key := range header {
			row = append(row, stringify(item[key]))
		}
		table = append(table, row)
	}

	return table
}

// stringify never fails: an absent key arrives as nil and becomes "".
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
