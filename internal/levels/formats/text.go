package formats

import (
	"strings"
)

// ParseText parses a plain legend file. Lines starting with ';' before the
// first maze row are metadata in "key: value" form; "id" and "name" fill the
// matching fields. Once the grid starts, every line is a maze row, so ';' is
// floor there.
func ParseText(data []byte) (Level, error) {
	var level Level
	var rows []string

	for _, line := range strings.Split(string(data), "\n") {
		if len(rows) > 0 {
			rows = append(rows, line)
			continue
		}
		if rest, ok := strings.CutPrefix(line, ";"); ok {
			key, value, found := strings.Cut(rest, ":")
			if !found {
				continue
			}
			key = strings.ToLower(strings.TrimSpace(key))
			value = strings.TrimSpace(value)
			switch key {
			case "id":
				level.ID = value
			case "name":
				level.Name = value
			default:
				if level.Metadata == nil {
					level.Metadata = make(map[string]string)
				}
				level.Metadata[key] = value
			}
			continue
		}
		if strings.TrimRight(line, "\r") != "" {
			rows = append(rows, line)
		}
	}

	level.Rows = trimRows(rows)
	if len(level.Rows) == 0 {
		return Level{}, errEmpty
	}
	return level, nil
}
