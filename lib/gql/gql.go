package gql

import (
	"encoding/json"
	"sort"
	"strings"
)

// AsGQL renders a selection set from a flat struct of bools, one line per
// field whose value is true. Field names come from the json tags.
func AsGQL(req interface{}) (string, error) {
	mp := make(map[string]bool)
	bytes, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	err = json.Unmarshal(bytes, &mp)
	if err != nil {
		return "", err
	}
	fields := []string{}
	for k, v := range mp {
		if v {
			fields = append(fields, k)
		}
	}
	sort.Strings(fields)
	return strings.Join(fields, "\n"), nil
}
