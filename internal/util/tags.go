package util

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var hashtagRegex = regexp.MustCompile(`#(\w+)`)

// ExtractTags finds all #hashtags in a string and returns them lowercased,
// first occurrence wins.
func ExtractTags(text string) []string {
	matches := hashtagRegex.FindAllStringSubmatch(text, -1)
	return MergeTags(nil, matchesToTags(matches))
}

func matchesToTags(matches [][]string) []string {
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}

// MergeTags joins tag lists, lowercasing and dropping blanks and repeats.
func MergeTags(lists ...[]string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, tag := range list {
			tag = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(tag, "#")))
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			out = append(out, tag)
		}
	}
	return out
}

// TagsToJSON converts a slice of tags into a JSON array string.
func TagsToJSON(tags []string) string {
	if len(tags) == 0 {
		return "[]"
	}
	bytes, _ := json.Marshal(tags)
	return string(bytes)
}

// JSONToTags converts a JSON array string back into a slice of tags.
func JSONToTags(jsonStr string) ([]string, error) {
	if jsonStr == "" || jsonStr == "null" {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(jsonStr), &tags); err != nil {
		return nil, fmt.Errorf("decoding tags: %w", err)
	}
	return tags, nil
}
