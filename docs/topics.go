// Package docs holds the embedded documentation topics shown by `gw topic`.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.md
var docs embed.FS

// GetTopic returns the content of a documentation topic.
func GetTopic(topic string) (string, error) {
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of multiple topics concatenated together.
// The topic "*" expands to every known topic.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		if topic == "*" {
			all, err := GetAllTopics()
			if err != nil {
				return "", err
			}
			expanded, err := GetTopics(all...)
			if err != nil {
				return "", err
			}
			b.WriteString(expanded)
			continue
		}
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns a sorted list of all available topics, readme first.
func GetAllTopics() ([]string, error) {
	var topics []string
	err := fs.WalkDir(docs, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if base != "readme" {
			topics = append(topics, base)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(topics)
	return append([]string{"readme"}, topics...), nil
}
