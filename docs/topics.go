// Package docs embeds the user documentation served by `stockio topic`.
package docs

import (
	"embed"
	"fmt"
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

// GetTopics concatenates the requested topics into a single document.
// The pseudo topic "*" stands for every topic, in alphabetical order.
func GetTopics(topics ...string) (string, error) {
	expanded, err := expand(topics)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, t := range expanded {
		content, err := GetTopic(t)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// expand replaces "*" with the full topic list, other names pass through.
func expand(topics []string) ([]string, error) {
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		if t != "*" {
			out = append(out, t)
			continue
		}
		all, err := AllTopics()
		if err != nil {
			return nil, err
		}
		out = append(out, all...)
	}
	return out, nil
}

// AllTopics lists every embedded topic. The readme is the index of the
// others, not a topic of its own, so it is left out.
func AllTopics() ([]string, error) {
	entries, err := docs.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == e.Name() || name == "readme" {
			continue
		}
		topics = append(topics, name)
	}
	sort.Strings(topics)
	return topics, nil
}
