package domain

import (
	"bytes"
	"encoding/json"
)

// fallback label for items whose category name is missing
const uncategorized = "Other"

// MenuByCategory maps a category label to the items under it. Categories keep
// first-occurrence order from the source row sequence, and items keep their
// original row order within each group, so it marshals through a custom
// encoder instead of a plain map.
type MenuByCategory struct {
	labels []string
	groups map[string][]FoodItem
}

// GroupMenuByCategory folds a flat menu row sequence into category groups.
func GroupMenuByCategory(items []FoodItem) *MenuByCategory {
	m := &MenuByCategory{groups: make(map[string][]FoodItem)}
	for _, item := range items {
		label := uncategorized
		if item.CategoryName != nil && *item.CategoryName != "" {
			label = *item.CategoryName
		}
		if _, ok := m.groups[label]; !ok {
			m.labels = append(m.labels, label)
		}
		m.groups[label] = append(m.groups[label], item)
	}
	return m
}

// Categories returns the labels in first-occurrence order.
func (m *MenuByCategory) Categories() []string {
	return m.labels
}

// Items returns the group for one label, nil when absent.
func (m *MenuByCategory) Items(label string) []FoodItem {
	return m.groups[label]
}

// Len returns the number of category groups.
func (m *MenuByCategory) Len() int {
	return len(m.labels)
}

// MarshalJSON writes a JSON object whose keys appear in category order.
func (m *MenuByCategory) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range m.labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		group, err := json.Marshal(m.groups[label])
		if err != nil {
			return nil, err
		}
		buf.Write(group)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
